package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/domainpanel/backend/internal/core/domain"
)

const domainsCollection = "domains"

// DomainRepository implements ports.DomainRepository on MongoDB. The
// unique compound index on (user_id, domain_name) is the authoritative
// duplicate guard; a violation surfaces as domain.ErrDomainTaken.
type DomainRepository struct {
	coll *mongo.Collection
}

func NewDomainRepository(db *mongo.Database) *DomainRepository {
	return &DomainRepository{coll: db.Collection(domainsCollection)}
}

type mongoDomain struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	DomainName string             `bson:"domain_name"`
	UserID     string             `bson:"user_id"`
	Status     string             `bson:"status"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (md *mongoDomain) toDomain() *domain.DomainRecord {
	return &domain.DomainRecord{
		ID:         md.ID.Hex(),
		DomainName: md.DomainName,
		UserID:     md.UserID,
		Status:     md.Status,
		CreatedAt:  md.CreatedAt.UTC(),
		UpdatedAt:  md.UpdatedAt.UTC(),
	}
}

// EnsureIndexes creates the unique (user_id, domain_name) index plus a
// plain owner index for listing. Call once at startup.
func (r *DomainRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "domain_name", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *DomainRepository) Create(ctx context.Context, rec *domain.DomainRecord) (*domain.DomainRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoDomain{
		DomainName: rec.DomainName,
		UserID:     rec.UserID,
		Status:     rec.Status,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDomainTaken
		}
		return nil, fmt.Errorf("insert domain: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *DomainRepository) FindByOwner(ctx context.Context, userID string) ([]*domain.DomainRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoDomain
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode domains: %w", err)
	}

	records := make([]*domain.DomainRecord, len(docs))
	for i := range docs {
		records[i] = docs[i].toDomain()
	}
	return records, nil
}

func (r *DomainRepository) ExistsForOwner(ctx context.Context, userID, domainName string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"user_id": userID, "domain_name": domainName})
	if err != nil {
		return false, fmt.Errorf("count domains: %w", err)
	}
	return n > 0, nil
}

func (r *DomainRepository) UpdateStatus(ctx context.Context, id, userID, status string) (*domain.DomainRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDomainNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// Filtering on the owner as well as the id means a foreign record
	// reads as not found rather than forbidden.
	filter := bson.M{"_id": oid, "user_id": userID}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var md mongoDomain
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&md); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDomainNotFound
		}
		return nil, fmt.Errorf("update domain status: %w", err)
	}
	return md.toDomain(), nil
}
