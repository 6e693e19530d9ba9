package domain

import (
	"regexp"
	"strings"
	"time"
)

// DomainRecord is one entry in a user's domain portfolio. The pair
// (UserID, DomainName) is unique; the same name may be held by
// different users.
type DomainRecord struct {
	ID         string    `json:"id"`
	DomainName string    `json:"domainName"`
	UserID     string    `json:"userId"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// hostnamePattern: dot-joined labels of 1-63 alphanumeric/hyphen
// characters not starting with a hyphen, ending in an alphabetic TLD of
// at least two characters.
var hostnamePattern = regexp.MustCompile(`^([a-z0-9][a-z0-9-]{0,62}\.)+[a-z]{2,63}$`)

// NormalizeDomainName canonicalizes a user-supplied domain name:
// trim, lowercase, strip a leading http:// or https:// scheme and any
// trailing slashes. Normalization is idempotent.
func NormalizeDomainName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.TrimPrefix(name, "https://")
	name = strings.TrimPrefix(name, "http://")
	return strings.TrimRight(name, "/")
}

// ValidDomainName reports whether an already-normalized name is
// hostname-shaped.
func ValidDomainName(name string) bool {
	return hostnamePattern.MatchString(name)
}
