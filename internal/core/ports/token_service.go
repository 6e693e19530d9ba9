package ports

import "github.com/domainpanel/backend/internal/core/domain"

// TokenClaims is the identity carried inside a verified token.
type TokenClaims struct {
	Subject string
	Role    string
}

// TokenPair bundles the two bearer credentials returned by login and
// refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenService issues and verifies the two token classes. Access and
// refresh tokens are signed with distinct secrets so one class is never
// accepted where the other is expected.
type TokenService interface {
	IssueAccessToken(user *domain.User) (string, error)
	IssueRefreshToken(user *domain.User) (string, error)
	VerifyAccess(token string) (*TokenClaims, error)
	VerifyRefresh(token string) (*TokenClaims, error)
}
