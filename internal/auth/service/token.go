package service

import (
	"time"

	"github.com/longevlabs/longev-auth/internal/auth/domain"
	"github.com/longevlabs/longev-auth/pkg/jwtx"
)

// TokenService issues signed bearer access tokens. Tokens are stateless:
// nothing is persisted and verification happens against the published JWKS.
type TokenService struct {
	Signer    jwtx.Signer
	Issuer    string
	AccessTTL time.Duration
}

// Issue signs an access token for the user. amr records how the user
// authenticated (jwtx.AMRPassword or jwtx.AMROTP).
func (s *TokenService) Issue(u domain.User, amr string) (string, error) {
	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(
		u.ID,            // subject
		u.Email,         // email
		u.FullName(),    // display name
		[]string{amr},   // authentication method
		ttl,             // token lifetime
		s.Issuer,        // issuer
		time.Now().UTC(), // current time
	)
	return s.Signer.Sign(claims)
}
