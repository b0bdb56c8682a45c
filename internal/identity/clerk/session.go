package clerk

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidSession = errors.New("invalid session token")

type sessionClaims struct {
	jwt.RegisteredClaims
	AuthorizedParty string `json:"azp,omitempty"`
	SessionID       string `json:"sid,omitempty"`
}

// Verifier checks networkless (RS256) session tokens issued by Clerk.
type Verifier struct {
	key     *rsa.PublicKey
	parties map[string]struct{}
	leeway  time.Duration
}

// NewVerifier parses the instance's PEM public key. Escaped "\n" sequences,
// as found in single-line env values, are accepted.
func NewVerifier(publicKeyPEM string, authorizedParties []string) (*Verifier, error) {
	publicKeyPEM = strings.ReplaceAll(publicKeyPEM, `\n`, "\n")
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("parse clerk public key: %w", err)
	}

	v := &Verifier{
		key:    key,
		leeway: 5 * time.Second,
	}
	if len(authorizedParties) > 0 {
		v.parties = make(map[string]struct{}, len(authorizedParties))
		for _, p := range authorizedParties {
			v.parties[strings.TrimRight(p, "/")] = struct{}{}
		}
	}
	return v, nil
}

// Verify validates the token and returns the user id from its sub claim.
func (v *Verifier) Verify(token string) (string, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return v.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithLeeway(v.leeway),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing sub", ErrInvalidSession)
	}
	if v.parties != nil && claims.AuthorizedParty != "" {
		if _, ok := v.parties[strings.TrimRight(claims.AuthorizedParty, "/")]; !ok {
			return "", fmt.Errorf("%w: unauthorized party %q", ErrInvalidSession, claims.AuthorizedParty)
		}
	}
	return claims.Subject, nil
}
