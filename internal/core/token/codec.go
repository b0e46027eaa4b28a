// Package token mints and verifies the signed identity assertions shared by
// all three services. Verification is purely local: any service holding the
// signing secret can authenticate a caller without a network round-trip.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalid means the token is malformed or its signature does not
	// verify under the configured secret.
	ErrInvalid = errors.New("token invalid")
	// ErrExpired means the token was well-formed and correctly signed but
	// presented at or after its expiry instant.
	ErrExpired = errors.New("token expired")
)

// Claims is the verified content of a token. RoleKnown is false for legacy
// tokens issued without a role claim; callers that need the authoritative
// role must then re-resolve it from the user store, defaulting to "user".
type Claims struct {
	Subject   string
	Role      string
	RoleKnown bool
}

// Codec signs and verifies tokens with a symmetric HS256 key. The key is
// injected configuration, not ambient state, so key epochs can be modeled
// by constructing a second Codec.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Issue encodes subject and role with an absolute expiry of now + ttl.
func (c *Codec) Issue(subject, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": subject,
		"role":    role,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify validates the signature and expiry and returns the embedded claims.
// Expiry is exclusive: a token presented at its exp instant is ErrExpired.
func (c *Codec) Verify(raw string) (Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, ErrInvalid
	}
	if !tkn.Valid {
		return Claims{}, ErrInvalid
	}

	subject, _ := claims["user_id"].(string)
	if subject == "" {
		return Claims{}, ErrInvalid
	}

	out := Claims{Subject: subject}
	if role, ok := claims["role"].(string); ok && role != "" {
		out.Role = role
		out.RoleKnown = true
	}
	return out, nil
}
