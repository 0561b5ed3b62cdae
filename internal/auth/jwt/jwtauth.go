package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
)

func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (string, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return "", err
	}
	return t.Subject(), nil
}

// VerifyTokenClaims verifies the token and returns the subject (username)
// together with the role claim used by the admin route guards.
func VerifyTokenClaims(jwtAuth *jwtauth.JWTAuth, token string) (string, string, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return "", "", err
	}
	role := ""
	if v, ok := t.Get("role"); ok {
		if s, ok := v.(string); ok {
			role = s
		}
	}
	return t.Subject(), role, nil
}

func NewToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration) (string, error) {
	return NewMemberToken(jwtAuth, ttl, "", "")
}

// NewMemberToken creates a JWT carrying the member's username and role.
// Subject is used for admin audit trails.
func NewMemberToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, subject, role string) (string, error) {
	claims := map[string]interface{}{
		"exp": time.Now().Add(ttl).Unix(),
	}
	if subject != "" {
		claims["sub"] = subject
	}
	if role != "" {
		claims["role"] = role
	}
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return ts, err
	}
	return ts, nil
}
