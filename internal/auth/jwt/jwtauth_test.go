package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberToken(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)

	tok, err := NewMemberToken(jwtAuth, time.Hour, "somsri", "ADMIN")
	require.NoError(t, err)

	sub, role, err := VerifyTokenClaims(jwtAuth, tok)
	require.NoError(t, err)
	assert.Equal(t, "somsri", sub)
	assert.Equal(t, "ADMIN", role)
}

func TestTokenWithoutClaims(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)

	tok, err := NewToken(jwtAuth, time.Hour)
	require.NoError(t, err)

	sub, role, err := VerifyTokenClaims(jwtAuth, tok)
	require.NoError(t, err)
	assert.Empty(t, sub)
	assert.Empty(t, role)
}

func TestExpiredToken(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)

	tok, err := NewMemberToken(jwtAuth, -time.Minute, "somsri", "ADMIN")
	require.NoError(t, err)

	_, _, err = VerifyTokenClaims(jwtAuth, tok)
	assert.Error(t, err)
}

func TestWrongKey(t *testing.T) {
	tok, err := NewMemberToken(jwtauth.New("HS256", []byte("secret"), nil), time.Hour, "somsri", "ADMIN")
	require.NoError(t, err)

	_, err = VerifyToken(jwtauth.New("HS256", []byte("other"), nil), tok)
	assert.Error(t, err)
}
