package usecase_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/domain"
	"github.com/x-xyz/ipmarket/stores/auth/usecase"
)

const alice = domain.Principal("ryjl3-tyaaa-aaaaa-aaaba-cai")

func TestSignAndParseToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret", time.Hour)
	tkn, err := u.SignToken(ctx, alice)
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)
	p, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, alice, p)
}

func TestSignInvalidPrincipal(t *testing.T) {
	u := usecase.New("jwt-secret", 0)
	_, err := u.SignToken(ctx.Background(), "not-a-principal")
	assert.ErrorIs(t, err, domain.ErrInvalidPrincipal)
}

func TestParseToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret", time.Hour)

	sign := func(secret string, claims domain.JwtCustomClaims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		assert.NoError(t, err)
		return s
	}
	valid := jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()}

	_, err := u.ParseToken(ctx, sign("other-secret", domain.JwtCustomClaims{Principal: alice.String(), StandardClaims: valid}))
	assert.Error(t, err)

	_, err = u.ParseToken(ctx, sign("jwt-secret", domain.JwtCustomClaims{
		Principal:      alice.String(),
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(-time.Minute).Unix()},
	}))
	assert.Error(t, err)

	_, err = u.ParseToken(ctx, sign("jwt-secret", domain.JwtCustomClaims{Principal: "ryjl3-tyaaa-aaaaa-aaaba-caj", StandardClaims: valid}))
	assert.ErrorIs(t, err, domain.ErrInvalidPrincipal)

	_, err = u.ParseToken(ctx, "garbage")
	assert.Error(t, err)
}
