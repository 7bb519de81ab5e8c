package domain

import (
	"github.com/golang-jwt/jwt"
	"github.com/x-xyz/ipmarket/base/ctx"
)

// JwtCustomClaims are the claims of an identity provider token
type JwtCustomClaims struct {
	Principal string `json:"data"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	SignToken(ctx ctx.Ctx, principal Principal) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (Principal, error)
}
