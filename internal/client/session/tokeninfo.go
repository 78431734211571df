package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what can be read from a JWT bearer token without verifying
// it. It is informational only.
type TokenInfo struct {
	IsJWT     bool
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// DescribeToken decodes the registered claims of token when it is a JWT.
// Opaque tokens return a zero TokenInfo.
func DescribeToken(token string) TokenInfo {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenInfo{}
	}

	info := TokenInfo{IsJWT: true, Subject: claims.Subject}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info
}
