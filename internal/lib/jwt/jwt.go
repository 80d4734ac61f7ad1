package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expired inspects a bearer token issued by the backend without verifying
// its signature (the signing key belongs to the backend). When the token is
// a JWT with an exp claim, it reports whether that moment has passed.
// Opaque tokens are assumed live; only the backend can reject them.
func Expired(token string, now time.Time) bool {
	parsed, _, err := new(jwt.Parser).ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}

	return now.Unix() >= int64(exp)
}
