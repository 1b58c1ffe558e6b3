package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrCookieExpired = errors.New("session cookie has expired")
	ErrCookieInvalid = errors.New("session cookie is invalid")
)

// SessionClaims wraps the opaque session token in a signed cookie payload.
// The token itself is only meaningful against the server-side session store;
// the signature just stops clients minting or mangling cookie values.
type SessionClaims struct {
	SessionToken string `json:"sid"`
	jwt.RegisteredClaims
}

// SignSessionCookie produces the signed cookie value for a session token
func SignSessionCookie(sessionToken, secret string, ttl time.Duration) (string, error) {
	claims := SessionClaims{
		SessionToken: sessionToken,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "rbx-staffhub",
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseSessionCookie validates a cookie value and returns the session token
func ParseSessionCookie(cookieValue, secret string) (string, error) {
	t, err := jwt.ParseWithClaims(cookieValue, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrCookieInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrCookieExpired
		}
		return "", ErrCookieInvalid
	}

	claims, ok := t.Claims.(*SessionClaims)
	if !ok || !t.Valid || claims.SessionToken == "" {
		return "", ErrCookieInvalid
	}

	return claims.SessionToken, nil
}
