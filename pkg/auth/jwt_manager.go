package auth

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	// TokenCookieName is the cookie the page surface stores the session
	// token in.
	TokenCookieName = "access_token"

	bearerScheme = "Bearer"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
	ErrNoToken      = errors.New("no token present")
)

type JWTManager struct {
	secretKey     string
	method        jwt.SigningMethod
	tokenDuration time.Duration
}

// NewJWTManager builds a manager signing with the named HMAC algorithm
// (HS256/HS384/HS512). The key and algorithm are fixed for the life of
// the process.
func NewJWTManager(secret, algorithm string, duration time.Duration) (*JWTManager, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not symmetric", algorithm)
	}
	return &JWTManager{secretKey: secret, method: method, tokenDuration: duration}, nil
}

// Generate creates a token for subject expiring after the configured
// lifetime.
func (m *JWTManager) Generate(subject string) (string, error) {
	return m.GenerateWithExpiry(subject, m.tokenDuration)
}

// GenerateWithExpiry creates a token for subject with a caller-chosen
// lifetime. The claim set is exactly {sub, exp}.
func (m *JWTManager) GenerateWithExpiry(subject string, expiresIn time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}
	token := jwt.NewWithClaims(m.method, claims)
	return token.SignedString([]byte(m.secretKey))
}

// Verify parses and checks a token, returning its claims. Expiry is
// reported as ErrTokenExpired; every other defect (bad signature, wrong
// algorithm, garbage input, missing subject) is ErrTokenInvalid.
func (m *JWTManager) Verify(accessToken string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(accessToken, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != m.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// ExtractToken pulls the raw token from the Authorization header or,
// failing that, the access token cookie. Either carrier may prefix the
// token with the bearer scheme label, which is stripped.
func ExtractToken(r *http.Request) (string, error) {
	if hdr := r.Header.Get("Authorization"); hdr != "" {
		return stripBearer(hdr), nil
	}
	cookie, err := r.Cookie(TokenCookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoToken
	}
	value := cookie.Value
	// The cookie is written url-escaped ("Bearer%20...").
	if unescaped, err := url.QueryUnescape(value); err == nil {
		value = unescaped
	}
	return stripBearer(value), nil
}

func stripBearer(value string) string {
	if len(value) > len(bearerScheme)+1 && strings.EqualFold(value[:len(bearerScheme)], bearerScheme) && value[len(bearerScheme)] == ' ' {
		return value[len(bearerScheme)+1:]
	}
	return value
}
