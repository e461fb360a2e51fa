package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"horeca/config"
	"horeca/internal/domain/service"
)

// guardCookieSigner signs the route guard's advisory platform-admin cookie
// as a compact HMAC JWT. The cookie is a pure performance cache: expiry
// forces the guard back to the database, so a stale verdict is bounded by
// the configured TTL.
type guardCookieSigner struct {
	secret []byte
	ttl    time.Duration
}

// guardCookieClaims is the wire form of service.GuardCookie.
type guardCookieClaims struct {
	PlatformAdmin bool `json:"pa"`
	jwt.RegisteredClaims
}

// NewGuardCookieSigner is the constructor for guardCookieSigner.
func NewGuardCookieSigner(cfg *config.Config) (service.GuardCookieSigner, error) {
	if cfg.Guard == nil || cfg.Guard.CookieSecret == "" {
		return nil, errors.New("guard cookie secret must be provided")
	}

	ttl := cfg.Guard.CookieTTL
	if ttl <= 0 {
		ttl = time.Minute * 5
	}

	return &guardCookieSigner{
		secret: []byte(cfg.Guard.CookieSecret),
		ttl:    ttl,
	}, nil
}

// Sign produces a signed, TTL-bearing token for the verdict.
func (s *guardCookieSigner) Sign(userID uuid.UUID, platformAdmin bool) (string, error) {
	now := time.Now()
	claims := guardCookieClaims{
		PlatformAdmin: platformAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// Verify checks signature and expiry, returning the embedded verdict.
func (s *guardCookieSigner) Verify(tokenString string) (*service.GuardCookie, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &guardCookieClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse guard cookie")
	}

	claims, ok := parsed.Claims.(*guardCookieClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid guard cookie claims")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "parse guard cookie subject")
	}

	return &service.GuardCookie{
		UserID:        userID,
		PlatformAdmin: claims.PlatformAdmin,
	}, nil
}
