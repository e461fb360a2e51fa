package service

import "github.com/google/uuid"

// GuardCookie is the advisory platform-admin verdict carried in the route
// guard's signed cookie. It is a pure performance cache: once its TTL lapses
// the guard re-validates against the database.
type GuardCookie struct {
	UserID        uuid.UUID
	PlatformAdmin bool
}

// GuardCookieSigner signs and verifies the route guard's advisory cookie so
// the verdict is tamper-evident without a database round trip.
type GuardCookieSigner interface {
	// Sign produces a signed, TTL-bearing token for the verdict.
	Sign(userID uuid.UUID, platformAdmin bool) (string, error)

	// Verify checks signature and expiry, returning the embedded verdict.
	Verify(token string) (*GuardCookie, error)
}
