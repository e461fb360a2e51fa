// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. The ID is issued by the external
// auth provider and mirrored locally so relational joins stay possible.
type User struct {
	ID          uuid.UUID  // The provider-issued unique identifier for the user.
	Email       string     // The user's primary contact email, used as a login identifier.
	Phone       string     // Optional contact phone number.
	FullName    string     // The user's display name or real name.
	AvatarURL   string     // Optional avatar image reference.
	Locale      string     // BCP-47 locale tag, e.g. "nl-BE".
	IsActive    bool       // Inactive users are treated as absent by every permission check.
	LastLoginAt *time.Time // Timestamp of the most recent successful login, if any.
	CreatedAt   time.Time  // Timestamp of when this user account was created.
	UpdatedAt   time.Time  // Timestamp of the last modification to this user's data.
}
