package types

import (
	"github.com/google/uuid"
)

// OrgName represents a GitHub organization login
type OrgName string

// String returns the string representation
func (n OrgName) String() string {
	return string(n)
}

// Token represents a GitHub access token
type Token string

// String returns the string representation
func (t Token) String() string {
	return string(t)
}

// Masked returns the token with all but the last four characters hidden
func (t Token) Masked() string {
	if len(t) <= 4 {
		return "****"
	}
	return "****" + string(t[len(t)-4:])
}

// ProfileID represents a saved organization profile identifier
type ProfileID string

// String returns the string representation
func (id ProfileID) String() string {
	return string(id)
}

// NewProfileID creates a new ProfileID using UUID v7
func NewProfileID() (ProfileID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return ProfileID(id.String()), nil
}

// UserID represents a stable numeric GitHub user identifier
type UserID int64

// Int64 returns the int64 representation
func (id UserID) Int64() int64 {
	return int64(id)
}
