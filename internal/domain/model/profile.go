//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/medflow/medflow/internal/domain/auth"
)

const maxFullNameLen = 255

// Profile is the durable per-user record holding the authoritative role. The
// row is keyed by the identity provider's subject id; the provider is never
// trusted for role.
type Profile struct {
	ID        string    `json:"id"         db:"id"`
	FullName  string    `json:"full_name"  db:"full_name"`
	Role      auth.Role `json:"role"       db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateProfileRequest represents parameters to provision a profile row.
type CreateProfileRequest struct {
	ID       string    `json:"id"`
	FullName string    `json:"full_name"`
	Role     auth.Role `json:"role"`
}

// Validate validates CreateProfileRequest.
func (r *CreateProfileRequest) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("id is required")
	}
	name := strings.TrimSpace(r.FullName)
	if name == "" {
		return errors.New("full_name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxFullNameLen {
		return errors.New("full_name cannot exceed 255 characters")
	}
	if !r.Role.Known() {
		return errors.New("role must be one of: admin, doctor, nurse, receptionist, patient")
	}
	return nil
}

// ProfilesListOptions controls paging and filtering for listing profiles.
// Role matches exactly; Q matches full_name via ILIKE substring.
type ProfilesListOptions struct {
	Limit  int
	Offset int
	Role   *auth.Role
	Q      *string
}
