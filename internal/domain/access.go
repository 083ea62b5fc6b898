package domain

import "fmt"

// UserKind names a user variant in requests and on the command line.
type UserKind string

const (
	// UserAdmin is a super user with full access.
	UserAdmin UserKind = "admin"

	// UserModerator is a super user with full access.
	UserModerator UserKind = "moderator"

	// UserGuest is a plain user that is always refused.
	UserGuest UserKind = "guest"
)

// String returns the string representation of the user kind.
func (k UserKind) String() string { return string(k) }

// User is any account that can ask for system access.
// Access returns nil when access is granted.
type User interface {
	Kind() UserKind
	Access() error
}

// SuperUser grants access. Admin and Moderator embed it so both are
// substitutable anywhere a User is expected.
type SuperUser struct{}

// Access grants access.
func (SuperUser) Access() error { return nil }

// Admin is a super user.
type Admin struct{ SuperUser }

// Kind returns UserAdmin.
func (Admin) Kind() UserKind { return UserAdmin }

// Moderator is a super user.
type Moderator struct{ SuperUser }

// Kind returns UserModerator.
func (Moderator) Kind() UserKind { return UserModerator }

// Guest is a plain user without system access.
type Guest struct{}

// Kind returns UserGuest.
func (Guest) Kind() UserKind { return UserGuest }

// Access always refuses with ErrAccessDenied.
func (Guest) Access() error { return ErrAccessDenied }

var userKinds = map[UserKind]User{
	UserAdmin:     Admin{},
	UserModerator: Moderator{},
	UserGuest:     Guest{},
}

// ParseUser returns the user variant registered for kind.
func ParseUser(kind UserKind) (User, error) {
	u, ok := userKinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUserKind, kind)
	}
	return u, nil
}

// CheckAccess asks the user for access and surfaces a refusal unchanged
// apart from the user kind. Callers match refusals with errors.Is(err,
// ErrAccessDenied).
func CheckAccess(u User) error {
	if err := u.Access(); err != nil {
		return fmt.Errorf("%s: %w", u.Kind(), err)
	}
	return nil
}
