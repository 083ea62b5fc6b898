package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAccess(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr error
	}{
		{name: "admin is granted", user: Admin{}},
		{name: "moderator is granted", user: Moderator{}},
		{name: "guest is denied", user: Guest{}, wantErr: ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAccess(tt.user)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), string(tt.user.Kind()))
		})
	}
}

func TestParseUser(t *testing.T) {
	tests := []struct {
		kind    UserKind
		want    User
		wantErr bool
	}{
		{kind: UserAdmin, want: Admin{}},
		{kind: UserModerator, want: Moderator{}},
		{kind: UserGuest, want: Guest{}},
		{kind: "root", wantErr: true},
		{kind: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			u, err := ParseUser(tt.kind)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownUserKind)
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, u)
			assert.Equal(t, tt.kind, u.Kind())
		})
	}
}

func TestSuperUserSubstitution(t *testing.T) {
	// Every super user variant must behave as a plain User would expect.
	for _, u := range []User{Admin{}, Moderator{}} {
		assert.NoError(t, u.Access(), u.Kind().String())
	}
}
