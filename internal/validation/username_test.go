package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		errMsg   string
		wantErr  bool
	}{
		{
			name:     "valid username - lowercase",
			username: "editor",
		},
		{
			name:     "valid username - mixed case with numbers",
			username: "Editor42",
		},
		{
			name:     "valid username - with underscore",
			username: "content_admin",
		},
		{
			name:     "valid username - max length",
			username: strings.Repeat("a", 32),
		},
		{
			name:     "invalid - empty username",
			username: "",
			wantErr:  true,
			errMsg:   "username cannot be empty",
		},
		{
			name:     "invalid - too short",
			username: "ab",
			wantErr:  true,
			errMsg:   "at least 3 characters",
		},
		{
			name:     "invalid - too long",
			username: strings.Repeat("a", 33),
			wantErr:  true,
			errMsg:   "must not exceed 32 characters",
		},
		{
			name:     "invalid - contains dash",
			username: "content-admin",
			wantErr:  true,
			errMsg:   "can only contain",
		},
		{
			name:     "invalid - contains space",
			username: "content admin",
			wantErr:  true,
			errMsg:   "can only contain",
		},
		{
			name:     "invalid - non-latin letters",
			username: "редактор",
			wantErr:  true,
			errMsg:   "can only contain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		errMsg   string
		wantErr  bool
	}{
		{
			name:     "valid password - exactly min length",
			password: strings.Repeat("x", MinPasswordLen),
		},
		{
			name:     "valid password - long",
			password: "correct horse battery staple",
		},
		{
			name:     "invalid - empty",
			password: "",
			wantErr:  true,
			errMsg:   "password cannot be empty",
		},
		{
			name:     "invalid - too short",
			password: strings.Repeat("x", MinPasswordLen-1),
			wantErr:  true,
			errMsg:   "at least 8 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
