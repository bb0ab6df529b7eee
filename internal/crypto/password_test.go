package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	// Формат: argon2id$<salt>$<hash>
	parts := strings.Split(hash, "$")
	require.Len(t, parts, 3)
	assert.Equal(t, "argon2id", parts[0])
	assert.NotEmpty(t, parts[1])
	assert.NotEmpty(t, parts[2])
}

func TestHashPassword_EmptyPassword(t *testing.T) {
	_, err := HashPassword("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password cannot be empty")
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	// Одинаковые пароли должны давать разные хеши из-за случайной соли
	hash1, err := HashPassword("samepassword")
	require.NoError(t, err)

	hash2, err := HashPassword("samepassword")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
}

func TestVerifyPassword(t *testing.T) {
	password := "correct horse battery staple"
	hash, err := HashPassword(password)
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		encoded  string
		errMsg   string
		wantErr  bool
	}{
		{
			name:     "correct password",
			password: password,
			encoded:  hash,
		},
		{
			name:     "wrong password",
			password: "wrong password",
			encoded:  hash,
			wantErr:  true,
			errMsg:   "invalid password",
		},
		{
			name:     "empty password",
			password: "",
			encoded:  hash,
			wantErr:  true,
			errMsg:   "password cannot be empty",
		},
		{
			name:     "malformed hash",
			password: password,
			encoded:  "not-a-hash",
			wantErr:  true,
			errMsg:   "invalid password hash format",
		},
		{
			name:     "wrong algorithm prefix",
			password: password,
			encoded:  "bcrypt$abc$def",
			wantErr:  true,
			errMsg:   "invalid password hash format",
		},
		{
			name:     "corrupted salt encoding",
			password: password,
			encoded:  "argon2id$!!!$" + strings.Split(hash, "$")[2],
			wantErr:  true,
			errMsg:   "failed to decode salt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword(tt.password, tt.encoded)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
