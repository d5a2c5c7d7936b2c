package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCredentials_Check(t *testing.T) {
	creds, err := NewStaticCredentials(DefaultUsername, DefaultPassword)
	require.NoError(t, err)

	cases := []struct {
		name, user, pass string
		want             bool
	}{
		{"exact pair", "test", "test123", true},
		{"wrong password", "test", "test124", false},
		{"wrong user", "x", "test123", false},
		{"both wrong", "x", "y", false},
		{"empty", "", "", false},
		{"case matters", "Test", "test123", false},
		{"trailing space", "test ", "test123", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, creds.Check(tc.user, tc.pass))
		})
	}
}

func TestStaticCredentials_DoesNotKeepPlainPassword(t *testing.T) {
	creds, err := NewStaticCredentials("u", "secret")
	require.NoError(t, err)
	assert.NotContains(t, string(creds.hash), "secret")
}

func TestAuthService_Authenticate(t *testing.T) {
	creds, err := NewStaticCredentials(DefaultUsername, DefaultPassword)
	require.NoError(t, err)
	svc := NewAuthService(creds)
	ctx := context.Background()

	assert.NoError(t, svc.Authenticate(ctx, "test", "test123"))
	assert.ErrorIs(t, svc.Authenticate(ctx, "x", "y"), ErrInvalidCredentials)
}

func TestAuthService_CustomChecker(t *testing.T) {
	var gotUser, gotPass string
	svc := NewAuthService(CredentialCheckerFunc(func(u, p string) bool {
		gotUser, gotPass = u, p
		return u == "admin"
	}))
	ctx := context.Background()

	assert.NoError(t, svc.Authenticate(ctx, "admin", "anything"))
	assert.Equal(t, "admin", gotUser)
	assert.Equal(t, "anything", gotPass)
	assert.ErrorIs(t, svc.Authenticate(ctx, "test", "test123"), ErrInvalidCredentials)
}
