package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginIssuesToken(t *testing.T) {
	svc := NewService(NewMemoryStorage())

	token, user, err := svc.Login("supervisor@neoview.com", "super123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "usr-002", user.ID)
	assert.Equal(t, "Maria Silva", user.Name)

	resolved, ok := svc.UserFromToken(token)
	require.True(t, ok)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestLoginIsCaseInsensitiveOnEmail(t *testing.T) {
	svc := NewService(NewMemoryStorage())

	_, user, err := svc.Login("  Admin@NeoView.com ", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "usr-001", user.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewService(NewMemoryStorage())

	_, _, err := svc.Login("admin@neoview.com", "wrong")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))

	_, _, err = svc.Login("nobody@neoview.com", "admin123")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestLogoutInvalidatesToken(t *testing.T) {
	svc := NewService(NewMemoryStorage())

	token, _, err := svc.Login("analista@neoview.com", "analista123")
	require.NoError(t, err)

	svc.Logout(token)
	_, ok := svc.UserFromToken(token)
	assert.False(t, ok)

	// Unknown token is a no-op.
	svc.Logout("missing")
}

func TestRoles(t *testing.T) {
	svc := NewService(NewMemoryStorage())

	_, admin, err := svc.Login("admin@neoview.com", "admin123")
	require.NoError(t, err)
	_, supervisor, err := svc.Login("supervisor@neoview.com", "super123")
	require.NoError(t, err)
	_, analyst, err := svc.Login("analista@neoview.com", "analista123")
	require.NoError(t, err)

	assert.True(t, admin.CanApprove())
	assert.True(t, supervisor.CanApprove())
	assert.False(t, analyst.CanApprove())
	assert.True(t, analyst.HasAnyRole(RoleAnalyst, RoleViewer))
	assert.False(t, analyst.HasAnyRole(RoleViewer))
}

func TestDisplayName(t *testing.T) {
	svc := NewService(NewMemoryStorage())

	assert.Equal(t, "João Santos", svc.DisplayName("usr-003"))
	assert.Equal(t, "", svc.DisplayName("usr-999"))
}
