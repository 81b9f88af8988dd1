package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/velostats/raceadmin/auth"
	"github.com/velostats/raceadmin/auth/store"
)

func TestGuard_Allowed(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		guard := auth.NewGuard(store.NewMemory())
		require.False(t, guard.Allowed())
		require.ErrorIs(t, guard.Require(), auth.ErrLoginRequired)
	})

	t.Run("token without profile", func(t *testing.T) {
		s := store.NewMemory()
		require.NoError(t, s.Write("abc", nil))
		guard := auth.NewGuard(s)
		require.False(t, guard.Allowed())
	})

	t.Run("complete credential", func(t *testing.T) {
		s := store.NewMemory()
		require.NoError(t, s.Write("abc", &auth.AdminInfo{Name: "A", Email: "a@x.com"}))
		guard := auth.NewGuard(s)
		require.True(t, guard.Allowed())
		require.NoError(t, guard.Require())
	})

	t.Run("cleared credential", func(t *testing.T) {
		s := store.NewMemory()
		require.NoError(t, s.Write("abc", &auth.AdminInfo{Name: "A", Email: "a@x.com"}))
		require.NoError(t, s.Clear())
		guard := auth.NewGuard(s)
		require.False(t, guard.Allowed())
	})
}
