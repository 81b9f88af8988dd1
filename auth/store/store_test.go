package store_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/velostats/raceadmin/auth"
	"github.com/velostats/raceadmin/auth/store"
)

func newDual(t *testing.T) (*store.Dual, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials.json")
	return store.New(path), path
}

func TestDual_RoundTrip(t *testing.T) {
	s, _ := newDual(t)

	admin := &auth.AdminInfo{Name: "A", Email: "a@x.com"}
	require.NoError(t, s.Write("abc", admin))

	cred := s.Read()
	require.Equal(t, "abc", cred.Token)
	require.NotNil(t, cred.Admin)
	require.Equal(t, "A", cred.Admin.Name)
	require.Equal(t, "a@x.com", cred.Admin.Email)
}

func TestDual_PartialWritePreservesProfile(t *testing.T) {
	s, _ := newDual(t)

	require.NoError(t, s.Write("t1", &auth.AdminInfo{Name: "A", Email: "a@x.com"}))
	require.NoError(t, s.Write("t2", nil))

	cred := s.Read()
	require.Equal(t, "t2", cred.Token)
	require.NotNil(t, cred.Admin)
	require.Equal(t, "A", cred.Admin.Name)
}

func TestDual_ClearIsTotalAndIdempotent(t *testing.T) {
	s, _ := newDual(t)

	require.NoError(t, s.Write("t1", &auth.AdminInfo{Name: "A", Email: "a@x.com"}))
	require.NoError(t, s.Clear())

	cred := s.Read()
	require.Empty(t, cred.Token)
	require.Nil(t, cred.Admin)

	// clearing again is a no-op
	require.NoError(t, s.Clear())
	cred = s.Read()
	require.Empty(t, cred.Token)
	require.Nil(t, cred.Admin)
}

func TestDual_EmptyTokenRejected(t *testing.T) {
	s, _ := newDual(t)
	require.ErrorIs(t, s.Write("", nil), auth.ErrEmptyToken)
}

func TestFile_SurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")

	first := store.NewFile(path)
	require.NoError(t, first.Write("abc", &auth.AdminInfo{Name: "A", Email: "a@x.com"}))

	// a fresh store over the same file sees the credential
	second := store.NewFile(path)
	cred := second.Read()
	require.Equal(t, "abc", cred.Token)
	require.NotNil(t, cred.Admin)
	require.Equal(t, "a@x.com", cred.Admin.Email)
}

func TestFile_MalformedProfileReadsAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	snapshot := map[string]json.RawMessage{
		"token":     json.RawMessage(`"abc"`),
		"adminInfo": json.RawMessage(`"not an object"`),
	}
	data, err := json.Marshal(snapshot)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	s := store.NewFile(path)
	cred := s.Read()
	require.Equal(t, "abc", cred.Token)
	require.Nil(t, cred.Admin)
}

func TestDual_DurableTokenIsFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")

	durable := store.NewFile(path)
	require.NoError(t, durable.Write("persisted", &auth.AdminInfo{Name: "A", Email: "a@x.com"}))

	// a session tier that never saw a write falls back to the durable token
	s := store.NewDual(store.NewMemory(), durable)
	cred := s.Read()
	require.Equal(t, "persisted", cred.Token)

	// a session-tier write wins over the durable value
	session := store.NewMemory()
	require.NoError(t, session.Write("fresh", nil))
	s = store.NewDual(session, durable)
	require.Equal(t, "fresh", s.Read().Token)
}
