package session_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hosteldesk/backend/internal/models"
	"hosteldesk/backend/internal/session"
	"hosteldesk/backend/internal/storage"
)

type memBackend struct {
	data map[string][]byte
}

func (b *memBackend) Load(_ context.Context, namespace string) ([]byte, bool, error) {
	d, ok := b.data[namespace]
	return d, ok, nil
}

func (b *memBackend) Save(_ context.Context, namespace string, data []byte) error {
	b.data[namespace] = data
	return nil
}

// memTokenStore is an in-memory TokenStore for tests; TTLs are recorded
// but never enforced.
type memTokenStore struct {
	live map[string]time.Duration
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{live: make(map[string]time.Duration)}
}

func (s *memTokenStore) Put(jti string, ttl time.Duration) error {
	s.live[jti] = ttl
	return nil
}

func (s *memTokenStore) Exists(jti string) (bool, error) {
	_, ok := s.live[jti]
	return ok, nil
}

func (s *memTokenStore) Delete(jti string) error {
	delete(s.live, jti)
	return nil
}

func newGate(t *testing.T) (*session.Service, *storage.Service, *memTokenStore) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	store := storage.NewService(&memBackend{data: make(map[string][]byte)}, nil, log)
	tokens := newMemTokenStore()
	return session.NewService(store, tokens, []byte("test-secret")), store, tokens
}

func TestLoginStudent_IssuesResolvableToken(t *testing.T) {
	gate, store, _ := newGate(t)
	created, err := store.CreateStudent(models.Student{
		Name: "Gunasekar", RegisterNumber: "192411045", RoomNumber: "509", PhoneNumber: "9876543210",
	})
	require.NoError(t, err)

	token, user, err := gate.LoginStudent("192411045")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, models.RoleStudent, user.Role)
	require.NotNil(t, user.Student)
	assert.Equal(t, created.ID, user.Student.ID)

	resolved, err := gate.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, resolved.Role)
	assert.Equal(t, created.ID, resolved.ID())
}

func TestLoginStudent_UnknownRegisterNumber(t *testing.T) {
	gate, _, _ := newGate(t)

	_, _, err := gate.LoginStudent("000000000")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLoginWarden(t *testing.T) {
	gate, store, _ := newGate(t)
	warden, err := store.CreateWarden("warden1", "Mr. Sharma")
	require.NoError(t, err)

	token, user, err := gate.LoginWarden("warden1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleWarden, user.Role)
	require.NotNil(t, user.Warden)
	assert.Equal(t, warden.ID, user.Warden.ID)

	resolved, err := gate.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleWarden, resolved.Role)
}

func TestLogout_RevokesToken(t *testing.T) {
	gate, store, tokens := newGate(t)
	_, err := store.CreateStudent(models.Student{
		Name: "A", RegisterNumber: "192411050", RoomNumber: "1", PhoneNumber: "9",
	})
	require.NoError(t, err)

	token, _, err := gate.LoginStudent("192411050")
	require.NoError(t, err)
	assert.Len(t, tokens.live, 1)

	require.NoError(t, gate.Logout(token))
	assert.Empty(t, tokens.live)

	_, err = gate.Authenticate(token)
	assert.ErrorIs(t, err, session.ErrInvalidToken)

	// Logging out an already-dead token is a no-op, not an error.
	assert.NoError(t, gate.Logout(token))
}

func TestAuthenticate_RejectsGarbageAndForeignTokens(t *testing.T) {
	gate, store, _ := newGate(t)
	_, err := store.CreateStudent(models.Student{
		Name: "A", RegisterNumber: "192411051", RoomNumber: "1", PhoneNumber: "9",
	})
	require.NoError(t, err)

	_, err = gate.Authenticate("not-a-jwt")
	assert.ErrorIs(t, err, session.ErrInvalidToken)

	// Token signed under a different secret.
	other := session.NewService(store, newMemTokenStore(), []byte("other-secret"))
	foreign, _, err := other.LoginStudent("192411051")
	require.NoError(t, err)

	_, err = gate.Authenticate(foreign)
	assert.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestAuthenticate_ResolvesLiveRecord(t *testing.T) {
	gate, store, _ := newGate(t)
	created, err := store.CreateStudent(models.Student{
		Name: "Priya Sharma", RegisterNumber: "192411046", RoomNumber: "302", PhoneNumber: "9876543211",
	})
	require.NoError(t, err)

	token, _, err := gate.LoginStudent("192411046")
	require.NoError(t, err)

	_, err = store.UpdateStudentContact(created.ID, "9333333333")
	require.NoError(t, err)

	// Profile edit made after login is visible on the next request.
	resolved, err := gate.Authenticate(token)
	require.NoError(t, err)
	require.NotNil(t, resolved.Student)
	assert.Equal(t, "9333333333", resolved.Student.PhoneNumber)
}
