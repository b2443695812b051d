package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oru-pavam-nair/BJPMission2025-sub002/models"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestStore() (*Store, Backend, *fakeClock) {
	clock := &fakeClock{t: time.Now()}
	backend := NewMemoryBackend()
	return NewStoreWithClock(backend, clock.Now), backend, clock
}

func TestLoginIsImmediatelyAuthenticated(t *testing.T) {
	store, _, _ := newTestStore()
	ctx := context.Background()

	session, err := store.Login(ctx, "9876543210")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	assert.True(t, session.IsAuthenticated)

	got, ok := store.Validate(ctx, session.Token)
	require.True(t, ok)
	assert.Equal(t, "9876543210", got.PhoneNumber)
}

func TestSessionExpiresAfterWindow(t *testing.T) {
	store, backend, clock := newTestStore()
	ctx := context.Background()

	session, err := store.Login(ctx, "9876543210")
	require.NoError(t, err)

	// Still valid at exactly the window boundary
	clock.Advance(models.SessionWindow)
	_, ok := store.Validate(ctx, session.Token)
	assert.True(t, ok)

	// One millisecond past the window: expired and cleared
	clock.Advance(time.Millisecond)
	_, ok = store.Validate(ctx, session.Token)
	assert.False(t, ok)

	_, found, err := backend.Get(ctx, session.Token)
	require.NoError(t, err)
	assert.False(t, found, "expired session must be deleted from the backend")
}

func TestValidateRejectsUnknownAndEmptyTokens(t *testing.T) {
	store, _, _ := newTestStore()
	ctx := context.Background()

	_, ok := store.Validate(ctx, "")
	assert.False(t, ok)
	_, ok = store.Validate(ctx, "never-issued")
	assert.False(t, ok)
}

func TestLogoutRemovesSession(t *testing.T) {
	store, _, _ := newTestStore()
	ctx := context.Background()

	session, err := store.Login(ctx, "9876543210")
	require.NoError(t, err)

	store.Logout(ctx, session.Token)
	_, ok := store.Validate(ctx, session.Token)
	assert.False(t, ok)
}

func TestUnauthenticatedRecordIsExpired(t *testing.T) {
	store, backend, clock := newTestStore()
	ctx := context.Background()

	// A record with the flag unset never validates, regardless of age
	backend.Put(ctx, models.Session{
		Token:           "stale",
		PhoneNumber:     "9876543210",
		LoginTime:       clock.Now().UnixMilli(),
		IsAuthenticated: false,
	})

	_, ok := store.Validate(ctx, "stale")
	assert.False(t, ok)
}
