package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agromarket-cm/agromarket/internal/domain"
)

func TestGetOrCreateNewSession(t *testing.T) {
	store := NewStore(0)

	sess := store.GetOrCreate("")
	require.NotNil(t, sess)
	assert.NotEmpty(t, sess.ID)
	assert.NotNil(t, sess.Cart)
	assert.Nil(t, sess.User())
	assert.Equal(t, 1, store.Len())
}

func TestGetOrCreateReturnsExisting(t *testing.T) {
	store := NewStore(0)

	first := store.GetOrCreate("")
	again := store.GetOrCreate(first.ID)

	assert.Same(t, first, again)
	assert.Equal(t, 1, store.Len())
}

func TestGetOrCreateUnknownIDMintsFresh(t *testing.T) {
	store := NewStore(0)

	sess := store.GetOrCreate("does-not-exist")
	assert.NotEqual(t, "does-not-exist", sess.ID)
	assert.Equal(t, 1, store.Len())
}

func TestGetUnknownSession(t *testing.T) {
	store := NewStore(0)

	_, err := store.Get("nope")
	require.Error(t, err)
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))

	_, err = store.Get("")
	require.Error(t, err)
}

func TestDelete(t *testing.T) {
	store := NewStore(0)
	sess := store.GetOrCreate("")

	store.Delete(sess.ID)
	_, err := store.Get(sess.ID)
	assert.Error(t, err)
	assert.Equal(t, 0, store.Len())

	// Deleting twice is harmless.
	store.Delete(sess.ID)
}

func TestUserLifecycle(t *testing.T) {
	store := NewStore(0)
	sess := store.GetOrCreate("")

	user := &domain.User{ID: "u1", Email: "jean@example.cm", FirstName: "Jean"}
	sess.SetUser(user)
	assert.Same(t, user, sess.User())

	sess.ClearUser()
	assert.Nil(t, sess.User())
}

func TestExpiry(t *testing.T) {
	store := NewStore(time.Hour)

	now := time.Now()
	store.now = func() time.Time { return now }

	sess := store.GetOrCreate("")

	// Still alive inside the TTL.
	now = now.Add(30 * time.Minute)
	_, err := store.Get(sess.ID)
	require.NoError(t, err)

	// Get touches lastSeen, so the clock restarts from the last access.
	now = now.Add(59 * time.Minute)
	_, err = store.Get(sess.ID)
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = store.Get(sess.ID)
	assert.Error(t, err)

	// An expired id passed to GetOrCreate yields a fresh session.
	fresh := store.GetOrCreate(sess.ID)
	assert.NotEqual(t, sess.ID, fresh.ID)
}

func TestPruneExpired(t *testing.T) {
	store := NewStore(time.Hour)

	now := time.Now()
	store.now = func() time.Time { return now }

	stale := store.GetOrCreate("")
	now = now.Add(2 * time.Hour)
	live := store.GetOrCreate("")

	pruned := store.PruneExpired()
	assert.Equal(t, 1, pruned)
	assert.Equal(t, 1, store.Len())

	_, err := store.Get(stale.ID)
	assert.Error(t, err)
	_, err = store.Get(live.ID)
	assert.NoError(t, err)
}

func TestConcurrentGetOrCreate(t *testing.T) {
	store := NewStore(0)
	sess := store.GetOrCreate("")

	done := make(chan struct{})
	for i := 0; i < 50; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			got := store.GetOrCreate(sess.ID)
			assert.Equal(t, sess.ID, got.ID)
		}()
	}
	for i := 0; i < 50; i++ {
		<-done
	}
	assert.Equal(t, 1, store.Len())
}
