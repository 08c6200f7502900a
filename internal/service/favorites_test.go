package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rehmoapp/rehmo/internal/domain"
	"github.com/rehmoapp/rehmo/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKV is an in-memory domain.KVStore whose writes and reads can be made
// to fail on demand.
type fakeKV struct {
	mu       sync.Mutex
	data     map[string]string
	failGet  bool
	failSet  bool
	setCalls int
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return "", fmt.Errorf("kv read failure")
	}
	v, ok := f.data[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

func (f *fakeKV) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setCalls++
	if f.failSet {
		return fmt.Errorf("kv write failure")
	}
	f.data[key] = value
	return nil
}

func (f *fakeKV) writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setCalls
}

// fakeNotifier records emitted notifications.
type fakeNotifier struct {
	mu      sync.Mutex
	titles  []string
	userIDs []int64
}

func (f *fakeNotifier) Notify(ctx context.Context, userID int64, kind, title, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.titles = append(f.titles, title)
	f.userIDs = append(f.userIDs, userID)
}

func newFavorites() (*service.FavoritesService, *fakeKV, *fakeNotifier) {
	kv := newFakeKV()
	notifier := &fakeNotifier{}
	return service.NewFavoritesService(kv, notifier), kv, notifier
}

func TestFavorites_AddAndCheck(t *testing.T) {
	favs, _, notifier := newFavorites()
	ctx := context.Background()
	alice := &domain.User{ID: 1}

	require.NoError(t, favs.OnUserChanged(ctx, alice))
	require.NoError(t, favs.Add(ctx, alice, "r1"))

	assert.True(t, favs.IsFavorite(alice, "r1"))
	assert.False(t, favs.IsFavorite(alice, "r2"))
	assert.Equal(t, []string{"r1"}, favs.Snapshot(alice))
	assert.Equal(t, []string{"Added to Favorites"}, notifier.titles)
}

func TestFavorites_AddIsIdempotent(t *testing.T) {
	favs, kv, notifier := newFavorites()
	ctx := context.Background()
	alice := &domain.User{ID: 1}

	require.NoError(t, favs.Add(ctx, alice, "r1"))
	writesAfterFirst := kv.writes()

	// Adding an existing member succeeds with no write and no notification.
	require.NoError(t, favs.Add(ctx, alice, "r1"))
	assert.Equal(t, writesAfterFirst, kv.writes())
	assert.Len(t, notifier.titles, 1)
	assert.Equal(t, []string{"r1"}, favs.Snapshot(alice))
}

func TestFavorites_AnonymousAddFails(t *testing.T) {
	favs, kv, notifier := newFavorites()
	ctx := context.Background()

	err := favs.Add(ctx, nil, "r1")
	assert.ErrorIs(t, err, domain.ErrAuthRequired)

	// No state was touched, but the sign-in prompt was emitted.
	assert.Zero(t, kv.writes())
	assert.False(t, favs.IsFavorite(nil, "r1"))
	require.Equal(t, []string{"Sign in required"}, notifier.titles)
	assert.Equal(t, []int64{0}, notifier.userIDs)
}

func TestFavorites_AnonymousRemoveIsNoOpWithNotification(t *testing.T) {
	favs, kv, notifier := newFavorites()
	ctx := context.Background()

	// Removal has no sign-in precondition: it succeeds and still notifies.
	require.NoError(t, favs.Remove(ctx, nil, "r1"))
	assert.Zero(t, kv.writes())
	assert.Equal(t, []string{"Removed from Favorites"}, notifier.titles)
}

func TestFavorites_RemoveIsIdempotent(t *testing.T) {
	favs, _, _ := newFavorites()
	ctx := context.Background()
	alice := &domain.User{ID: 1}

	require.NoError(t, favs.Add(ctx, alice, "r1"))

	require.NoError(t, favs.Remove(ctx, alice, "r1"))
	assert.False(t, favs.IsFavorite(alice, "r1"))

	// Removing again still succeeds.
	require.NoError(t, favs.Remove(ctx, alice, "r1"))
	assert.Empty(t, favs.Snapshot(alice))
}

func TestFavorites_RoundTripThroughStore(t *testing.T) {
	favs, kv, _ := newFavorites()
	ctx := context.Background()
	alice := &domain.User{ID: 1}

	require.NoError(t, favs.Add(ctx, alice, "r2"))
	require.NoError(t, favs.Add(ctx, alice, "r1"))

	// A fresh process reads the set back from the store, sorted.
	fresh := service.NewFavoritesService(kv, &fakeNotifier{})
	require.NoError(t, fresh.OnUserChanged(ctx, alice))
	assert.Equal(t, []string{"r1", "r2"}, fresh.Snapshot(alice))
}

func TestFavorites_UsersAreIsolated(t *testing.T) {
	favs, _, _ := newFavorites()
	ctx := context.Background()
	alice := &domain.User{ID: 1}
	bob := &domain.User{ID: 2}

	require.NoError(t, favs.Add(ctx, alice, "r1"))
	require.NoError(t, favs.Add(ctx, bob, "r9"))

	assert.Equal(t, []string{"r1"}, favs.Snapshot(alice))
	assert.Equal(t, []string{"r9"}, favs.Snapshot(bob))
	assert.False(t, favs.IsFavorite(bob, "r1"))
	assert.False(t, favs.IsFavorite(alice, "r9"))
}

// One user's sign-in landing between another user's sign-in and mutation
// must not redirect the mutation: each set stays with its owner, in memory
// and in the store.
func TestFavorites_InterleavedIdentityChangesStayIsolated(t *testing.T) {
	favs, kv, _ := newFavorites()
	ctx := context.Background()
	alice := &domain.User{ID: 1}
	bob := &domain.User{ID: 2}

	require.NoError(t, favs.OnUserChanged(ctx, alice))
	require.NoError(t, favs.OnUserChanged(ctx, bob))
	require.NoError(t, favs.Add(ctx, alice, "alice-secret-recipe"))

	assert.True(t, favs.IsFavorite(alice, "alice-secret-recipe"))
	assert.Empty(t, favs.Snapshot(bob))

	// The persisted records agree with memory.
	fresh := service.NewFavoritesService(kv, &fakeNotifier{})
	require.NoError(t, fresh.OnUserChanged(ctx, alice))
	require.NoError(t, fresh.OnUserChanged(ctx, bob))
	assert.Equal(t, []string{"alice-secret-recipe"}, fresh.Snapshot(alice))
	assert.Empty(t, fresh.Snapshot(bob))
}

func TestFavorites_ConcurrentUsersDoNotShareState(t *testing.T) {
	favs, kv, _ := newFavorites()
	ctx := context.Background()
	alice := &domain.User{ID: 1}
	bob := &domain.User{ID: 2}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			assert.NoError(t, favs.OnUserChanged(ctx, alice))
			assert.NoError(t, favs.Add(ctx, alice, fmt.Sprintf("a%02d", n)))
		}(i)
		go func(n int) {
			defer wg.Done()
			assert.NoError(t, favs.OnUserChanged(ctx, bob))
			assert.NoError(t, favs.Add(ctx, bob, fmt.Sprintf("b%02d", n)))
		}(i)
	}
	wg.Wait()

	require.Len(t, favs.Snapshot(alice), 10)
	require.Len(t, favs.Snapshot(bob), 10)
	for _, id := range favs.Snapshot(alice) {
		assert.False(t, favs.IsFavorite(bob, id))
	}

	fresh := service.NewFavoritesService(kv, &fakeNotifier{})
	require.NoError(t, fresh.OnUserChanged(ctx, alice))
	require.NoError(t, fresh.OnUserChanged(ctx, bob))
	assert.Equal(t, favs.Snapshot(alice), fresh.Snapshot(alice))
	assert.Equal(t, favs.Snapshot(bob), fresh.Snapshot(bob))
}

func TestFavorites_SameUserEventIsNoOp(t *testing.T) {
	favs, kv, _ := newFavorites()
	ctx := context.Background()
	alice := &domain.User{ID: 1}

	require.NoError(t, favs.OnUserChanged(ctx, alice))
	require.NoError(t, favs.Add(ctx, alice, "r1"))

	// Re-delivering a loaded identity must not reload and drop the cache,
	// even when the store would fail.
	kv.failGet = true
	require.NoError(t, favs.OnUserChanged(ctx, alice))
	assert.True(t, favs.IsFavorite(alice, "r1"))
}

func TestFavorites_FailedWriteLeavesMemoryUnchanged(t *testing.T) {
	favs, kv, notifier := newFavorites()
	ctx := context.Background()
	alice := &domain.User{ID: 1}

	require.NoError(t, favs.Add(ctx, alice, "r1"))

	kv.failSet = true
	err := favs.Add(ctx, alice, "r2")
	assert.ErrorIs(t, err, domain.ErrPersistence)

	// The in-memory set still matches what is persisted.
	assert.True(t, favs.IsFavorite(alice, "r1"))
	assert.False(t, favs.IsFavorite(alice, "r2"))
	assert.Equal(t, []string{"Added to Favorites"}, notifier.titles)
}

func TestFavorites_LoadFailureServesNothing(t *testing.T) {
	favs, kv, _ := newFavorites()
	ctx := context.Background()
	alice := &domain.User{ID: 1}
	bob := &domain.User{ID: 2}

	require.NoError(t, favs.Add(ctx, alice, "r1"))

	// Bob's load fails: he gets the error and an empty view, and nothing of
	// Alice's shows through.
	kv.failGet = true
	err := favs.OnUserChanged(ctx, bob)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Empty(t, favs.Snapshot(bob))
	assert.Equal(t, []string{"r1"}, favs.Snapshot(alice))

	// Once the store recovers, the next event loads normally.
	kv.failGet = false
	require.NoError(t, favs.OnUserChanged(ctx, bob))
	assert.Empty(t, favs.Snapshot(bob))
}

func TestFavorites_CorruptRecordIsPersistenceError(t *testing.T) {
	favs, kv, _ := newFavorites()
	ctx := context.Background()
	alice := &domain.User{ID: 1}

	kv.data["favorites/1"] = "{not json"
	err := favs.OnUserChanged(ctx, alice)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Empty(t, favs.Snapshot(alice))
}

func TestFavorites_AddRemoveScenario(t *testing.T) {
	favs, _, notifier := newFavorites()
	ctx := context.Background()
	alice := &domain.User{ID: 1}

	require.NoError(t, favs.Add(ctx, alice, "r1"))
	require.NoError(t, favs.Add(ctx, alice, "r2"))
	require.NoError(t, favs.Remove(ctx, alice, "r1"))

	assert.Equal(t, []string{"r2"}, favs.Snapshot(alice))
	assert.Equal(t, []string{
		"Added to Favorites",
		"Added to Favorites",
		"Removed from Favorites",
	}, notifier.titles)
}
