package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/rehmoapp/rehmo/internal/domain"
)

// FavoritesService maintains each user's set of favorite recipe IDs. A set is
// read from the key-value store the first time its user shows up, kept in
// memory after that, and written through on every mutation, one record per
// user. State is keyed by user ID and every mutation runs load, update, and
// persist under one lock acquisition, so requests from different users can
// interleave without touching each other's sets.
type FavoritesService struct {
	mu       sync.Mutex
	kv       domain.KVStore
	notifier domain.Notifier

	sets map[int64]map[string]struct{}
}

// NewFavoritesService creates a FavoritesService backed by the given
// key-value store, emitting user feedback through the notifier.
func NewFavoritesService(kv domain.KVStore, notifier domain.Notifier) *FavoritesService {
	return &FavoritesService{
		kv:       kv,
		notifier: notifier,
		sets:     make(map[int64]map[string]struct{}),
	}
}

func favoritesKey(userID int64) string {
	return "favorites/" + strconv.FormatInt(userID, 10)
}

// OnUserChanged makes sure the identity's favorites are loaded. A nil user
// owns no stored set, so there is nothing to do. An already-loaded user
// keeps their cached set. On a storage read failure nothing is cached (the
// next request retries) and the error is returned wrapped in
// domain.ErrPersistence.
func (s *FavoritesService) OnUserChanged(ctx context.Context, user *domain.User) error {
	if user == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.loadLocked(ctx, user.ID)
	return err
}

// loadLocked returns the user's set, reading it from the store on first use.
// Callers must hold the mutex.
func (s *FavoritesService) loadLocked(ctx context.Context, userID int64) (map[string]struct{}, error) {
	if set, ok := s.sets[userID]; ok {
		return set, nil
	}

	set := make(map[string]struct{})
	raw, err := s.kv.Get(ctx, favoritesKey(userID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.sets[userID] = set
			return set, nil
		}
		return nil, fmt.Errorf("%w: load favorites: %v", domain.ErrPersistence, err)
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("%w: decode favorites: %v", domain.ErrPersistence, err)
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}
	s.sets[userID] = set
	return set, nil
}

// Add saves a recipe to the user's favorites. A nil user gets a sign-in
// prompt and domain.ErrAuthRequired without any state being touched. Adding
// an existing member succeeds with no side effects. The updated set is
// persisted before the in-memory set changes, so a failed write leaves
// memory and storage consistent.
func (s *FavoritesService) Add(ctx context.Context, user *domain.User, recipeID string) error {
	if user == nil {
		s.notifier.Notify(ctx, 0, domain.NotifyAlert,
			"Sign in required", "Please sign in to save recipes to your favorites.")
		return domain.ErrAuthRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.loadLocked(ctx, user.ID)
	if err != nil {
		return err
	}
	if _, ok := set[recipeID]; ok {
		return nil
	}

	updated := make(map[string]struct{}, len(set)+1)
	for id := range set {
		updated[id] = struct{}{}
	}
	updated[recipeID] = struct{}{}

	if err := s.persist(ctx, user.ID, updated); err != nil {
		return err
	}

	s.sets[user.ID] = updated
	s.notifier.Notify(ctx, user.ID, domain.NotifyInfo,
		"Added to Favorites", "Recipe has been saved to your favorites.")
	return nil
}

// Remove deletes a recipe from the user's favorites. Removal is idempotent
// and, unlike Add, has no signed-in precondition: with a nil user it is a
// successful no-op that still emits the feedback notification.
func (s *FavoritesService) Remove(ctx context.Context, user *domain.User, recipeID string) error {
	if user == nil {
		s.notifier.Notify(ctx, 0, domain.NotifyInfo,
			"Removed from Favorites", "Recipe has been removed from your favorites.")
		return nil
	}

	if err := s.removeLocked(ctx, user.ID, recipeID); err != nil {
		return err
	}

	s.notifier.Notify(ctx, user.ID, domain.NotifyInfo,
		"Removed from Favorites", "Recipe has been removed from your favorites.")
	return nil
}

func (s *FavoritesService) removeLocked(ctx context.Context, userID int64, recipeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.loadLocked(ctx, userID)
	if err != nil {
		return err
	}

	updated := make(map[string]struct{}, len(set))
	for id := range set {
		if id != recipeID {
			updated[id] = struct{}{}
		}
	}

	if err := s.persist(ctx, userID, updated); err != nil {
		return err
	}
	s.sets[userID] = updated
	return nil
}

// IsFavorite reports whether the recipe is in the user's loaded favorites.
func (s *FavoritesService) IsFavorite(user *domain.User, recipeID string) bool {
	if user == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sets[user.ID][recipeID]
	return ok
}

// Snapshot returns a sorted copy of the user's loaded favorite recipe IDs.
func (s *FavoritesService) Snapshot(user *domain.User) []string {
	if user == nil {
		return []string{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.sets[user.ID]))
	for id := range s.sets[user.ID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// persist writes the full set as a JSON array under the user's key. The
// whole set is rewritten on every mutation; cardinality is expected to stay
// in the tens to low hundreds.
func (s *FavoritesService) persist(ctx context.Context, userID int64, set map[string]struct{}) error {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("%w: encode favorites: %v", domain.ErrPersistence, err)
	}
	if err := s.kv.Set(ctx, favoritesKey(userID), string(raw)); err != nil {
		return fmt.Errorf("%w: save favorites: %v", domain.ErrPersistence, err)
	}
	return nil
}
