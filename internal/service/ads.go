package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/rehmoapp/rehmo/internal/domain"
)

// AdService serves house advertising. Inventory is loaded into a shuffled
// per-placement rotation; Next walks the rotation so repeated requests cycle
// through every ad before repeating. Reshuffle reloads and reshuffles, and
// is wired to a daily job.
type AdService struct {
	ads    domain.AdRepository
	policy *EntitlementPolicy

	mu       sync.Mutex
	rotation map[domain.AdPlacement][]domain.Ad
	cursor   map[domain.AdPlacement]int
}

// NewAdService creates a new AdService.
func NewAdService(ads domain.AdRepository, policy *EntitlementPolicy) *AdService {
	return &AdService{
		ads:      ads,
		policy:   policy,
		rotation: make(map[domain.AdPlacement][]domain.Ad),
		cursor:   make(map[domain.AdPlacement]int),
	}
}

// ShouldShow reports whether ads render for the viewer.
func (s *AdService) ShouldShow(v domain.Viewer) bool {
	return s.policy.ShowAds(v)
}

// ListByPlacement returns the inventory for one placement.
func (s *AdService) ListByPlacement(ctx context.Context, placement domain.AdPlacement) ([]domain.Ad, error) {
	if !domain.ValidPlacement(placement) {
		return nil, fmt.Errorf("%w: unknown placement %q", domain.ErrInvalidInput, placement)
	}
	return s.ads.ListByPlacement(ctx, placement)
}

// Next returns the next ad in the rotation for the placement, or
// domain.ErrNotFound when the placement has no inventory.
func (s *AdService) Next(ctx context.Context, placement domain.AdPlacement) (*domain.Ad, error) {
	if !domain.ValidPlacement(placement) {
		return nil, fmt.Errorf("%w: unknown placement %q", domain.ErrInvalidInput, placement)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.rotation[placement]) == 0 {
		if err := s.loadLocked(ctx); err != nil {
			return nil, err
		}
	}

	ads := s.rotation[placement]
	if len(ads) == 0 {
		return nil, domain.ErrNotFound
	}

	ad := ads[s.cursor[placement]%len(ads)]
	s.cursor[placement]++
	return &ad, nil
}

// Reshuffle reloads the inventory and randomizes rotation order.
func (s *AdService) Reshuffle(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *AdService) loadLocked(ctx context.Context) error {
	all, err := s.ads.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load ad inventory: %w", err)
	}

	rotation := make(map[domain.AdPlacement][]domain.Ad)
	for _, ad := range all {
		rotation[ad.Placement] = append(rotation[ad.Placement], ad)
	}
	for _, ads := range rotation {
		rand.Shuffle(len(ads), func(i, j int) {
			ads[i], ads[j] = ads[j], ads[i]
		})
	}

	s.rotation = rotation
	s.cursor = make(map[domain.AdPlacement]int)
	return nil
}

// SeedInventory loads the built-in ad inventory on first run (idempotent).
func (s *AdService) SeedInventory(ctx context.Context) error {
	count, err := s.ads.Count(ctx)
	if err != nil {
		return fmt.Errorf("count ads: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := range builtinAds {
		if err := s.ads.Upsert(ctx, &builtinAds[i]); err != nil {
			return fmt.Errorf("seed ad %s: %w", builtinAds[i].ID, err)
		}
	}
	return nil
}
