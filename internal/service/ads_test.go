package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rehmoapp/rehmo/internal/domain"
	"github.com/rehmoapp/rehmo/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdService(t *testing.T) *service.AdService {
	t.Helper()
	db := newTestDB(t)
	ads := service.NewAdService(db.Ads(), service.NewEntitlementPolicy())
	require.NoError(t, ads.SeedInventory(context.Background()))
	return ads
}

func TestAdService_ListByPlacement(t *testing.T) {
	ads := newTestAdService(t)
	ctx := context.Background()

	banners, err := ads.ListByPlacement(ctx, domain.AdBanner)
	require.NoError(t, err)
	assert.Len(t, banners, 3)
	for _, ad := range banners {
		assert.Equal(t, domain.AdBanner, ad.Placement)
	}

	popups, err := ads.ListByPlacement(ctx, domain.AdPopup)
	require.NoError(t, err)
	assert.Len(t, popups, 1)
}

func TestAdService_ListByPlacement_Unknown(t *testing.T) {
	ads := newTestAdService(t)

	_, err := ads.ListByPlacement(context.Background(), "footer")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdService_NextCyclesThroughRotation(t *testing.T) {
	ads := newTestAdService(t)
	ctx := context.Background()

	// Three banner ads: three calls must return each exactly once, the
	// fourth starts the cycle over.
	seen := make(map[string]int)
	for i := 0; i < 3; i++ {
		ad, err := ads.Next(ctx, domain.AdBanner)
		require.NoError(t, err)
		seen[ad.ID]++
	}
	assert.Len(t, seen, 3)

	ad, err := ads.Next(ctx, domain.AdBanner)
	require.NoError(t, err)
	assert.Contains(t, seen, ad.ID)
}

func TestAdService_NextUnknownPlacement(t *testing.T) {
	ads := newTestAdService(t)

	_, err := ads.Next(context.Background(), "marquee")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdService_NextEmptyInventory(t *testing.T) {
	db := newTestDB(t)
	ads := service.NewAdService(db.Ads(), service.NewEntitlementPolicy())

	_, err := ads.Next(context.Background(), domain.AdBanner)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestAdService_Reshuffle(t *testing.T) {
	ads := newTestAdService(t)
	ctx := context.Background()

	_, err := ads.Next(ctx, domain.AdSidebar)
	require.NoError(t, err)

	// Reshuffling resets the rotation; the next call still serves a valid
	// sidebar ad.
	require.NoError(t, ads.Reshuffle(ctx))
	ad, err := ads.Next(ctx, domain.AdSidebar)
	require.NoError(t, err)
	assert.Equal(t, domain.AdSidebar, ad.Placement)
}

func TestAdService_ShouldShow(t *testing.T) {
	ads := newTestAdService(t)

	assert.True(t, ads.ShouldShow(domain.Anonymous()))
	assert.True(t, ads.ShouldShow(domain.ViewerOf(&domain.User{ID: 1})))
	assert.False(t, ads.ShouldShow(domain.ViewerOf(&domain.User{ID: 2, Premium: true})))
}

func TestAdService_SeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ads := service.NewAdService(db.Ads(), service.NewEntitlementPolicy())
	ctx := context.Background()

	require.NoError(t, ads.SeedInventory(ctx))
	require.NoError(t, ads.SeedInventory(ctx))

	count, err := db.Ads().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, count)
}
