package domain

import "context"

// AdPlacement identifies where on a page an ad renders.
type AdPlacement string

const (
	AdBanner  AdPlacement = "banner"
	AdSidebar AdPlacement = "sidebar"
	AdInline  AdPlacement = "inline"
	AdPopup   AdPlacement = "popup"
)

// ValidPlacement reports whether p is a known ad placement.
func ValidPlacement(p AdPlacement) bool {
	switch p {
	case AdBanner, AdSidebar, AdInline, AdPopup:
		return true
	}
	return false
}

// Ad is a piece of house advertising inventory.
type Ad struct {
	ID          string
	Placement   AdPlacement
	Title       string
	Description string
	Image       string
	Link        string
	CTA         string
	Category    string
}

// AdRepository defines persistence operations for the ad inventory.
type AdRepository interface {
	Upsert(ctx context.Context, ad *Ad) error
	ListByPlacement(ctx context.Context, placement AdPlacement) ([]Ad, error)
	ListAll(ctx context.Context) ([]Ad, error)
	Count(ctx context.Context) (int, error)
}
