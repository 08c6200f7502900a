package service

import "github.com/rehmoapp/rehmo/internal/domain"

// Decision is the outcome of an access check on gated content.
type Decision int

const (
	// Allowed means the content renders in full.
	Allowed Decision = iota
	// Gated means the content is hidden behind the premium upsell.
	Gated
)

func (d Decision) String() string {
	if d == Allowed {
		return "allowed"
	}
	return "gated"
}

// EntitlementPolicy decides whether content is visible in full and whether
// house advertising should render. It is stateless; every page-level gate in
// the app goes through this one policy instead of re-deriving the boolean.
type EntitlementPolicy struct{}

// NewEntitlementPolicy creates a new EntitlementPolicy.
func NewEntitlementPolicy() *EntitlementPolicy {
	return &EntitlementPolicy{}
}

// Check returns Allowed if the resource is free, or if the viewer is a
// signed-in premium user. Every other case is Gated, including anonymous
// visitors on premium content.
func (p *EntitlementPolicy) Check(resourcePremium bool, v domain.Viewer) Decision {
	if !resourcePremium || v.Premium() {
		return Allowed
	}
	return Gated
}

// ShowAds reports whether advertising should render for the viewer. Ads are
// suppressed only for signed-in premium users.
func (p *EntitlementPolicy) ShowAds(v domain.Viewer) bool {
	return !v.Premium()
}

// Upgrade returns a copy of the user with the premium flag set. It reports
// false with a nil user when no user is signed in, so callers can surface
// the failed upgrade instead of silently showing stale UI state.
func (p *EntitlementPolicy) Upgrade(u *domain.User) (*domain.User, bool) {
	if u == nil {
		return nil, false
	}
	upgraded := *u
	upgraded.Premium = true
	return &upgraded, true
}
