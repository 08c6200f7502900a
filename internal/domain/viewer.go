package domain

// Viewer is the identity a request is evaluated under: either anonymous, or
// signed in with a premium flag. Constructing one through Anonymous or
// ViewerOf is the only place the nil-user check happens, so access decisions
// never re-implement it.
type Viewer struct {
	signedIn bool
	premium  bool
}

// Anonymous returns the viewer for a request with no signed-in user.
func Anonymous() Viewer {
	return Viewer{}
}

// ViewerOf returns the viewer for the given user. A nil user yields the
// anonymous viewer.
func ViewerOf(u *User) Viewer {
	if u == nil {
		return Anonymous()
	}
	return Viewer{signedIn: true, premium: u.Premium}
}

// SignedIn reports whether the viewer is a signed-in user.
func (v Viewer) SignedIn() bool { return v.signedIn }

// Premium reports whether the viewer is a signed-in premium user.
func (v Viewer) Premium() bool { return v.signedIn && v.premium }
