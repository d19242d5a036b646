package profile

// Viewer is a per-request snapshot of the viewing user's edge sets. It is
// loaded once before mapping and consulted as in-memory set membership, so
// mapping a collection never issues additional queries. A nil Viewer is an
// unauthenticated request: every projection flag is false.
type Viewer struct {
	ID        uint
	Following map[uint]bool // user ids the viewer follows
	Favorites map[uint]bool // article ids the viewer favorited
}

func (v *Viewer) IsFollowing(userID uint) bool {
	return v != nil && v.Following[userID]
}

func (v *Viewer) HasFavorited(articleID uint) bool {
	return v != nil && v.Favorites[articleID]
}
