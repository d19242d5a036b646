package profile

import "context"

// ProfileStorage manages the directed follow edges of the social graph.
// Follow and Unfollow are idempotent toggles: repeated calls in the same
// direction leave the edge set unchanged and return no error.
type ProfileStorage interface {
	Follow(ctx context.Context, followerID, followingID uint) error
	Unfollow(ctx context.Context, followerID, followingID uint) error
	IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
	// FollowingIDs returns the set of user ids the follower follows,
	// loaded once per request for projection (no per-row queries).
	FollowingIDs(ctx context.Context, followerID uint) (map[uint]bool, error)
}
