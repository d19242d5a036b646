package tag

import "context"

type TagStorage interface {
	// List returns all tag names, alphabetical.
	List(ctx context.Context) ([]string, error)
}
