// Package pagination implements offset/limit windowing over filtered queries.
// The total is always the pre-pagination count of the same filtered set.
package pagination

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Options is an offset/limit window.
type Options struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// Normalize applies the default limit, the cap and a zero floor on offset.
func (o Options) Normalize() Options {
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	return o
}

// Paged carries one page of items plus the total size of the filtered set.
type Paged[T any] struct {
	Items []T
	Total int
}
