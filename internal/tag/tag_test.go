package tag_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitaminP8/conduit/internal/mediator"
	"github.com/VitaminP8/conduit/internal/tag"
)

type stubTagStorage struct {
	names []string
}

func (s stubTagStorage) List(ctx context.Context) ([]string, error) {
	return s.names, nil
}

func TestListTags(t *testing.T) {
	pipeline := mediator.NewPipeline()

	t.Run("returns the stored names", func(t *testing.T) {
		h := tag.NewListTagsHandler(stubTagStorage{names: []string{"dragons", "training"}})

		res, err := mediator.Send(context.Background(), pipeline, tag.ListTagsQuery{}, h)
		require.NoError(t, err)
		assert.Equal(t, []string{"dragons", "training"}, res.Tags)
	})

	t.Run("no tags yields an empty list", func(t *testing.T) {
		h := tag.NewListTagsHandler(stubTagStorage{})

		res, err := mediator.Send(context.Background(), pipeline, tag.ListTagsQuery{}, h)
		require.NoError(t, err)
		assert.Empty(t, res.Tags)
	})
}
