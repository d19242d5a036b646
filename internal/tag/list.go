package tag

import (
	"context"

	"github.com/VitaminP8/conduit/internal/mediator"
)

type ListTagsQuery struct {
	mediator.Query
}

type TagsResponse struct {
	Tags []string `json:"tags"`
}

type ListTagsHandler struct {
	tags TagStorage
}

func NewListTagsHandler(tags TagStorage) *ListTagsHandler {
	return &ListTagsHandler{tags: tags}
}

func (h *ListTagsHandler) Handle(ctx context.Context, req ListTagsQuery) (TagsResponse, error) {
	names, err := h.tags.List(ctx)
	if err != nil {
		return TagsResponse{}, err
	}
	return TagsResponse{Tags: names}, nil
}
