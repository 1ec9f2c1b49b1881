package http

import "shareit/internal/item"

// ItemResponse is the catalog view of a listing.
type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// ItemTag is the short item reference embedded in other views.
type ItemTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewItemResponse(i *item.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		RequestID:   i.RequestID,
	}
}

func NewItemResponses(items []*item.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = NewItemResponse(it)
	}
	return out
}
