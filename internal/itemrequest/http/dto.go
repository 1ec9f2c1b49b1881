package http

import (
	"time"

	"shareit/internal/itemrequest"
)

type CreateRequestBody struct {
	Description string `json:"description"`
}

type ReplyResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"ownerId"`
}

type RequestResponse struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Created     time.Time       `json:"created"`
	Items       []ReplyResponse `json:"items"`
}

func NewRequestResponse(r *itemrequest.ItemRequest) RequestResponse {
	items := make([]ReplyResponse, len(r.Items))
	for i, reply := range r.Items {
		items[i] = ReplyResponse{ID: reply.ItemID, Name: reply.Name, OwnerID: reply.OwnerID}
	}
	return RequestResponse{
		ID:          r.ID,
		Description: r.Description,
		Created:     r.CreatedAt,
		Items:       items,
	}
}

func NewRequestResponses(requests []*itemrequest.ItemRequest) []RequestResponse {
	out := make([]RequestResponse, len(requests))
	for i, r := range requests {
		out[i] = NewRequestResponse(r)
	}
	return out
}
