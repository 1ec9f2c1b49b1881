package itemrequest

import (
	"net/http"
	"time"

	"shareit/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "item request not found")
	ErrBlankDescription = apperror.New(http.StatusBadRequest, "description must not be blank")
	ErrBadPaging        = apperror.New(http.StatusBadRequest, "invalid paging parameters")
)

// ItemRequest is a wish for an item that does not exist in the catalog
// yet. Owners answering the request create items pointing back at it.
type ItemRequest struct {
	ID          int64
	Description string
	RequesterID int64
	CreatedAt   time.Time
	// Items lists the catalog entries created in answer to this
	// request; read-only here, no matching happens in this service.
	Items []Reply
}

// Reply is a short reference to an item created for a request.
type Reply struct {
	ItemID  int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"ownerId"`
}
