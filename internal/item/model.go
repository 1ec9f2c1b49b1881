package item

import (
	"net/http"

	"shareit/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "item not found")

// Item is a catalog listing. The booking core reads the availability
// flag and the owner id; it never mutates items.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	// RequestID points at the item request this listing was created in
	// answer to, if any.
	RequestID *int64
}
