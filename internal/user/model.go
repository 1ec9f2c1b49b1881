package user

import (
	"net/http"

	"shareit/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "user not found")

// User is a directory record. The booking core only ever reads users;
// accounts are managed outside this service.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
