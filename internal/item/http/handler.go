package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/identity"
	"shareit/internal/item"
	"shareit/internal/pkg/response"
)

type Handler struct {
	service item.Service
}

func NewHandler(service item.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	i, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemResponse(i))
}

func (h *Handler) ListOwn(c *gin.Context) {
	items, err := h.service.ListByOwner(c.Request.Context(), identity.CallerID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemResponses(items))
}

func (h *Handler) Search(c *gin.Context) {
	items, err := h.service.Search(c.Request.Context(), c.Query("text"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemResponses(items))
}
