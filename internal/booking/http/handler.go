package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/booking"
	"shareit/internal/identity"
	"shareit/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	b, err := h.service.Create(c.Request.Context(), identity.CallerID(c), body.ItemID, body.Start.Time, body.End.Time)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Decide(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	approved, ok := c.GetQuery("approved")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "approved parameter is required"})
		return
	}

	b, err := h.service.Decide(c.Request.Context(), identity.CallerID(c), id, approved)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	b, err := h.service.Get(c.Request.Context(), identity.CallerID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) ListForBooker(c *gin.Context) {
	state, err := booking.ParseState(c.DefaultQuery("state", "ALL"))
	if err != nil {
		response.Error(c, err)
		return
	}

	bookings, err := h.service.ListForBooker(c.Request.Context(), identity.CallerID(c), state)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponses(bookings))
}

func (h *Handler) ListForOwner(c *gin.Context) {
	state, err := booking.ParseState(c.DefaultQuery("state", "ALL"))
	if err != nil {
		response.Error(c, err)
		return
	}

	bookings, err := h.service.ListForOwner(c.Request.Context(), identity.CallerID(c), state)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponses(bookings))
}
