package booking

import (
	"errors"
	"net/http"
	"strconv"

	"eventdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/booking", h.GetBooking)
	rg.POST("/booking", h.CreateBooking)
	rg.PUT("/booking/:bookingId", h.ChangeBooking)
}

// GetBooking returns the caller's booking as {id, Room}. Any failure is a
// plain 404.
func (h *Handler) GetBooking(c *gin.Context) {
	userID := c.GetInt64("user_id")

	b, err := h.service.FetchBooking(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":   b.ID,
		"Room": b.Room,
	})
}

func (h *Handler) CreateBooking(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RoomID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	b, err := h.service.ReserveRoom(c.Request.Context(), req.RoomID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		response.Message(c, http.StatusForbidden, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookingId": b.ID})
}

func (h *Handler) ChangeBooking(c *gin.Context) {
	userID := c.GetInt64("user_id")

	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RoomID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	id, err := h.service.ChangeBookingRoom(c.Request.Context(), req.RoomID, userID, bookingID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		response.Message(c, http.StatusForbidden, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookingId": id})
}
