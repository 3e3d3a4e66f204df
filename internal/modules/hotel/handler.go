package hotel

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
	rg.GET("/hotels", h.ListHotels)
	rg.GET("/hotels/:hotelId", h.GetHotel)
}

func (h *Handler) ListHotels(c *gin.Context) {
	userID := c.GetInt64("user_id")

	hotels, err := h.service.ListHotels(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, hotels)
}

func (h *Handler) GetHotel(c *gin.Context) {
	userID := c.GetInt64("user_id")

	hotelID, err := strconv.ParseInt(c.Param("hotelId"), 10, 64)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	hotel, err := h.service.GetHotelWithRooms(c.Request.Context(), userID, hotelID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, hotel)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, ErrPaymentRequired):
		response.Message(c, http.StatusPaymentRequired, err.Error())
	default:
		response.Message(c, http.StatusInternalServerError, "Failed to load hotels")
	}
}
