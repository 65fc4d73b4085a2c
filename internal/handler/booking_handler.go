package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Leganyst/barbershop-booking/internal/middleware"
	"github.com/Leganyst/barbershop-booking/internal/service"
)

type BookingHandler struct {
	bookings *service.BookingService
	logger   *zap.Logger
}

func NewBookingHandler(bookings *service.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{bookings: bookings, logger: logger}
}

type createBookingRequest struct {
	BarberID uuid.UUID `json:"barber_id" binding:"required"`
	Start    string    `json:"start" binding:"required"`
	End      string    `json:"end" binding:"required"`
}

// Create — POST /api/bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	residentID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	start, err := parseWireDateTime(req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	end, err := parseWireDateTime(req.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookings.CreateBooking(c.Request.Context(), residentID, service.CreateBookingInput{
		BarberID: req.BarberID,
		Start:    start,
		End:      end,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingView(booking))
}

// List — GET /api/bookings?page=N&page_size=M. Бронирования владельца.
func (h *BookingHandler) List(c *gin.Context) {
	residentID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	result, err := h.bookings.ListResidentBookings(c.Request.Context(), residentID, page, pageSize)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	views := make([]bookingView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, toBookingView(&result.Items[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"items":     views,
		"page":      result.Page,
		"page_size": result.PageSize,
		"has_next":  result.HasNext,
		"has_prev":  result.HasPrev,
		"total":     result.Total,
	})
}

// Get — GET /api/bookings/:id.
func (h *BookingHandler) Get(c *gin.Context) {
	residentID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	booking, err := h.bookings.GetBooking(c.Request.Context(), residentID, bookingID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toBookingView(booking))
}

type updateBookingRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

// Update — PATCH /api/bookings/:id. Перенос на новый интервал.
func (h *BookingHandler) Update(c *gin.Context) {
	residentID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	start, err := parseWireDateTime(req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	end, err := parseWireDateTime(req.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookings.UpdateBooking(c.Request.Context(), residentID, bookingID, service.UpdateBookingInput{
		Start: start,
		End:   end,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toBookingView(booking))
}

// Cancel — DELETE /api/bookings/:id. Мягкая отмена.
func (h *BookingHandler) Cancel(c *gin.Context) {
	residentID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	if err := h.bookings.CancelBooking(c.Request.Context(), residentID, bookingID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
