package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Leganyst/barbershop-booking/internal/service"
)

type BarberHandler struct {
	identity     *service.IdentityService
	availability *service.AvailabilityService
	logger       *zap.Logger
}

func NewBarberHandler(
	identity *service.IdentityService,
	availability *service.AvailabilityService,
	logger *zap.Logger,
) *BarberHandler {
	return &BarberHandler{identity: identity, availability: availability, logger: logger}
}

// List — GET /api/barbers. Барберы с их рабочими часами.
func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.identity.ListBarbers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	views := make([]barberProfile, 0, len(barbers))
	for i := range barbers {
		views = append(views, barberView(&barbers[i]))
	}
	c.JSON(http.StatusOK, gin.H{"barbers": views})
}

type workingHoursRequest struct {
	OpensAt    string `json:"opens_at" binding:"required"`
	ClosesAt   string `json:"closes_at" binding:"required"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
}

// SetWorkingHours — PUT /api/barbers/:id/working-hours (admin).
func (h *BarberHandler) SetWorkingHours(c *gin.Context) {
	barberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid barber id"})
		return
	}

	var req workingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	wh, err := h.identity.SetWorkingHours(c.Request.Context(), barberID, service.WorkingHoursInput{
		OpensAt:    req.OpensAt,
		ClosesAt:   req.ClosesAt,
		BreakStart: req.BreakStart,
		BreakEnd:   req.BreakEnd,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, hoursView(wh))
}

// Availability — GET /api/barbers/:id/availability?date=DD-MM-YYYY.
// Без параметра date берётся сегодняшний день.
func (h *BarberHandler) Availability(c *gin.Context) {
	barberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid barber id"})
		return
	}

	day := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		day, err = parseWireDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	free, err := h.availability.DayAvailability(c.Request.Context(), barberID, day)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": toWindowViews(free)})
}
