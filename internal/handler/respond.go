package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Leganyst/barbershop-booking/internal/schedule"
	"github.com/Leganyst/barbershop-booking/internal/service"
)

// respondError отображает доменные ошибки в HTTP-статусы.
// Отказы валидатора — клиентские ошибки с машиночитаемой причиной;
// правила окна блокировки — запрещённое действие.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	if ve, ok := schedule.AsValidationError(err); ok {
		status := http.StatusBadRequest
		switch ve.Reason {
		case schedule.ReasonTooLateToModify, schedule.ReasonTooCloseToModify:
			status = http.StatusForbidden
		}
		c.JSON(status, gin.H{"error": ve.Message, "reason": ve.Reason})
		return
	}

	switch {
	case errors.Is(err, service.ErrBarberNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrCompanyNotFound),
		errors.Is(err, service.ErrWorkingHoursNotSet):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotOwner),
		errors.Is(err, service.ErrAccountInactive):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, schedule.ErrInvalidWorkingHours),
		errors.Is(err, schedule.ErrInvalidClock):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
