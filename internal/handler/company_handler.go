package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Leganyst/barbershop-booking/internal/service"
)

type CompanyHandler struct {
	companies *service.CompanyService
	logger    *zap.Logger
}

func NewCompanyHandler(companies *service.CompanyService, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{companies: companies, logger: logger}
}

// List — GET /api/companies. Активные компании.
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companies.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	views := make([]companyView, 0, len(companies))
	for i := range companies {
		views = append(views, toCompanyView(&companies[i]))
	}
	c.JSON(http.StatusOK, gin.H{"companies": views})
}

type companyRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// Create — POST /api/companies (admin).
func (h *CompanyHandler) Create(c *gin.Context) {
	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	company, err := h.companies.Create(c.Request.Context(), service.CompanyInput{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, toCompanyView(company))
}

// Get — GET /api/companies/:id.
func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}

	company, err := h.companies.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toCompanyView(company))
}

type companyUpdateRequest struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"is_active"`
}

// Update — PATCH /api/companies/:id (admin).
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}

	var req companyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	company, err := h.companies.Update(c.Request.Context(), id, service.CompanyUpdateInput{
		Name:     req.Name,
		Address:  req.Address,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toCompanyView(company))
}
