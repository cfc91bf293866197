package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/service"
	"github.com/gin-gonic/gin"
)

const (
	maxPageLimit   = 100
	maxHorizonDays = 3650
)

type ContractHandler struct {
	contracts *service.ContractService
	now       func() time.Time
}

func NewContractHandler(contracts *service.ContractService) *ContractHandler {
	return &ContractHandler{
		contracts: contracts,
		now:       time.Now,
	}
}

// positiveQuery reads an integer query parameter that must be >= 1 when present
func positiveQuery(c *gin.Context, name string, def, max int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 || v > max {
		return 0, false
	}
	return v, true
}

// List returns one page of contracts matching search, status and risk
func (h *ContractHandler) List(c *gin.Context) {
	page, ok := positiveQuery(c, "page", 1, math.MaxInt)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a positive integer"})
		return
	}
	limit, ok := positiveQuery(c, "limit", service.DefaultPageLimit, maxPageLimit)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
		return
	}

	result, err := h.contracts.List(c.Request.Context(), service.ListParams{
		Filter: service.Filter{
			Search: c.Query("search"),
			Status: c.Query("status"),
			Risk:   c.Query("risk"),
		},
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get returns a single contract with clauses, insights and evidence
func (h *ContractHandler) Get(c *gin.Context) {
	detail, err := h.contracts.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrContractNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Insights returns portfolio stats and the contracts expiring within horizon_days
func (h *ContractHandler) Insights(c *gin.Context) {
	horizon, ok := positiveQuery(c, "horizon_days", service.DefaultHorizonDays, maxHorizonDays)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "horizon_days must be between 1 and 3650"})
		return
	}

	asOf := h.now()
	if raw := c.Query("as_of"); raw != "" {
		d, err := model.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "as_of must be YYYY-MM-DD"})
			return
		}
		asOf = d.Time
	}

	insights, err := h.contracts.Insights(c.Request.Context(), asOf, horizon)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, insights)
}
