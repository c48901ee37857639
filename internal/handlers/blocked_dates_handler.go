package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/provider-scheduler/internal/audit"
	"github.com/BruksfildServices01/provider-scheduler/internal/cache"
	"github.com/BruksfildServices01/provider-scheduler/internal/models"
	"github.com/BruksfildServices01/provider-scheduler/internal/timezone"
)

type BlockedDatesHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewBlockedDatesHandler(db *gorm.DB, cch *cache.Cache, au *audit.Dispatcher) *BlockedDatesHandler {
	return &BlockedDatesHandler{db: db, cache: cch, audit: au}
}

type BlockedDatesUpdateRequest struct {
	Dates []string `json:"dates" binding:"required"`
}

type BlockedDateDeleteRequest struct {
	Date string `json:"date" binding:"required"`
}

func (h *BlockedDatesHandler) Get(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	var dates []string
	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.BlockedDate{}).
		Where("provider_id = ?", providerID).
		Order("date ASC").
		Pluck("date", &dates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_blocked_dates"})
		return
	}

	if dates == nil {
		dates = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// Update substitui o conjunto inteiro de datas bloqueadas.
func (h *BlockedDatesHandler) Update(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	var req BlockedDatesUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	seen := map[string]bool{}
	var toCreate []models.BlockedDate
	for _, date := range req.Dates {
		if _, err := timezone.ParseDay("", date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date", "date": date})
			return
		}
		if seen[date] {
			continue
		}
		seen[date] = true
		toCreate = append(toCreate, models.BlockedDate{
			ProviderID: providerID,
			Date:       date,
		})
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("provider_id = ?", providerID).
			Delete(&models.BlockedDate{}).Error; err != nil {
			return err
		}
		if len(toCreate) == 0 {
			return nil
		}
		return tx.Create(&toCreate).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_blocked_dates"})
		return
	}

	h.cache.InvalidateDashboard(c.Request.Context(), providerID)

	h.audit.Dispatch(audit.Event{
		ProviderID: providerID,
		Action:     "blocked_dates_saved",
		Entity:     "blocked_date",
		Metadata:   gin.H{"count": len(toCreate)},
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Delete desbloqueia uma única data.
func (h *BlockedDatesHandler) Delete(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	var req BlockedDateDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := h.db.WithContext(c.Request.Context()).
		Where("provider_id = ? AND date = ?", providerID, req.Date).
		Delete(&models.BlockedDate{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_blocked_date"})
		return
	}

	h.cache.InvalidateDashboard(c.Request.Context(), providerID)

	h.audit.Dispatch(audit.Event{
		ProviderID: providerID,
		Action:     "blocked_date_removed",
		Entity:     "blocked_date",
		Metadata:   gin.H{"date": req.Date},
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
