package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/provider-scheduler/internal/audit"
	"github.com/BruksfildServices01/provider-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/provider-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/provider-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/provider-scheduler/internal/models"
	"github.com/BruksfildServices01/provider-scheduler/internal/timezone"
)

type AvailabilityHandler struct {
	repo  domain.Repository
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewAvailabilityHandler(
	repo domain.Repository,
	cch *cache.Cache,
	au *audit.Dispatcher,
) *AvailabilityHandler {
	return &AvailabilityHandler{repo: repo, cache: cch, audit: au}
}

// --------- Requests ---------

type WeeklyDayRequest struct {
	Day         string `json:"day" binding:"required"`
	StartTime   string `json:"startTime" binding:"required"`
	EndTime     string `json:"endTime" binding:"required"`
	SlotMinutes int    `json:"slotMinutes"`
}

type OverrideSlotRequest struct {
	Time        string `json:"time" binding:"required"`
	IsAvailable bool   `json:"isAvailable"`
}

type DateOverrideRequest struct {
	Date  string                `json:"date" binding:"required"`
	Slots []OverrideSlotRequest `json:"slots"`
}

// UpdateAvailabilityRequest aceita ou o modelo semanal (somente dias ativos)
// ou exceções por data; nunca os dois no mesmo PUT.
type UpdateAvailabilityRequest struct {
	WeeklyAvailability []WeeklyDayRequest    `json:"weeklyAvailability"`
	DateOverrides      []DateOverrideRequest `json:"dateOverrides"`
}

// --------- Handlers ---------

func (h *AvailabilityHandler) Get(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	week, err := h.repo.GetPersistedWeek(c.Request.Context(), providerID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weeklyAvailability": week,
		"template":           availability.ImportTemplate(week),
	})
}

func (h *AvailabilityHandler) Update(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	switch {
	case len(req.DateOverrides) > 0:
		h.saveOverrides(c, providerID, req.DateOverrides)
	case len(req.WeeklyAvailability) > 0:
		h.saveWeeklyTemplate(c, providerID, req.WeeklyAvailability)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "enable_at_least_one_day"})
	}
}

// saveWeeklyTemplate deriva os slots de cada dia ativo e substitui a semana
// inteira. Dias ausentes do corpo ficam sem slots (desativados).
func (h *AvailabilityHandler) saveWeeklyTemplate(
	c *gin.Context,
	providerID uint,
	days []WeeklyDayRequest,
) {

	seen := map[string]bool{}
	var rows []models.TemplateSlot

	for _, d := range days {
		if seen[d.Day] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duplicate_day"})
			return
		}
		seen[d.Day] = true

		start, okStart := availability.ToMinutes(d.StartTime)
		end, okEnd := availability.ToMinutes(d.EndTime)
		if !okStart || !okEnd {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time"})
			return
		}
		if start >= end {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_before_end"})
			return
		}
		if d.SlotMinutes < availability.MinSlotMinutes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "slot_minutes_too_small"})
			return
		}

		tpl := availability.DayTemplate{
			Day:         d.Day,
			StartTime:   d.StartTime,
			EndTime:     d.EndTime,
			SlotMinutes: d.SlotMinutes,
			Enabled:     true,
		}

		for i, slot := range availability.DeriveSlots(tpl) {
			rows = append(rows, models.TemplateSlot{
				ProviderID: providerID,
				Day:        d.Day,
				Time:       slot.Time,
				Position:   i,
			})
		}
	}

	if len(rows) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "enable_at_least_one_day"})
		return
	}

	if err := h.repo.ReplaceWeeklyTemplate(c.Request.Context(), providerID, rows); err != nil {
		writeError(c, err)
		return
	}

	h.cache.InvalidateDashboard(c.Request.Context(), providerID)

	h.audit.Dispatch(audit.Event{
		ProviderID: providerID,
		Action:     "weekly_template_saved",
		Entity:     "template",
		Metadata:   gin.H{"days": len(days), "slots": len(rows)},
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// saveOverrides substitui todos os slots de cada data enviada
// (last-writer-wins por dia).
func (h *AvailabilityHandler) saveOverrides(
	c *gin.Context,
	providerID uint,
	overrides []DateOverrideRequest,
) {

	provider, err := h.repo.GetProviderByID(c.Request.Context(), providerID)
	if err != nil {
		writeError(c, err)
		return
	}

	for _, entry := range overrides {
		if _, err := timezone.ParseDay(provider.Timezone, entry.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date", "date": entry.Date})
			return
		}
	}

	for _, entry := range overrides {
		rows := make([]models.DateOverride, 0, len(entry.Slots))
		for i, slot := range entry.Slots {
			rows = append(rows, models.DateOverride{
				ProviderID:  providerID,
				Date:        entry.Date,
				Time:        slot.Time,
				IsAvailable: slot.IsAvailable,
				Position:    i,
			})
		}

		if err := h.repo.ReplaceOverridesForDate(c.Request.Context(), providerID, entry.Date, rows); err != nil {
			writeError(c, err)
			return
		}

		h.audit.Dispatch(audit.Event{
			ProviderID: providerID,
			Action:     "date_overrides_saved",
			Entity:     "override",
			Metadata:   gin.H{"date": entry.Date, "slots": len(rows)},
		})
	}

	h.cache.InvalidateDashboard(c.Request.Context(), providerID)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
