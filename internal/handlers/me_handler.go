package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/provider-scheduler/internal/audit"
	"github.com/BruksfildServices01/provider-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/provider-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/provider-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/provider-scheduler/internal/media"
	"github.com/BruksfildServices01/provider-scheduler/internal/models"
	"github.com/BruksfildServices01/provider-scheduler/internal/timezone"
)

type MeHandler struct {
	db      *gorm.DB
	repo    domain.Repository
	cache   *cache.Cache
	avatars *media.AvatarStore
	audit   *audit.Dispatcher
}

func NewMeHandler(
	db *gorm.DB,
	repo domain.Repository,
	cch *cache.Cache,
	avatars *media.AvatarStore,
	au *audit.Dispatcher,
) *MeHandler {
	return &MeHandler{db: db, repo: repo, cache: cch, avatars: avatars, audit: au}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	var provider models.Provider
	if err := h.db.First(&provider, providerID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "provider_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"provider": providerPayload(&provider)})
}

// Campos como ponteiro distinguem "não enviado" de "limpar o valor".
type UpdateMeRequest struct {
	Name        *string  `json:"name"`
	Phone       *string  `json:"phone"`
	Speciality  *string  `json:"speciality"`
	City        *string  `json:"city"`
	Address     *string  `json:"address"`
	Bio         *string  `json:"bio"`
	HourlyPrice *float64 `json:"hourly_price"`
	Timezone    *string  `json:"timezone"`
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Timezone != nil && !timezone.IsValid(*req.Timezone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_timezone"})
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Speciality != nil {
		updates["speciality"] = *req.Speciality
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.HourlyPrice != nil {
		updates["hourly_price"] = *req.HourlyPrice
	}
	if req.Timezone != nil {
		updates["timezone"] = *req.Timezone
	}

	if len(updates) > 0 {
		if err := h.db.Model(&models.Provider{}).
			Where("id = ?", providerID).
			Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_provider"})
			return
		}
		h.cache.InvalidateDashboard(c.Request.Context(), providerID)
	}

	var provider models.Provider
	if err := h.db.First(&provider, providerID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "provider_not_found"})
		return
	}

	h.audit.Dispatch(audit.Event{
		ProviderID: providerID,
		Action:     "profile_updated",
		Entity:     "provider",
		EntityID:   &providerID,
	})

	c.JSON(http.StatusOK, gin.H{"provider": providerPayload(&provider)})
}

func (h *MeHandler) UploadAvatar(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_avatar_file"})
		return
	}
	defer file.Close()

	url, err := h.avatars.Upload(c.Request.Context(), providerID, file)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.db.Model(&models.Provider{}).
		Where("id = ?", providerID).
		Update("avatar_url", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_avatar"})
		return
	}

	h.cache.InvalidateDashboard(c.Request.Context(), providerID)

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}

// --------------------------------------------------
// Dashboard
// --------------------------------------------------

type dashboardDay struct {
	Day   string             `json:"day"`
	Slots []dashboardDaySlot `json:"slots"`
}

type dashboardDaySlot struct {
	Time string `json:"time"`
}

// Dashboard devolve perfil, semana persistida, modelo editável reconstruído
// e contadores de agendamentos. A resposta fica 5 minutos no Redis.
func (h *MeHandler) Dashboard(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	if cached, hit := h.cache.GetDashboard(ctx, providerID); hit {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
		return
	}

	provider, err := h.repo.GetProviderByID(ctx, providerID)
	if err != nil {
		writeError(c, err)
		return
	}

	week, err := h.repo.GetPersistedWeek(ctx, providerID)
	if err != nil {
		writeError(c, err)
		return
	}

	days := make([]dashboardDay, 0, len(week))
	for _, day := range week {
		slots := make([]dashboardDaySlot, 0, len(day.Slots))
		for _, t := range day.Slots {
			slots = append(slots, dashboardDaySlot{Time: t})
		}
		days = append(days, dashboardDay{Day: day.Day, Slots: slots})
	}

	today := timezone.FormatDay(timezone.NowIn(provider.Timezone))

	var pending, confirmedToday, upcoming int64
	h.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("provider_id = ? AND status = ?", providerID, string(domain.StatusPending)).
		Count(&pending)
	h.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("provider_id = ? AND status = ? AND date = ?", providerID, string(domain.StatusConfirmed), today).
		Count(&confirmedToday)
	h.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("provider_id = ? AND status IN ('pending', 'confirmed') AND date >= ?", providerID, today).
		Count(&upcoming)

	payload := gin.H{
		"provider":           providerPayload(provider),
		"weeklyAvailability": days,
		"template":           availability.ImportTemplate(week),
		"counters": gin.H{
			"pending":         pending,
			"confirmed_today": confirmedToday,
			"upcoming":        upcoming,
		},
	}

	if raw, err := json.Marshal(payload); err == nil {
		h.cache.SetDashboard(ctx, providerID, string(raw))
	}

	c.JSON(http.StatusOK, payload)
}
