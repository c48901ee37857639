package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/provider-scheduler/internal/models"
	usecase "github.com/BruksfildServices01/provider-scheduler/internal/usecase/appointment"
)

// PublicHandler é a superfície aberta para clientes: agenda do prestador
// por slug e criação de solicitação de agendamento.
type PublicHandler struct {
	db       *gorm.DB
	schedule *usecase.GetDaySchedule
	create   *usecase.CreatePublicAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	schedule *usecase.GetDaySchedule,
	create *usecase.CreatePublicAppointment,
) *PublicHandler {
	return &PublicHandler{db: db, schedule: schedule, create: create}
}

type PublicBookingRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`

	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
	Notes string `json:"notes"`
}

func (h *PublicHandler) providerBySlug(c *gin.Context) (*models.Provider, bool) {
	slug := c.Param("slug")

	var provider models.Provider
	if err := h.db.WithContext(c.Request.Context()).
		Where("slug = ?", slug).
		First(&provider).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "provider_not_found"})
		return nil, false
	}

	return &provider, true
}

// GetSchedule expõe só os horários abertos do dia; slots indisponíveis,
// reservados ou já passados ficam de fora.
func (h *PublicHandler) GetSchedule(c *gin.Context) {
	provider, ok := h.providerBySlug(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_date"})
		return
	}

	day, err := h.schedule.Execute(c.Request.Context(), provider.ID, date)
	if err != nil {
		writeError(c, err)
		return
	}

	open := make([]gin.H, 0, len(day.Slots))
	if !day.Blocked {
		for _, slot := range day.Slots {
			if slot.Available && !slot.IsBooked && !slot.IsPast {
				open = append(open, gin.H{"time": slot.Time})
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"provider": gin.H{
			"name":         provider.Name,
			"slug":         provider.Slug,
			"speciality":   provider.Speciality,
			"city":         provider.City,
			"bio":          provider.Bio,
			"hourly_price": provider.HourlyPrice,
			"avatar_url":   provider.AvatarURL,
		},
		"date":  day.Date,
		"day":   day.Day,
		"slots": open,
	})
}

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	provider, ok := h.providerBySlug(c)
	if !ok {
		return
	}

	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreatePublicAppointmentInput{
		ProviderID:  provider.ID,
		ClientName:  req.Name,
		ClientPhone: req.Phone,
		ClientEmail: req.Email,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"appointment": gin.H{
			"id":     ap.ID,
			"date":   ap.Date,
			"time":   ap.SlotTime,
			"status": ap.Status,
		},
		"message": "Solicitação enviada. Aguarde a confirmação do prestador.",
	})
}
