package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/provider-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/provider-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/provider-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/provider-scheduler/internal/models"
	usecase "github.com/BruksfildServices01/provider-scheduler/internal/usecase/appointment"
)

type AppointmentHandler struct {
	repo  domain.Repository
	cache *cache.Cache

	approve    *usecase.ApproveAppointment
	reject     *usecase.RejectAppointment
	cancel     *usecase.CancelAppointment
	complete   *usecase.CompleteAppointment
	reschedule *usecase.RescheduleAppointment
}

func NewAppointmentHandler(
	repo domain.Repository,
	cch *cache.Cache,
	approve *usecase.ApproveAppointment,
	reject *usecase.RejectAppointment,
	cancel *usecase.CancelAppointment,
	complete *usecase.CompleteAppointment,
	reschedule *usecase.RescheduleAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:       repo,
		cache:      cch,
		approve:    approve,
		reject:     reject,
		cancel:     cancel,
		complete:   complete,
		reschedule: reschedule,
	}
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

func (h *AppointmentHandler) List(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	apts, err := h.repo.ListAppointments(
		c.Request.Context(),
		providerID,
		c.Query("date"),
		c.Query("status"),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, apts)
}

func (h *AppointmentHandler) Approve(c *gin.Context) {
	h.transition(c, func(providerID uint, id uint) (*models.Appointment, error) {
		return h.approve.Execute(c.Request.Context(), providerID, id)
	})
}

func (h *AppointmentHandler) Reject(c *gin.Context) {
	h.transition(c, func(providerID uint, id uint) (*models.Appointment, error) {
		return h.reject.Execute(c.Request.Context(), providerID, id)
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, func(providerID uint, id uint) (*models.Appointment, error) {
		return h.cancel.Execute(c.Request.Context(), providerID, id)
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, func(providerID uint, id uint) (*models.Appointment, error) {
		return h.complete.Execute(c.Request.Context(), providerID, id)
	})
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	id, err := appointmentIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_appointment_id"})
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), usecase.RescheduleInput{
		ProviderID:    providerID,
		AppointmentID: id,
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	h.cache.InvalidateDashboard(c.Request.Context(), providerID)

	c.JSON(http.StatusOK, gin.H{"appointment": ap})
}

// transition aplica uma mudança de status e invalida o dashboard em cache.
func (h *AppointmentHandler) transition(
	c *gin.Context,
	run func(providerID uint, id uint) (*models.Appointment, error),
) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	id, err := appointmentIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_appointment_id"})
		return
	}

	ap, err := run(providerID, id)
	if err != nil {
		writeError(c, err)
		return
	}

	h.cache.InvalidateDashboard(c.Request.Context(), providerID)

	c.JSON(http.StatusOK, gin.H{"appointment": ap})
}

func appointmentIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
