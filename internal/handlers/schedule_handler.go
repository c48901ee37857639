package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/provider-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/provider-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/provider-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/provider-scheduler/internal/timezone"
	usecase "github.com/BruksfildServices01/provider-scheduler/internal/usecase/appointment"
)

type ScheduleHandler struct {
	repo     domain.Repository
	schedule *usecase.GetDaySchedule
}

func NewScheduleHandler(repo domain.Repository, schedule *usecase.GetDaySchedule) *ScheduleHandler {
	return &ScheduleHandler{repo: repo, schedule: schedule}
}

// GetSlots devolve a visão materializada do banco para uma data: overrides
// salvos com o flag de reserva, ou o dia derivado do modelo quando há
// agendamento sem override. Data nunca tocada volta vazia.
func (h *ScheduleHandler) GetSlots(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_date"})
		return
	}

	ctx := c.Request.Context()

	provider, err := h.repo.GetProviderByID(ctx, providerID)
	if err != nil {
		writeError(c, err)
		return
	}

	day, err := timezone.ParseDay(provider.Timezone, date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}

	week, err := h.repo.GetPersistedWeek(ctx, providerID)
	if err != nil {
		writeError(c, err)
		return
	}

	tpl := usecase.TemplateForDay(week, day.Weekday().String())

	slots, err := usecase.MaterializedSlots(ctx, h.repo, providerID, date, tpl)
	if err != nil {
		writeError(c, err)
		return
	}

	if slots == nil {
		slots = []availability.BackendSlot{}
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": slots,
	})
}

// GetSchedule devolve a lista exibível da data, já reconciliada e com o
// flag de passado.
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_date"})
		return
	}

	day, err := h.schedule.Execute(c.Request.Context(), providerID, date)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, day)
}

// GetWeekSchedule percorre os 7 dias da semana pedida (offset 0 = semana
// atual, começando na segunda). Dias bloqueados ou sem slots ficam de fora.
func (h *ScheduleHandler) GetWeekSchedule(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_offset"})
			return
		}
		offset = parsed
	}

	ctx := c.Request.Context()

	provider, err := h.repo.GetProviderByID(ctx, providerID)
	if err != nil {
		writeError(c, err)
		return
	}

	now := timezone.NowIn(provider.Timezone)
	monday := startOfWeek(now).AddDate(0, 0, offset*7)

	days := make([]*usecase.DaySchedule, 0, 7)
	for i := 0; i < 7; i++ {
		date := timezone.FormatDay(monday.AddDate(0, 0, i))

		day, err := h.schedule.Execute(ctx, providerID, date)
		if err != nil {
			writeError(c, err)
			return
		}

		if day.Blocked || len(day.Slots) == 0 {
			continue
		}

		days = append(days, day)
	}

	httpresp.List(c, days)
}

// startOfWeek volta para a segunda-feira do dia informado.
func startOfWeek(t time.Time) time.Time {
	t = timezone.StartOfDay(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}
