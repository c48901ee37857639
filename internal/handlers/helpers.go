package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/provider-scheduler/internal/httperr"
	"github.com/BruksfildServices01/provider-scheduler/internal/middleware"
)

func providerIDFromContext(c *gin.Context) (uint, bool) {
	val, exists := c.Get(middleware.ContextProviderID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "provider_not_in_context"})
		return 0, false
	}

	id, ok := val.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_provider_id_type"})
		return 0, false
	}

	return id, true
}

var businessStatus = map[string]int{
	"invalid_date":            http.StatusBadRequest,
	"invalid_slot_time":       http.StatusBadRequest,
	"invalid_image":           http.StatusBadRequest,
	"slot_in_the_past":        http.StatusConflict,
	"slot_unavailable":        http.StatusConflict,
	"time_conflict":           http.StatusConflict,
	"invalid_state":           http.StatusConflict,
	"appointment_not_found":   http.StatusNotFound,
	"provider_not_found":      http.StatusNotFound,
	"avatar_storage_disabled": http.StatusServiceUnavailable,
}

// writeError traduz erros de negócio para o status HTTP correspondente;
// qualquer outra falha vira 500 genérico.
func writeError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "not_found", "")
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		status, known := businessStatus[be.Code]
		if !known {
			status = http.StatusBadRequest
		}
		httperr.Write(c, status, be.Code, "")
		return
	}

	httperr.Internal(c, "internal_error", "")
}
