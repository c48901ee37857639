package handlers

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/provider-scheduler/internal/audit"
	"github.com/BruksfildServices01/provider-scheduler/internal/cache"
	"github.com/BruksfildServices01/provider-scheduler/internal/config"
	"github.com/BruksfildServices01/provider-scheduler/internal/mailer"
	"github.com/BruksfildServices01/provider-scheduler/internal/models"
	"github.com/BruksfildServices01/provider-scheduler/internal/timezone"
	"github.com/BruksfildServices01/provider-scheduler/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	cache  *cache.Cache
	mailer *mailer.Mailer
	audit  *audit.Dispatcher
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	cch *cache.Cache,
	m *mailer.Mailer,
	au *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, cache: cch, mailer: m, audit: au}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`

	Speciality string `json:"speciality"`
	City       string `json:"city"`
	Timezone   string `json:"timezone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "O domínio do e-mail informado não parece ser válido.",
		})
		return
	}

	var count int64
	h.db.Model(&models.Provider{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	tz := req.Timezone
	if !timezone.IsValid(tz) {
		tz = timezone.DefaultTimezone
	}

	provider := models.Provider{
		Name:         req.Name,
		Slug:         h.uniqueSlug(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Speciality:   req.Speciality,
		City:         req.City,
		Timezone:     tz,
	}

	if err := h.db.Create(&provider).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_provider"})
		return
	}

	token, err := h.generateToken(&provider)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	h.audit.Dispatch(audit.Event{
		ProviderID: provider.ID,
		Action:     "provider_registered",
		Entity:     "provider",
		EntityID:   &provider.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"provider": providerPayload(&provider),
		"token":    token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var provider models.Provider
	if err := h.db.Where("email = ?", email).First(&provider).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(provider.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(&provider)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"provider": providerPayload(&provider),
		"token":    token,
	})
}

// ForgotPassword responde 200 mesmo para e-mail desconhecido, para não
// revelar quais contas existem.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var provider models.Provider
	if err := h.db.Where("email = ?", email).First(&provider).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	token := uuid.NewString()
	if err := h.cache.StoreResetToken(c.Request.Context(), token, provider.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_store_token"})
		return
	}

	body := fmt.Sprintf(
		"<p>Olá %s,</p><p>Use o código abaixo para redefinir sua senha. Ele expira em 30 minutos.</p><p><b>%s</b></p>",
		provider.Name, token,
	)
	if err := h.mailer.Send(provider.Email, "Redefinição de senha", body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_send_email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	providerID, ok := h.cache.ConsumeResetToken(c.Request.Context(), req.Token)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_or_expired_token"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	if err := h.db.Model(&models.Provider{}).
		Where("id = ?", providerID).
		Update("password_hash", string(hashed)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_password"})
		return
	}

	h.audit.Dispatch(audit.Event{
		ProviderID: providerID,
		Action:     "password_reset",
		Entity:     "provider",
		EntityID:   &providerID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------- Helpers ---------

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugInvalid.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "prestador"
	}
	return slug
}

// uniqueSlug resolve colisão anexando um sufixo curto aleatório.
func (h *AuthHandler) uniqueSlug(name string) string {
	slug := slugify(name)

	var count int64
	h.db.Model(&models.Provider{}).Where("slug = ?", slug).Count(&count)
	if count == 0 {
		return slug
	}

	return slug + "-" + uuid.NewString()[:8]
}

func providerPayload(p *models.Provider) gin.H {
	return gin.H{
		"id":           p.ID,
		"name":         p.Name,
		"slug":         p.Slug,
		"email":        p.Email,
		"phone":        p.Phone,
		"speciality":   p.Speciality,
		"city":         p.City,
		"address":      p.Address,
		"bio":          p.Bio,
		"hourly_price": p.HourlyPrice,
		"avatar_url":   p.AvatarURL,
		"timezone":     p.Timezone,
	}
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(provider *models.Provider) (string, error) {
	claims := jwt.MapClaims{
		"sub": provider.ID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
