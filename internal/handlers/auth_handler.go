package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/royalrinse/carwash-booking/internal/config"
	"github.com/royalrinse/carwash-booking/internal/middleware"
	"github.com/royalrinse/carwash-booking/internal/models"
	"github.com/royalrinse/carwash-booking/internal/session"
)

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	sessions *session.Store
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, sessions *session.Store) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, sessions: sessions}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

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

	var admin models.AdminUser
	if err := h.db.Where("email = ?", email).First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(&admin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"admin": gin.H{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
			"role":  admin.Role,
		},
		"token": token,
	})
}

// Logout revokes the presented token for the remainder of its lifetime.
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenString := c.MustGet(middleware.ContextAdminToken).(string)

	until := tokenTimeLeft(tokenString, h.config.JWTSecret)
	if err := h.sessions.RevokeToken(c.Request.Context(), tokenString, until); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_logout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully."})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(admin *models.AdminUser) (string, error) {
	claims := jwt.MapClaims{
		"sub":  admin.ID,
		"role": admin.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func tokenTimeLeft(tokenString, secret string) time.Duration {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return 0
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return 0
	}

	return time.Until(time.Unix(int64(exp), 0))
}
