package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fintrack/internal/currency"
	"fintrack/internal/database"
	"fintrack/internal/models"
)

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (s *Server) generateToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(s.cfg.TokenTTLHrs) * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// POST /v1/auth/register
func (s *Server) register(c *gin.Context) {
	var input struct {
		Username  string `json:"username" binding:"required,max=150"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=8"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Country   string `json:"country" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if err := database.DB.Where("username = ? OR email = ?", input.Username, input.Email).First(&existing).Error; err == nil {
		c.JSON(409, gin.H{"error": "user_already_exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(500, gin.H{"error": "encryption_failed"})
		return
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	}

	// Profile creation is an explicit part of registration, in the same
	// transaction as the user row, so the currency preference can never be
	// missing for a registered user.
	info := currency.ForCountry(input.Country)
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.UserProfile{
			UserID:         user.ID,
			Country:        input.Country,
			CurrencyCode:   info.Code,
			CurrencySymbol: info.Symbol,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		user.Profile = &profile
		return nil
	})
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	tokenString, err := s.generateToken(&user)
	if err != nil {
		c.JSON(500, gin.H{"error": "token_failed"})
		return
	}

	s.log.WithField("username", user.Username).Info("user registered")
	c.JSON(201, AuthResponse{Token: tokenString, User: &user})
}

// POST /v1/auth/login
func (s *Server) login(c *gin.Context) {
	var input struct {
		Identifier string `json:"identifier" binding:"required"`
		Password   string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Preload("Profile").
		Where("username = ? OR email = ?", input.Identifier, input.Identifier).
		First(&user).Error; err != nil {
		c.JSON(401, gin.H{"error": "invalid_credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(401, gin.H{"error": "invalid_credentials"})
		return
	}

	tokenString, err := s.generateToken(&user)
	if err != nil {
		c.JSON(500, gin.H{"error": "token_failed"})
		return
	}

	s.log.WithField("username", user.Username).Info("user logged in")
	c.JSON(200, AuthResponse{Token: tokenString, User: &user})
}
