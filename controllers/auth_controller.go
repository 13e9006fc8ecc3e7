package controllers

import (
	"errors"
	"net/http"

	"github.com/omerkonca/kantin23/config"
	"github.com/omerkonca/kantin23/models"
	"github.com/omerkonca/kantin23/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

// Register creates a customer account with zero balance.
func Register(c *gin.Context) {
	var in RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	var cnt int64
	if err := config.DB.Model(&models.Profile{}).Where("email = ?", in.Email).Count(&cnt).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "registration failed", err)
		return
	}
	if cnt > 0 {
		utils.Error(c, http.StatusBadRequest, "email already registered", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "registration failed", err)
		return
	}

	profile := models.Profile{
		Email:        in.Email,
		Name:         in.Name,
		Role:         models.RoleCustomer,
		PasswordHash: string(hash),
	}
	if err := config.DB.Create(&profile).Error; err != nil {
		// two concurrent registers can both pass the count check
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			utils.Error(c, http.StatusBadRequest, "email already registered", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "registration failed", err)
		return
	}

	utils.Success(c, "registered", profile)
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var in LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	var profile models.Profile
	if err := config.DB.Where("email = ?", in.Email).First(&profile).Error; err != nil {
		utils.Error(c, http.StatusUnauthorized, "wrong email or password", nil)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(in.Password)) != nil {
		utils.Error(c, http.StatusUnauthorized, "wrong email or password", nil)
		return
	}

	token, err := utils.GenerateToken(profile.ID, profile.Name, profile.Role)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "login failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "login ok",
		"token":   token,
		"user":    profile,
	})
}

// Me returns the profile of the token's user.
func Me(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}

	var profile models.Profile
	if err := config.DB.First(&profile, uid).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "profile not found", err)
		return
	}
	utils.Success(c, "profile", profile)
}
