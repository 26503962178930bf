package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/farmbook/farmbook/middleware"
	"github.com/farmbook/farmbook/models"
	"github.com/farmbook/farmbook/utils"
)

// AuthController handles registration, login and account lifecycle.
type AuthController struct {
	db     *gorm.DB
	tokens *utils.TokenManager
}

// NewAuthController creates an AuthController.
func NewAuthController(db *gorm.DB, tokens *utils.TokenManager) *AuthController {
	return &AuthController{db: db, tokens: tokens}
}

// Register creates a local account with a bcrypt hashed credential.
// Duplicate username or email answers 409.
func (a *AuthController) Register(ctx *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "All fields are required")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		utils.Error(ctx, http.StatusBadRequest, "All fields are required")
		return
	}

	var existing models.User
	if err := a.db.Where("email = ? OR username = ?", req.Email, req.Username).First(&existing).Error; err == nil {
		utils.Error(ctx, http.StatusConflict, "User already exists")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := a.db.Create(&user).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to create user")
		return
	}

	utils.Message(ctx, http.StatusCreated, "User registered successfully")
}

// Login verifies credentials and issues a bearer token with a fixed expiry.
// Missing user and hash mismatch are indistinguishable to the caller.
func (a *AuthController) Login(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "All fields are required")
		return
	}

	var user models.User
	if err := a.db.Where("email = ?", strings.TrimSpace(req.Email)).First(&user).Error; err != nil {
		utils.Error(ctx, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		utils.Error(ctx, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := a.tokens.Generate(user.ID, user.Username)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to generate token")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"access_token": token})
}

// Protected greets the authenticated caller. Kept as the minimal token
// round-trip check clients use after login.
func (a *AuthController) Protected(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	var user models.User
	if err := a.db.First(&user, userID).Error; err != nil {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	utils.Message(ctx, http.StatusOK, fmt.Sprintf("Welcome %s!", user.Username))
}

// DeleteAccount removes the caller's user row together with every journal
// entry, post and comment they own, including their comments under other
// users' posts. The whole cascade runs in one transaction.
func (a *AuthController) DeleteAccount(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	err := a.db.Transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("user_id = ?", userID).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.FarmJournal{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to delete account")
		return
	}

	utils.InvalidateByPrefix("cache:posts:")

	utils.Message(ctx, http.StatusOK, "Account deleted successfully")
}

func getUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		return uint(v), true
	case int64:
		return uint(v), true
	case float64:
		return uint(v), true
	default:
		return 0, false
	}
}
