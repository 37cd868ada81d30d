package auth

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"matchapp/dto"
	"matchapp/middleware"
	"matchapp/model"
	"matchapp/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func LoginController(router *gin.Engine, users services.UserStore, tokens *services.TokenService) {
	router.POST("/user/login", func(c *gin.Context) {
		Login(c, users, tokens)
	})
	router.POST("/user/logout", middleware.SessionAuth(tokens), func(c *gin.Context) {
		Logout(c)
	})
}

func Login(c *gin.Context, users services.UserStore, tokens *services.TokenService) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email or Phone Number and Password are required"})
		return
	}
	if request.Email == "" && request.PhoneNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email or Phone Number and Password are required"})
		return
	}

	ctx := c.Request.Context()
	user, err := users.FindByEmailOrPhone(ctx, request.Email, request.PhoneNumber)
	if err != nil {
		if err == services.ErrUserNotFound {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User Not Found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	token, err := tokens.CreateSessionToken(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session token"})
		return
	}

	// Clients never read the session token; it travels only in this
	// HTTP-only cookie.
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookieName, token, tokens.SessionMaxAge(), "/", "", true, true)

	if err := users.SetLastLogin(ctx, user.UserID, time.Now()); err != nil {
		log.Printf("failed to update last login for user %s: %v", user.UserID, err)
	}

	switch user.Role {
	case model.RoleSuperAdmin:
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Welcome Super Admin %s", user.Username)})
	case model.RoleAdmin:
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Welcome Admin %s", user.Username)})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Logged In Successfully", "user": user})
	}
}

func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
