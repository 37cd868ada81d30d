package auth

import (
	"fmt"
	"net/http"

	"matchapp/config"
	"matchapp/dto"
	"matchapp/middleware"
	"matchapp/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func PasswordController(router *gin.Engine, cfg *config.Config, users services.UserStore, tokens *services.TokenService, mail *services.MailRelay) {
	router.POST("/user/forgot", func(c *gin.Context) {
		ForgotPassword(c, cfg, users, mail)
	})
	router.POST("/user/password/reset", middleware.SessionAuth(tokens), func(c *gin.Context) {
		ResetPassword(c, users)
	})
}

// ForgotPassword mails a reset link. Delivery is fire-and-forget in the
// sense that nothing is queued or retried; an SMTP failure surfaces
// immediately.
func ForgotPassword(c *gin.Context, cfg *config.Config, users services.UserStore, mail *services.MailRelay) {
	var request dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email Required"})
		return
	}

	user, err := users.FindByEmailOrPhone(c.Request.Context(), request.Email, "")
	if err != nil {
		if err == services.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User Not Found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	resetLink := fmt.Sprintf("%s/%s", cfg.ResetLinkBase, user.UserID)
	body := services.BuildResetEmail(user.Username, resetLink)
	if err := mail.Send(user.Email, "Password Reset - Journey Of Heart to Heart", body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send reset email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password Reset Link sent successfully"})
}

func ResetPassword(c *gin.Context, users services.UserStore) {
	userID := c.MustGet("userId").(string)

	var request dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "New password and confirmation are required"})
		return
	}
	if request.NewPass != request.ConfirmPass {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password Does not Match"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.NewPass), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	if err := users.SetPassword(c.Request.Context(), userID, string(hashedPassword)); err != nil {
		if err == services.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User Id Not Found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
