package user

import (
	"net/http"
	"time"

	"matchapp/dto"
	"matchapp/middleware"
	"matchapp/model"
	"matchapp/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func UserController(router *gin.Engine, users services.UserStore, tokens *services.TokenService, uploads services.Uploader) {
	router.GET("/user/getbyid/:userId", func(c *gin.Context) {
		GetUserByID(c, users)
	})
	router.GET("/user/getAllUser",
		middleware.SessionAuth(tokens),
		middleware.RequireRole(users, model.RoleSuperAdmin),
		func(c *gin.Context) {
			GetAllUsers(c, users)
		})
	router.DELETE("/user/delete", middleware.SessionAuth(tokens), func(c *gin.Context) {
		DeleteAccount(c, users)
	})
	router.POST("/user/upload/profile", middleware.SessionAuth(tokens), func(c *gin.Context) {
		UploadProfilePicture(c, users, uploads)
	})
}

func GetUserByID(c *gin.Context, users services.UserStore) {
	userID := c.Param("userId")
	user, err := users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if err == services.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User Not Found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User Found", "user": toUserResponse(user)})
}

func GetAllUsers(c *gin.Context, users services.UserStore) {
	list, err := users.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	responses := make([]dto.UserResponse, 0, len(list))
	for i := range list {
		responses = append(responses, toUserResponse(&list[i]))
	}
	c.JSON(http.StatusOK, gin.H{"count": len(responses), "users": responses})
}

// DeleteAccount removes the caller's own account after re-verifying the
// password.
func DeleteAccount(c *gin.Context, users services.UserStore) {
	userID := c.MustGet("userId").(string)

	var request dto.DeleteAccountRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	ctx := c.Request.Context()
	user, err := users.GetByID(ctx, userID)
	if err != nil {
		if err == services.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User Not Found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password Incorrect"})
		return
	}

	if err := users.Delete(ctx, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User Delete Successfully"})
}

func UploadProfilePicture(c *gin.Context, users services.UserStore, uploads services.Uploader) {
	userID := c.MustGet("userId").(string)

	ctx := c.Request.Context()
	if _, err := users.GetByID(ctx, userID); err != nil {
		if err == services.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User Not Found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	url, err := uploads.Store(ctx, file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload profile picture"})
		return
	}

	if err := users.SetProfilePic(ctx, userID, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile picture"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Upload Successfully", "url": url})
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		UserID:           user.UserID,
		Username:         user.Username,
		Email:            user.Email,
		PhoneNumber:      user.PhoneNumber,
		Role:             user.Role,
		MembershipPlanID: user.MembershipPlanID,
		AccountStatus:    user.AccountStatus,
		ProfilePicUrl:    user.ProfilePicUrl,
		CreatedAt:        user.CreatedAt.Format(time.RFC3339),
	}
}
