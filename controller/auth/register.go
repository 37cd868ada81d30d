package auth

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"matchapp/dto"
	"matchapp/model"
	"matchapp/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func RegisterController(router *gin.Engine, users services.UserStore) {
	router.POST("/user/register", func(c *gin.Context) {
		Register(c, users)
	})
}

func Register(c *gin.Context, users services.UserStore) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All Field Required"})
		return
	}

	if err := validEmail(request.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validPhone(request.PhoneNumber); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(request.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
		return
	}

	role := request.Role
	if role == "" {
		role = model.RoleCustomer
	}
	if !model.IsValidRole(role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	ctx := c.Request.Context()
	existing, err := users.FindByEmailOrPhone(ctx, request.Email, request.PhoneNumber)
	if err != nil && err != services.ErrUserNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing user"})
		return
	}
	if existing != nil {
		if existing.Email == request.Email {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email Already Exist."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone Number is Already Exist."})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	newUser := model.User{
		UserID:        uuid.New().String(),
		Username:      request.Username,
		Email:         request.Email,
		PhoneNumber:   request.PhoneNumber,
		Password:      string(hashedPassword),
		Role:          role,
		AccountStatus: model.AccountInactive,
		CreatedAt:     time.Now(),
	}
	if err := users.Create(c.Request.Context(), &newUser); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User Create Successfully",
		"userId":  newUser.UserID,
	})
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func validEmail(email string) error {
	if !emailRe.MatchString(email) {
		return errors.New("invalid email format")
	}
	return nil
}

var phoneRe = regexp.MustCompile(`^[0-9]{10,15}$`)

func validPhone(phone string) error {
	stripped := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	if !phoneRe.MatchString(stripped) {
		return errors.New("invalid phone number format")
	}
	return nil
}
