package plan

import (
	"net/http"
	"time"

	"matchapp/dto"
	"matchapp/middleware"
	"matchapp/model"
	"matchapp/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func PlanController(router *gin.Engine, plans services.PlanStore, users services.UserStore, tokens *services.TokenService) {
	router.POST("/plan/create",
		middleware.SessionAuth(tokens),
		middleware.RequireRole(users, model.RoleSuperAdmin),
		func(c *gin.Context) {
			CreatePlan(c, plans)
		})
	router.GET("/plan/getAll", func(c *gin.Context) {
		GetAllPlans(c, plans)
	})
	router.GET("/plan/getbyid/:planId", func(c *gin.Context) {
		GetPlanByID(c, plans)
	})
}

func CreatePlan(c *gin.Context, plans services.PlanStore) {
	var request dto.CreatePlanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and price are required"})
		return
	}
	if request.Duration != "" && request.Duration != "Monthly" && request.Duration != "Yearly" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Duration must be Monthly or Yearly"})
		return
	}

	plan := model.MembershipPlan{
		PlanID:    uuid.New().String(),
		Name:      request.Name,
		Price:     request.Price,
		Duration:  request.Duration,
		Features:  request.Features,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := plans.Create(c.Request.Context(), &plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plan"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Plan created successfully", "plan": plan})
}

func GetAllPlans(c *gin.Context, plans services.PlanStore) {
	list, err := plans.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list plans"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(list), "plans": list})
}

func GetPlanByID(c *gin.Context, plans services.PlanStore) {
	plan, err := plans.GetByID(c.Request.Context(), c.Param("planId"))
	if err != nil {
		if err == services.ErrPlanNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Membership plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plan found", "plan": plan})
}
