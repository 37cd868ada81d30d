package payment

import (
	"context"
	"errors"
	"net/http"

	"matchapp/dto"
	"matchapp/middleware"
	"matchapp/model"
	"matchapp/services"

	"github.com/gin-gonic/gin"
)

func PaymentController(router *gin.Engine, svc *services.PaymentService, tokens *services.TokenService, uploads services.Uploader) {
	reviewRoles := middleware.RequireRole(svc.Users, model.RoleAdmin, model.RoleSuperAdmin)

	routes := router.Group("/payment", middleware.SessionAuth(tokens))
	{
		routes.POST("/upload", func(c *gin.Context) {
			UploadPaymentSlip(c, svc, uploads)
		})
		routes.GET("/my-payments", func(c *gin.Context) {
			GetMyPayments(c, svc)
		})
		routes.GET("/all", reviewRoles, func(c *gin.Context) {
			GetAllPayments(c, svc)
		})
		routes.GET("/getbyid/:paymentId", func(c *gin.Context) {
			GetPaymentByID(c, svc)
		})
		routes.PUT("/approve/:paymentId", reviewRoles, func(c *gin.Context) {
			ApprovePayment(c, svc)
		})
		routes.PUT("/reject/:paymentId", reviewRoles, func(c *gin.Context) {
			RejectPayment(c, svc)
		})
		routes.DELETE("/delete/:paymentId", reviewRoles, func(c *gin.Context) {
			DeletePayment(c, svc)
		})
	}
}

// UploadPaymentSlip stores the evidence image and opens a pending review.
func UploadPaymentSlip(c *gin.Context, svc *services.PaymentService, uploads services.Uploader) {
	userID := c.MustGet("userId").(string)

	var request dto.UploadPaymentRequest
	if err := c.ShouldBind(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Membership plan is required"})
		return
	}

	fileHeader, err := c.FormFile("slip")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment slip image is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	ctx := c.Request.Context()
	slipUrl, err := uploads.Store(ctx, file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload payment slip"})
		return
	}

	payment, err := svc.Submit(ctx, userID, request.MembershipPlanID, request.Amount,
		slipUrl, request.TransactionID, request.PaymentMethod)
	if err != nil {
		switch err {
		case services.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case services.ErrPlanNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Membership plan not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment slip uploaded successfully. Awaiting admin approval.",
		"payment": payment,
	})
}

func GetMyPayments(c *gin.Context, svc *services.PaymentService) {
	userID := c.MustGet("userId").(string)

	payments, err := svc.Payments.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(payments), "payments": payments})
}

func GetAllPayments(c *gin.Context, svc *services.PaymentService) {
	statusFilter := c.Query("status")
	if statusFilter != "" && !model.IsValidPaymentStatus(statusFilter) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
		return
	}

	payments, err := svc.Payments.ListAll(c.Request.Context(), statusFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(payments), "payments": payments})
}

// GetPaymentByID lets the owner read their own review; admins may read
// any.
func GetPaymentByID(c *gin.Context, svc *services.PaymentService) {
	userID := c.MustGet("userId").(string)
	paymentID := c.Param("paymentId")

	ctx := c.Request.Context()
	payment, err := svc.Payments.GetByID(ctx, paymentID)
	if err != nil {
		if err == services.ErrPaymentNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up payment"})
		return
	}

	if payment.UserID != userID {
		caller, err := svc.Users.GetByID(ctx, userID)
		if err != nil || !model.IsAdmin(caller.Role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. You can only view your own payments."})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment found", "payment": payment})
}

func ApprovePayment(c *gin.Context, svc *services.PaymentService) {
	reviewPayment(c, svc.Approve, "Payment approved successfully. User membership updated.")
}

func RejectPayment(c *gin.Context, svc *services.PaymentService) {
	reviewPayment(c, svc.Reject, "Payment rejected")
}

func reviewPayment(c *gin.Context, transition func(ctx context.Context, paymentID, adminID, remarks string) (*model.Payment, error), okMessage string) {
	adminID := c.MustGet("userId").(string)
	paymentID := c.Param("paymentId")

	// Remarks body is optional on both transitions.
	var request dto.ReviewPaymentRequest
	_ = c.ShouldBindJSON(&request)

	payment, err := transition(c.Request.Context(), paymentID, adminID, request.Remarks)
	if err != nil {
		var already *services.AlreadyReviewedError
		switch {
		case err == services.ErrPaymentNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		case errors.As(err, &already):
			c.JSON(http.StatusBadRequest, gin.H{"error": already.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": okMessage, "payment": payment})
}

// DeletePayment is admin cleanup; it works on any status.
func DeletePayment(c *gin.Context, svc *services.PaymentService) {
	paymentID := c.Param("paymentId")

	ctx := c.Request.Context()
	if _, err := svc.Payments.GetByID(ctx, paymentID); err != nil {
		if err == services.ErrPaymentNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up payment"})
		return
	}

	if err := svc.Payments.Delete(ctx, paymentID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted successfully"})
}
