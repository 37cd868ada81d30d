package auth

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"matchapp/config"
	"matchapp/dto"

	recaptcha "cloud.google.com/go/recaptchaenterprise/v2/apiv1"
	"cloud.google.com/go/recaptchaenterprise/v2/apiv1/recaptchaenterprisepb"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"
)

// CaptchaController is registered only when a reCAPTCHA site key is
// configured. The frontend calls it before register/login to score the
// visitor.
func CaptchaController(router *gin.Engine, cfg *config.Config) {
	router.POST("/auth/captcha", func(c *gin.Context) {
		VerifyCaptcha(c, cfg.Captcha)
	})
}

func VerifyCaptcha(c *gin.Context, cfg config.CaptchaConfig) {
	var request dto.CaptchaRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Token is required"})
		return
	}

	result, err := createAssessment(c.Request.Context(), cfg, request.Token, request.Action,
		clientIP(c), c.Request.UserAgent())
	if err != nil {
		log.Printf("error verifying reCAPTCHA: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	if result == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "reCAPTCHA verification failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"score":   result.Score,
		"action":  result.Action,
		"reasons": result.Reasons,
		"message": "Captcha verified successfully",
	})
}

func clientIP(c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		ip = c.Request.RemoteAddr
	}
	if idx := strings.Index(ip, ","); idx != -1 {
		ip = strings.TrimSpace(ip[:idx])
	}
	return ip
}

func createAssessment(ctx context.Context, cfg config.CaptchaConfig, token, action, ip, userAgent string) (*dto.AssessmentResult, error) {
	client, err := recaptcha.NewClient(ctx, option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		return nil, err
	}
	defer client.Close()

	response, err := client.CreateAssessment(ctx, &recaptchaenterprisepb.CreateAssessmentRequest{
		Parent: fmt.Sprintf("projects/%s", cfg.ProjectID),
		Assessment: &recaptchaenterprisepb.Assessment{
			Event: &recaptchaenterprisepb.Event{
				Token:         token,
				SiteKey:       cfg.SiteKey,
				UserIpAddress: ip,
				UserAgent:     userAgent,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	if response.TokenProperties == nil || !response.TokenProperties.Valid {
		return nil, nil
	}
	if action != "" && response.TokenProperties.Action != action {
		return nil, nil
	}

	result := &dto.AssessmentResult{Action: response.TokenProperties.Action}
	if response.RiskAnalysis != nil {
		result.Score = response.RiskAnalysis.Score
		for _, reason := range response.RiskAnalysis.Reasons {
			result.Reasons = append(result.Reasons, reason.String())
		}
	}
	return result, nil
}
