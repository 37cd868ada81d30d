package connection

import (
	"log"

	"matchapp/config"
	authcontroller "matchapp/controller/auth"
	lookupcontroller "matchapp/controller/lookup"
	paymentcontroller "matchapp/controller/payment"
	plancontroller "matchapp/controller/plan"
	preferencecontroller "matchapp/controller/preference"
	profilecontroller "matchapp/controller/profile"
	usercontroller "matchapp/controller/user"
	"matchapp/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	fb, bucket, err := FBConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}

	users := services.NewFirestoreUserStore(fb)
	payments := services.NewFirestorePaymentStore(fb)
	plans := services.NewFirestorePlanStore(fb)
	profiles := services.NewFirestoreProfileStore(fb)
	prefs := services.NewFirestorePreferenceStore(fb)
	lookups := services.NewFirestoreLookupStore(fb)

	tokens := services.NewTokenService(cfg)
	uploads := services.NewBucketUploader(bucket, cfg.StorageBucket)
	mail := services.NewMailRelay(cfg.SMTP)
	paymentService := services.NewPaymentService(payments, users, plans)

	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	authcontroller.RegisterController(router, users)
	authcontroller.LoginController(router, users, tokens)
	authcontroller.PasswordController(router, cfg, users, tokens, mail)
	if cfg.Captcha.SiteKey != "" {
		authcontroller.CaptchaController(router, cfg)
	}

	usercontroller.UserController(router, users, tokens, uploads)
	paymentcontroller.PaymentController(router, paymentService, tokens, uploads)
	plancontroller.PlanController(router, plans, users, tokens)
	profilecontroller.ProfileController(router, profiles, users, prefs, tokens, uploads)
	preferencecontroller.PreferenceController(router, prefs, profiles, tokens)
	lookupcontroller.LookupController(router, lookups, users, tokens)

	router.Run(":" + cfg.Port)
}
