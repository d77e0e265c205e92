package main

import (
	"context"
	"log"

	gzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"danakita/cmd/fx/db_fx"
	"danakita/cmd/fx/donation_fx"
	"danakita/cmd/fx/feed_fx"
	"danakita/cmd/fx/gateway_fx"
	"danakita/cmd/fx/leaderboard_fx"
	"danakita/cmd/fx/notifier_fx"
	"danakita/cmd/fx/program_fx"
	"danakita/cmd/fx/referral_fx"
	"danakita/cmd/fx/settlement_fx"
	"danakita/internal/api/controllers"
	"danakita/pkg/config"
	"danakita/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not loaded: %v", err)
	}

	app := fx.New(
		fx.Provide(config.Load),
		db_fx.Module,
		gateway_fx.Module,
		notifier_fx.Module,
		feed_fx.Module,
		program_fx.Module,
		leaderboard_fx.Module,
		referral_fx.Module,
		donation_fx.Module,
		settlement_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	paymentController *controllers.PaymentController,
	donationController *controllers.DonationController,
	programController *controllers.ProgramController,
	leaderboardController *controllers.LeaderboardController,
	referralController *controllers.ReferralController,
	feedController *controllers.FeedController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	RegisterRoutes(r, paymentController, donationController, programController,
		leaderboardController, referralController, feedController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	paymentController *controllers.PaymentController,
	donationController *controllers.DonationController,
	programController *controllers.ProgramController,
	leaderboardController *controllers.LeaderboardController,
	referralController *controllers.ReferralController,
	feedController *controllers.FeedController) {

	api := r.Group("/api")

	payments := api.Group("/payments")
	payments.POST("/notification", paymentController.HandleNotificationHandler)
	payments.POST("/simulate", paymentController.HandleSimulateHandler)

	donations := api.Group("/donations")
	donations.POST("", middleware.OptionalAuthMiddleware(), donationController.CreateDonationHandler)
	donations.GET("/:orderId", donationController.GetDonationHandler)
	donations.GET("/:orderId/qr", donationController.DonationQRHandler)

	programs := api.Group("/programs")
	programs.POST("", middleware.JWTAuthMiddleware(), programController.CreateProgramHandler)
	programs.GET("", programController.ListProgramsHandler)
	programs.GET("/:id", programController.GetProgramHandler)

	api.GET("/leaderboard", leaderboardController.TopDonorsHandler)
	api.GET("/referrals/:code", referralController.CodeStatsHandler)

	r.GET("/ws/donations", feedController.DonationFeedHandler)
}
