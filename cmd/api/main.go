package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"reservashotel/internal/config"
	"reservashotel/internal/database"
	"reservashotel/internal/middleware"
	"reservashotel/internal/modules/client"
	"reservashotel/internal/modules/payment"
	"reservashotel/internal/modules/reservation"
	"reservashotel/internal/modules/room"
	"reservashotel/internal/modules/service"
	"reservashotel/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found; continuing with environment variables")
	}

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL, cfg.Schema)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}

	clientHandler := client.NewHandler(repository.NewClientRepository(db))
	roomHandler := room.NewHandler(repository.NewRoomRepository(db))
	reservationHandler := reservation.NewHandler(repository.NewReservationRepository(db))
	paymentHandler := payment.NewHandler(repository.NewPaymentRepository(db))
	serviceHandler := service.NewHandler(repository.NewServiceRepository(db))

	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.Recovery())
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	root := &r.RouterGroup
	clientHandler.RegisterRoutes(root)
	roomHandler.RegisterRoutes(root)
	reservationHandler.RegisterRoutes(root)
	paymentHandler.RegisterRoutes(root)
	serviceHandler.RegisterRoutes(root)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server stopped")
}

func corsConfig(origins []string) cors.Config {
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}
