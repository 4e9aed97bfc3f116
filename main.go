package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"office-leasing-backend/config"
	"office-leasing-backend/controllers"
	"office-leasing-backend/routes"
	"office-leasing-backend/services"
	"office-leasing-backend/utils"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the leasing API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ConnectDatabase(); err != nil {
				return fmt.Errorf("database connect failed: %w", err)
			}
			db := config.DB

			jwtSecret := utils.EnvOrDefault("JWT_SECRET", "")
			if jwtSecret == "" {
				return fmt.Errorf("JWT_SECRET environment variable is not set")
			}

			officeService := services.NewOfficeService(db)
			leaseService := services.NewLeaseService(db)
			chequeService := services.NewChequeService(db)
			bookingService := services.NewBookingService(db)

			authController := controllers.NewAuthController(db, jwtSecret)
			officeController := controllers.NewOfficeController(officeService, leaseService)
			accountingController := controllers.NewAccountingController(chequeService, leaseService)
			bookingController := controllers.NewBookingController(bookingService)

			router := routes.SetupRouter(authController, officeController, accountingController, bookingController, jwtSecret)

			addr := ":" + utils.EnvOrDefault("PORT", "8080")
			srv := &http.Server{
				Addr:              addr,
				Handler:           router,
				ReadTimeout:       10 * time.Second,
				ReadHeaderTimeout: 5 * time.Second,
				WriteTimeout:      20 * time.Second,
				IdleTimeout:       60 * time.Second,
			}

			go func() {
				log.Printf("server starting on %s", addr)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("ListenAndServe(): %v", err)
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			<-quit
			log.Println("shutdown signal received, shutting down server...")

			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}

			log.Println("server stopped gracefully")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert reference data (offices, meeting rooms, default superuser); idempotent",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ConnectDatabase(); err != nil {
				return fmt.Errorf("database connect failed: %w", err)
			}
			if err := config.Seed(config.DB); err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}
			log.Println("seed complete")
			return nil
		},
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	rootCmd := &cobra.Command{
		Use:   "office-backend",
		Short: "Office leasing and meeting-room booking backend",
	}
	rootCmd.AddCommand(serveCmd(), seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
