package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"office-leasing-backend/controllers"
	"office-leasing-backend/middleware"
	"office-leasing-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers into their role-gated route groups.
func SetupRouter(
	ac *controllers.AuthController,
	oc *controllers.OfficeController,
	acc *controllers.AccountingController,
	bc *controllers.BookingController,
	jwtSecret string,
) *gin.Engine {
	r := gin.Default()

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/login", ac.Login)

		authed := api.Group("", middleware.Authenticate(jwtSecret))
		{
			accounting := authed.Group("/accounting",
				middleware.RequireRole(models.RoleAccountant, models.RoleManager))
			{
				accounting.GET("/dashboard", acc.Dashboard)
				accounting.POST("/cheques/:id/status", acc.UpdateChequeStatus)
				accounting.GET("/report.csv", acc.DownloadReport)
				accounting.GET("/leases/:id", acc.GetLease)
			}

			// lease creation is a manager action
			authed.POST("/leases",
				middleware.RequireRole(models.RoleManager), acc.CreateLease)

			bookings := authed.Group("/bookings")
			{
				bookings.GET("", bc.Calendar)
				bookings.POST("", bc.CreateBooking)

				reception := bookings.Group("",
					middleware.RequireRole(models.RoleManager, models.RoleReception))
				{
					reception.GET("/reception", bc.Reception)
					reception.GET("/reports/usage", bc.UsageReport)
				}
			}

			offices := authed.Group("/offices")
			{
				offices.GET("/statistics", oc.Statistics)

				view := offices.Group("",
					middleware.RequireRole(models.RoleManager, models.RoleReception))
				{
					view.GET("", oc.List)
					view.GET("/:number", oc.Get)
					view.GET("/:number/leases", oc.LeaseHistory)
				}

				manage := offices.Group("",
					middleware.RequireRole(models.RoleManager))
				{
					manage.PATCH("/:number", oc.Update)
					manage.POST("/:number/proposal.pdf", oc.GenerateProposal)
					manage.GET("/reports/available.pdf", oc.DownloadAvailableList)
				}
			}
		}
	}

	return r
}
