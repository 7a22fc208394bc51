package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Codedeepakyadav/RentalXpert/handlers/auth"
	"github.com/Codedeepakyadav/RentalXpert/handlers/dashboard"
	"github.com/Codedeepakyadav/RentalXpert/handlers/documents"
	"github.com/Codedeepakyadav/RentalXpert/handlers/expenses"
	"github.com/Codedeepakyadav/RentalXpert/handlers/maintenance"
	"github.com/Codedeepakyadav/RentalXpert/handlers/messages"
	"github.com/Codedeepakyadav/RentalXpert/handlers/payments"
	"github.com/Codedeepakyadav/RentalXpert/handlers/preferences"
	"github.com/Codedeepakyadav/RentalXpert/handlers/properties"
	"github.com/Codedeepakyadav/RentalXpert/handlers/reminders"
	"github.com/Codedeepakyadav/RentalXpert/handlers/reports"
	"github.com/Codedeepakyadav/RentalXpert/handlers/tenants"
	"github.com/Codedeepakyadav/RentalXpert/migrations"
	"github.com/Codedeepakyadav/RentalXpert/seed"
	"github.com/Codedeepakyadav/RentalXpert/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	cfg := utils.LoadConfig()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	utils.ConnectDatabase(cfg)

	migrations.Migrate()

	if err := seed.SeedDemoData(); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	r.GET("/", home)
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)
	r.GET("/toggle_dark_mode", preferences.ToggleDarkMode)

	protected := r.Group("/")
	protected.Use(auth.AuthMiddleware())
	{
		protected.GET("/logout", auth.Logout)
		protected.GET("/dashboard", dashboard.GetDashboard)
		protected.GET("/properties", properties.GetProperties)
		protected.POST("/add_property", properties.AddProperty)
		protected.GET("/tenants", tenants.GetTenants)
		protected.POST("/add_tenant", tenants.AddTenant)
		protected.GET("/payments", payments.GetPayments)
		protected.POST("/add_payment", payments.AddPayment)
		protected.GET("/expenses", expenses.GetExpenses)
		protected.POST("/add_expense", expenses.AddExpense)
		protected.GET("/maintenance", maintenance.GetMaintenanceRequests)
		protected.POST("/add_maintenance", maintenance.AddMaintenanceRequest)
		protected.GET("/messages", messages.GetMessages)
		protected.POST("/send_message", messages.SendMessage)
		protected.GET("/documents", documents.GetDocuments)
		protected.POST("/add_document", documents.AddDocument)
		protected.GET("/reports", reports.GetReports)
		protected.POST("/api/send_whatsapp_reminder", reminders.SendWhatsAppReminder)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

// home redirects authenticated owners to their dashboard and greets everyone
// else.
func home(c *gin.Context) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		if _, err := utils.ExtractOwnerIDFromToken(authHeader); err == nil {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to RentalXpert. Register or log in to manage your rental properties.",
	})
}
