package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gitlab.com/finbridge/finbridge/internal/store"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Store   *store.Store
	Advisor Advisory
	Tokens  *AuthTokens
	Mode    string
}

// SetupRouter wires all routes onto a gin engine.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(CORSMiddleware())

	// Health check.
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "FinBridge API"})
	})

	authHandler := NewAuthHandler(deps.Store, deps.Tokens)
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		authorized := auth.Group("")
		authorized.Use(deps.Tokens.Middleware())
		{
			authorized.POST("/logout", authHandler.Logout)
			authorized.GET("/profile", authHandler.Profile)
		}
	}

	// Fee catalog is reference data and needs no session.
	feesHandler := NewFeesHandler()
	r.GET("/api/fees", feesHandler.List)
	r.GET("/api/fees/:year", feesHandler.Lookup)

	protected := r.Group("/api")
	protected.Use(deps.Tokens.Middleware())
	{
		txHandler := NewTransactionHandler(deps.Store)
		tx := protected.Group("/transactions")
		{
			tx.POST("/expenses", txHandler.CreateExpense)
			tx.GET("/expenses", txHandler.ListExpenses)
			tx.POST("/reminders", txHandler.CreateReminder)
			tx.GET("/reminders", txHandler.ListReminders)
			tx.PUT("/reminders/:id/paid", txHandler.MarkReminderPaid)
			tx.POST("/payments", txHandler.CreatePayment)
			tx.GET("/payments", txHandler.ListPayments)
		}

		studentHandler := NewStudentHandler(deps.Store)
		protected.PUT("/student", studentHandler.Set)
		protected.GET("/student", studentHandler.Get)
		protected.DELETE("/student", studentHandler.Clear)
		protected.GET("/student/balance", studentHandler.Balance)

		reportHandler := NewReportHandler(deps.Store)
		reports := protected.Group("/reports")
		{
			reports.GET("/expenses.csv", reportHandler.ExportCSV)
			reports.GET("/expenses/chart.png", reportHandler.Chart)
		}

		if deps.Advisor != nil {
			advisorHandler := NewAdvisorHandler(deps.Store, deps.Advisor)
			adv := protected.Group("/advisor")
			{
				adv.POST("/advice", advisorHandler.Advice)
				adv.POST("/documents/parse", advisorHandler.ParseDocument)
				adv.POST("/expenses/breakdown", advisorHandler.BreakdownExpenses)
				adv.POST("/reminders/summary", advisorHandler.SummarizeReminders)
			}
		}
	}

	return r
}

// CORSMiddleware allows the dashboard frontend to call the API from another
// origin.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
