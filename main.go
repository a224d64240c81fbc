package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/yourusername/invoice-studio/config"
	"github.com/yourusername/invoice-studio/editor"
	"github.com/yourusername/invoice-studio/handlers"
	"github.com/yourusername/invoice-studio/middleware"
)

func main() {
	app := &cli.App{
		Name:  "invoice-studio",
		Usage: "local invoice authoring, storage and PDF export service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Usage:   "port to listen on",
				EnvVars: []string{"PORT"},
			},
			&cli.StringFlag{
				Name:    "db",
				Usage:   "path to the invoice database file",
				EnvVars: []string{"DB_PATH"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func run(c *cli.Context) error {
	log := logrus.New()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if c.String("port") != "" {
		cfg.Port = c.String("port")
	}
	if c.String("db") != "" {
		cfg.DBPath = c.String("db")
	}

	st, err := config.InitStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	ed := editor.New(st)
	if err := ed.LoadAll(); err != nil {
		return err
	}

	router := setupRouter(ed, log)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.WithFields(logrus.Fields{"port": port, "db": cfg.DBPath}).Info("starting invoice-studio")
	return router.Run(":" + port)
}

func setupRouter(ed *editor.Editor, log *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "invoice-studio",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		invoiceHandler := handlers.NewInvoiceHandler(ed)
		api.POST("/invoices", invoiceHandler.CreateInvoice)
		api.GET("/invoices", invoiceHandler.ListInvoices)
		api.GET("/invoices/current", invoiceHandler.GetCurrent)
		api.PATCH("/invoices/current", invoiceHandler.UpdateCurrent)
		api.PATCH("/invoices/current/business", invoiceHandler.UpdateBusinessDetails)
		api.PATCH("/invoices/current/client", invoiceHandler.UpdateClientDetails)
		api.PATCH("/invoices/current/settings", invoiceHandler.UpdateSettings)
		api.POST("/invoices/current/items", invoiceHandler.AddItem)
		api.PATCH("/invoices/current/items/:itemId", invoiceHandler.UpdateItem)
		api.DELETE("/invoices/current/items/:itemId", invoiceHandler.RemoveItem)
		api.POST("/invoices/current/save", invoiceHandler.SaveCurrent)
		api.GET("/invoices/current/pdf", invoiceHandler.ExportPDF)
		api.POST("/invoices/:id/load", invoiceHandler.LoadInvoice)
		api.DELETE("/invoices/:id", invoiceHandler.DeleteInvoice)

		api.GET("/currencies", handlers.ListCurrencies)
		api.GET("/tax-presets", handlers.ListTaxPresets)
	}

	return router
}
