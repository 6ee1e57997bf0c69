package main

import (
	"log"

	"github.com/springpad/doc-parser/client"
	"github.com/springpad/doc-parser/config"
	"github.com/springpad/doc-parser/handler"
	"github.com/springpad/doc-parser/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize LLM client
	llmClient := client.NewLLMClient(client.LLMProvider(cfg.LLMProvider), cfg.LLMAPIKey, cfg.LLMModel)

	// Initialize service layer
	statementService := service.NewStatementService(pdfProcessor, llmClient)

	// Initialize handler layer
	statementHandler := handler.NewStatementHandler(statementService)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "CAS Statement Parser",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		statement := api.Group("/statement")
		{
			statement.POST("/parse", statementHandler.ParseStatement)
			statement.POST("/parse-text", statementHandler.ParseText)
			statement.GET("/latest", statementHandler.Latest)
		}
	}

	// Start server
	log.Printf("Starting CAS Statement Parser on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
