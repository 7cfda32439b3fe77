/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/tieubaoca/policy-insights-be/config"
	"github.com/tieubaoca/policy-insights-be/database"
	"github.com/tieubaoca/policy-insights-be/handler"
	"github.com/tieubaoca/policy-insights-be/middleware"
	"github.com/tieubaoca/policy-insights-be/repository"
	"github.com/tieubaoca/policy-insights-be/service"
)

// startServerCmd represents the startServer command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the policy insights server",
	Long:  `Starts the HTTP server serving policy browsing, Q&A and analytics`,
	Run: func(cmd *cobra.Command, args []string) {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		store, err := database.NewStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("Failed to open store: %v", err)
		}
		defer store.Close()

		// Initialize repositories
		queryRepo := repository.NewQueryRepo(store)
		userRepo := repository.NewUserRepo(store)

		// Initialize services
		aiService, err := newAIService(cfg)
		if err != nil {
			log.Fatalf("Failed to create AI service: %v", err)
		}
		pdfService := service.NewPDFService()
		policyService := service.NewPolicyService(cfg.PolicyDir, pdfService)
		insightService := service.NewInsightService(aiService, queryRepo)
		analyticsService := service.NewAnalyticsService(queryRepo)
		userService := service.NewUserService(userRepo)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		askHandler := handler.NewAskHandler(insightService, policyService, pdfService)
		policyHandler := handler.NewPolicyHandler(policyService, insightService)
		analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
		uploadHandler := handler.NewUploadHandler(policyService)
		loginHandler := handler.NewLoginHandler(userService)
		userMngHandler := handler.NewUserManageHandler(userService)

		// Setup Gin router
		router := gin.Default()

		// Apply global middleware
		router.Use(corsHandler.CorsMiddleware)

		apiV1 := router.Group("/api/v1")
		apiV1.POST("/login", loginHandler.HandleLogin)

		// Protected user routes
		userRoutes := apiV1.Group("/")
		userRoutes.Use(middleware.AuthMiddleware)
		{
			userRoutes.GET("/policies", policyHandler.HandleList)
			userRoutes.GET("/policies/file", policyHandler.HandleServeFile)
			userRoutes.POST("/policies/summarize", policyHandler.HandleSummarize)
			userRoutes.POST("/ask", askHandler.HandleAsk)
			userRoutes.POST("/ask-upload", askHandler.HandleAskUpload)
			userRoutes.GET("/analytics", analyticsHandler.HandleReport)
			userRoutes.GET("/faqs", askHandler.HandleFAQs)
		}

		// Admin routes - require admin authentication
		adminRoutes := router.Group("/admin/api/v1")
		adminRoutes.Use(middleware.AdminAuthMiddleware)
		{
			adminRoutes.POST("/upload", uploadHandler.HandleUploadPolicy)
			adminRoutes.POST("/users/create", userMngHandler.HandleCreateUser)
			adminRoutes.POST("/users/batch-create", userMngHandler.HandlerBatchCreateUser)
			adminRoutes.GET("/users/paginate", userMngHandler.HandlePaginateUser)
			adminRoutes.GET("/users/get", userMngHandler.HandleGetUser)
			adminRoutes.PUT("/users/update", userMngHandler.HandleUpdateUser)
			adminRoutes.DELETE("/users/delete", userMngHandler.HandleDeleteUser)
		}

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func newAIService(cfg *config.Config) (service.AIService, error) {
	switch cfg.AIProvider {
	case "gemini":
		return service.NewGeminiService(cfg.GeminiAPIKeys, cfg.Model)
	case "openai", "":
		return service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown ai provider: %s", cfg.AIProvider)
	}
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
