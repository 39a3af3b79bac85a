package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"devforge/internal/auth"
	"devforge/internal/capabilities"
	"devforge/internal/config"
	"devforge/internal/handler"
	"devforge/internal/middleware"
	"devforge/internal/repository/postgres"
	agentService "devforge/internal/service/agent"
	"devforge/internal/service/collab"
	serviceLLM "devforge/internal/service/llm"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

// maxLogFiles bounds how many timestamped log files are kept when LOG_DIR
// is configured.
const maxLogFiles = 10

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, maxLogFiles)
		if err != nil {
			log.Fatalf("Failed to set up log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger) // Set as default logger

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create session token issuer
	tokenIssuer, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("Failed to create token issuer: %v", err)
	}

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	requirementRepo := postgres.NewRequirementRepository(repoConfig)
	taskRepo := postgres.NewTaskRepository(repoConfig)
	documentRepo := postgres.NewDocumentRepository(repoConfig)

	// Setup LLM providers
	_, defaultClient, err := serviceLLM.SetupProviders(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to setup LLM providers: %v", err)
	}

	// Initialize capability registry
	capabilityRegistry, err := capabilities.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to initialize capability registry: %v", err)
	}
	logger.Info("capability registry initialized")

	// Agent services (conversation store + generation orchestrator)
	conversationStore := agentService.NewMemoryStore()
	agentSvc := agentService.NewService(conversationStore, defaultClient, logger)

	// Collaboration services
	userService := collab.NewUserService(userRepo, tokenIssuer, logger)
	requirementService := collab.NewRequirementService(requirementRepo, logger)
	taskService := collab.NewTaskService(taskRepo, logger)
	documentService := collab.NewDocumentService(documentRepo, taskRepo, logger)

	// Create handlers
	userHandler := handler.NewUserHandler(userService, logger)
	requirementHandler := handler.NewRequirementHandler(requirementService, logger)
	taskHandler := handler.NewTaskHandler(taskService, logger)
	documentHandler := handler.NewDocumentHandler(documentService, logger)

	// Generation handlers share one SSE pump
	generateHandler := handler.NewGenerateHandler(agentSvc, cfg.StreamPace, logger)
	agentHandler := handler.NewAgentHandler(agentSvc, generateHandler, logger)
	conversationHandler := handler.NewConversationHandler(conversationStore, logger)
	modelsHandler := handler.NewModelsHandler(cfg, capabilityRegistry, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", documentHandler.HealthCheck)

	// User routes
	mux.HandleFunc("POST /api/users/register", userHandler.Register)
	mux.HandleFunc("POST /api/users/login", userHandler.Login)

	// Requirement routes
	mux.HandleFunc("POST /api/requirements", requirementHandler.CreateRequirement)
	mux.HandleFunc("GET /api/requirements", requirementHandler.ListRequirements)
	mux.HandleFunc("GET /api/requirements/{id}", requirementHandler.GetRequirement)
	mux.HandleFunc("PATCH /api/requirements/{id}", requirementHandler.UpdateRequirement)

	// Task routes
	mux.HandleFunc("POST /api/tasks", taskHandler.CreateTask)
	mux.HandleFunc("GET /api/tasks", taskHandler.ListTasks)
	mux.HandleFunc("GET /api/tasks/{id}/documents", documentHandler.ListTaskDocuments)

	// Document routes
	mux.HandleFunc("POST /api/documents", documentHandler.CreateDocument)
	mux.HandleFunc("GET /api/documents", documentHandler.ListDocuments)

	// Generation routes
	mux.HandleFunc("POST /api/generate/requirement", generateHandler.GenerateRequirement)
	mux.HandleFunc("POST /api/generate/architecture", generateHandler.GenerateArchitecture)
	mux.HandleFunc("POST /api/generate/code", generateHandler.GenerateCode)
	mux.HandleFunc("POST /api/generate/tests", generateHandler.GenerateTests)

	// Free-form agent and conversation routes
	mux.HandleFunc("POST /api/agent", agentHandler.Respond)
	mux.HandleFunc("DELETE /api/conversations/{id}", conversationHandler.ClearConversation)

	// Model capabilities routes
	mux.HandleFunc("GET /api/models/capabilities", modelsHandler.GetCapabilities)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	root = middleware.Auth(tokenIssuer)(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", "Last-Event-ID"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disabled to allow long-lived SSE streams
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
