package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	storagev1 "google.golang.org/api/storage/v1"

	"diary-agent/config"
	_ "diary-agent/docs" // Swagger docs
	"diary-agent/internal/agent/classifier"
	agentHTTP "diary-agent/internal/agent/delivery/http"
	"diary-agent/internal/agent/orchestrator"
	"diary-agent/internal/httpserver"
	imageHTTP "diary-agent/internal/image/delivery/http"
	imageGCS "diary-agent/internal/image/repository/gcs"
	imageUC "diary-agent/internal/image/usecase"
	"diary-agent/internal/knowledge"
	knowledgeHTTP "diary-agent/internal/knowledge/delivery/http"
	knowledgeQdrant "diary-agent/internal/knowledge/repository/qdrant"
	knowledgeUC "diary-agent/internal/knowledge/usecase"
	"diary-agent/internal/middleware"
	reportHTTP "diary-agent/internal/report/delivery/http"
	reportQdrant "diary-agent/internal/report/repository/qdrant"
	reportSqlite "diary-agent/internal/report/repository/sqlite"
	reportUC "diary-agent/internal/report/usecase"
	summarizeHTTP "diary-agent/internal/summarize/delivery/http"
	summarizeUC "diary-agent/internal/summarize/usecase"
	"diary-agent/pkg/datemath"
	"diary-agent/pkg/imagen"
	"diary-agent/pkg/llmprovider"
	"diary-agent/pkg/log"
	"diary-agent/pkg/qdrant"
	"diary-agent/pkg/voyage"
)

// @title       Diary Agent API
// @description Orchestration core for a diary application: intent routing, knowledge search, summarization, image pipeline, and weekly reports.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Diary Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM provider manager
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
	maxTotalTimeout, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotalTimeout,
	}, logger)

	// 4. Date resolver
	dates, err := datemath.NewResolver(cfg.Agent.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Agent.Timezone, err)
		dates, _ = datemath.NewResolver("UTC")
	}

	// 5. Knowledge domain (Qdrant + Voyage)
	var knowledgeUseCase knowledge.UseCase
	var knowledgeHandler knowledgeHTTP.Handler
	if cfg.Knowledge.QdrantURL != "" && cfg.Voyage.APIKey != "" {
		embedder, vErr := voyage.New(cfg.Voyage.APIKey)
		if vErr != nil {
			logger.Error(ctx, "Failed to initialize Voyage client: ", vErr)
			return
		}
		entryRepo := knowledgeQdrant.New(qdrant.NewClient(cfg.Knowledge.QdrantURL), embedder, cfg.Knowledge.CollectionName, logger)
		knowledgeUseCase = knowledgeUC.New(logger, llm, entryRepo, dates, cfg.Knowledge.SearchLimit)
		knowledgeHandler = knowledgeHTTP.New(logger, knowledgeUseCase)
	} else {
		logger.Warn(ctx, "Knowledge search disabled: QDRANT_URL or VOYAGE_API_KEY missing")
	}

	// 6. Orchestrator (/agent)
	cls, err := classifier.New(logger, llm, cfg.Agent.ClassifierThreshold, cfg.Agent.ClassifierCacheSize)
	if err != nil {
		logger.Error(ctx, "Failed to initialize classifier: ", err)
		return
	}
	agentHandler := agentHTTP.New(logger, orchestrator.New(logger, cls, knowledgeUseCase))

	// 7. Summarize domain
	summarizeHandler := summarizeHTTP.New(logger, summarizeUC.New(logger, llm))

	// 8. Image domain (Imagen + GCS)
	var imageHandler imageHTTP.Handler
	if cfg.Imagen.APIKey != "" && cfg.Storage.Bucket != "" {
		synthesizer, iErr := imagen.New(imagen.Config{
			APIKey: cfg.Imagen.APIKey,
			Model:  cfg.Imagen.Model,
		})
		if iErr != nil {
			logger.Error(ctx, "Failed to initialize Imagen client: ", iErr)
			return
		}

		storageService, sErr := newStorageService(ctx, cfg.Storage.CredentialsPath)
		if sErr != nil {
			logger.Error(ctx, "Failed to initialize object storage: ", sErr)
			return
		}

		artifactRepo := imageGCS.New(storageService, cfg.Storage.Bucket, logger)
		imageHandler = imageHTTP.New(logger, imageUC.New(logger, llm, synthesizer, artifactRepo))
	} else {
		logger.Warn(ctx, "Image pipeline disabled: IMAGEN_API_KEY or STORAGE_BUCKET missing")
	}

	// 9. Report domain (SQLite + Qdrant entry source)
	var reportHandler reportHTTP.Handler
	reportStore, err := reportSqlite.Open(cfg.Reports.DataDir)
	if err != nil {
		logger.Error(ctx, "Failed to open report store: ", err)
		return
	}
	defer reportStore.Close()

	if cfg.Knowledge.QdrantURL != "" {
		entrySource := reportQdrant.New(qdrant.NewClient(cfg.Knowledge.QdrantURL), cfg.Knowledge.CollectionName, logger)
		reportHandler = reportHTTP.New(logger, reportUC.New(logger, llm, reportStore, entrySource))
	} else {
		logger.Warn(ctx, "Report generation disabled: QDRANT_URL missing")
	}

	// 10. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg.Agent.RateLimitPerMin),

		AgentHandler:     agentHandler,
		KnowledgeHandler: knowledgeHandler,
		ImageHandler:     imageHandler,
		ReportHandler:    reportHandler,
		SummarizeHandler: summarizeHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newStorageService builds the GCS client, from a service account file when
// configured, otherwise from application default credentials.
func newStorageService(ctx context.Context, credentialsPath string) (*storagev1.Service, error) {
	if credentialsPath != "" {
		return storagev1.NewService(ctx, option.WithCredentialsFile(credentialsPath), option.WithScopes(storagev1.DevstorageReadWriteScope))
	}

	client, err := google.DefaultClient(ctx, storagev1.DevstorageReadWriteScope)
	if err != nil {
		return nil, err
	}
	return storagev1.NewService(ctx, option.WithHTTPClient(client))
}
