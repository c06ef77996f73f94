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

	"marketing-backend/internal/config"
	"marketing-backend/internal/handlers"
	"marketing-backend/internal/repository"
	"marketing-backend/internal/router"
	"marketing-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Houston Marketing Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	cfg.Validate()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Dataset Store ────
	var datasetRepo repository.DatasetRepo
	var memRepo *repository.MemoryDatasetRepo
	if cfg.CSVStore == "redis" {
		redisRepo, err := repository.NewRedisDatasetRepo(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer redisRepo.Close()
		datasetRepo = redisRepo
		log.Println("✓ Redis dataset store connected")
	} else {
		memRepo = repository.NewMemoryDatasetRepo()
		defer memRepo.Stop()
		datasetRepo = memRepo
		log.Println("✓ In-memory dataset store initialized (1h TTL)")
	}

	// ──── Step 3: Initialize AI Providers ────
	replicateClient := services.NewReplicateClient(cfg.ReplicateToken)
	if replicateClient.Configured() {
		log.Println("✓ Replicate client initialized")
	}

	geminiService, err := services.NewGeminiService(cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	if geminiService.Available() {
		log.Println("✓ Gemini Flash client initialized")
	}

	// ──── Step 4: Initialize PDF Renderer (optional) ────
	var pdfRenderer *services.PDFRenderer
	if cfg.PDFEnabled {
		pdfRenderer, err = services.NewPDFRenderer()
		if err != nil {
			log.Printf("⚠️  PDF renderer unavailable, documents will render as HTML only: %v", err)
			pdfRenderer = nil
		} else {
			defer pdfRenderer.Close()
		}
	}

	// ──── Initialize Services ────
	// Provider order is the fallback chain: Replicate, then Gemini, then
	// the static template bank inside the content service.
	contentService := services.NewContentService(replicateClient, geminiService)
	bulkService := services.NewBulkService(contentService)
	csvService := services.NewCSVService(datasetRepo)
	seoService := services.NewSEOService()
	mediaService := services.NewMediaService(replicateClient)
	documentService := services.NewDocumentService(pdfRenderer, cfg.UploadsDir)
	templateRepo := repository.NewMemoryTemplateRepo()

	// ──── Initialize Handlers ────
	contentHandler := handlers.NewContentHandler(contentService, bulkService)
	documentHandler := handlers.NewDocumentHandler(documentService, csvService)
	imageHandler := handlers.NewImageHandler(mediaService)
	videoHandler := handlers.NewVideoHandler(mediaService)
	seoHandler := handlers.NewSEOHandler(seoService)
	templateHandler := handlers.NewTemplateHandler(templateRepo)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(
		contentHandler,
		documentHandler,
		imageHandler,
		videoHandler,
		seoHandler,
		templateHandler,
		cfg.FrontendURL,
		cfg.UploadsDir,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // media generation polls Replicate
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Marketing Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
