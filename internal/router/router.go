package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"marketing-backend/internal/handlers"
	"marketing-backend/internal/middleware"
)

func New(
	contentHandler *handlers.ContentHandler,
	documentHandler *handlers.DocumentHandler,
	imageHandler *handlers.ImageHandler,
	videoHandler *handlers.VideoHandler,
	seoHandler *handlers.SEOHandler,
	templateHandler *handlers.TemplateHandler,
	frontendURL string,
	uploadsDir string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// General rate limiter (60 req/min per IP)
	limiter := middleware.NewRateLimiter(60, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Rendered PDFs are served from the uploads directory.
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(limiter.Middleware)

		// ──── Content Routes ────
		r.Route("/content", func(r chi.Router) {
			r.Post("/generate", contentHandler.Generate)
			r.Post("/bulk", contentHandler.GenerateBulk)
		})

		// ──── Document Routes ────
		r.Route("/documents", func(r chi.Router) {
			r.Post("/generate", documentHandler.Generate)
			r.Post("/csv-import", documentHandler.ImportCSV)
			r.Get("/csv-import", documentHandler.GetDataset)
		})

		// ──── Media Routes ────
		r.Route("/images", func(r chi.Router) {
			r.Post("/generate", imageHandler.Generate)
			r.Post("/upload", imageHandler.Upload)
		})
		r.Route("/videos", func(r chi.Router) {
			r.Post("/generate", videoHandler.Generate)
		})

		// ──── SEO Routes ────
		r.Route("/seo-trends", func(r chi.Router) {
			r.Get("/", seoHandler.Trends)
			r.Post("/", seoHandler.Analyze)
		})

		// ──── Template Routes ────
		r.Route("/templates", func(r chi.Router) {
			r.Get("/", templateHandler.List)
			r.Post("/", templateHandler.Create)
			r.Put("/", templateHandler.Update)
			r.Delete("/", templateHandler.Delete)
		})
	})

	return r
}
