package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MalithGihan/order-extractor/internal/config"
	"github.com/MalithGihan/order-extractor/internal/ingest"
)

// Server serves the extraction API. It holds no per-request state.
type Server struct {
	cfg       config.Config
	log       *slog.Logger
	extractor ingest.TextExtractor
}

type Option func(*Server)

// WithTextExtractor replaces the PDF text reader.
func WithTextExtractor(ex ingest.TextExtractor) Option {
	return func(s *Server) { s.extractor = ex }
}

func New(cfg config.Config, logger *slog.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{cfg: cfg, log: logger, extractor: ingest.DefaultExtractor}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(s.cors())

	r.Get("/health", s.handleHealth)
	r.Get("/schema/orders.json", s.handleSchema)

	r.Route("/extract", func(r chi.Router) {
		r.Post("/", s.handleExtract)
		r.Post("/pdf", s.handlePDF)
		r.Post("/excel", s.handleExcel)
	})
	return r
}
