package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

type RouterConfig struct {
	CORSOrigins    []string
	RequestTimeout time.Duration
}

// NewRouter mounts the calculators under /api/v1 and a liveness probe at
// /health. A nil limiter disables rate limiting.
func NewRouter(
	loanHandler *LoanHandler,
	termHandler *TermRecommendationHandler,
	limiter *RateLimiter,
	cfg RouterConfig,
	log *logrus.Logger,
) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "Retry-After"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, log, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		if limiter != nil {
			r.Use(RateLimitMiddleware(limiter, log))
		}

		r.Get("/calculations", loanHandler.RecentCalculations)

		r.Route("/loan", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))

			r.Post("/calculate", loanHandler.CalculateLoan)
			r.Post("/schedule", loanHandler.Schedule)
			r.Post("/repayment-time", loanHandler.RepaymentTime)
			r.Post("/compare", loanHandler.Compare)
			r.Post("/extra-repayments", loanHandler.ExtraRepayments)
			r.Post("/interest-only", loanHandler.InterestOnly)
			r.Post("/borrowing-power", loanHandler.BorrowingPower)
			r.Post("/switching", loanHandler.Switching)
			r.Post("/recommend-term", termHandler.RecommendTerm)
		})
	})

	return r
}

func requestLogger(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.WithFields(logrus.Fields{
				"request_id": middleware.GetReqID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"bytes":      ww.BytesWritten(),
				"duration":   time.Since(start).String(),
			}).Info("request")
		})
	}
}
