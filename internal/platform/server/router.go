package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ogurasousui/hr-desk/internal/adapters/http/handler"
	"github.com/ogurasousui/hr-desk/internal/platform/obs"
)

// RouterOptions はルーターの構成要素です。Metrics と Limiter は省略できます。
// TrustProxy はリバースプロキシ配下でのみ有効にします。
type RouterOptions struct {
	Handler    *handler.Handler
	Metrics    *obs.HTTPMetrics
	Gatherer   prometheus.Gatherer
	Limiter    *handler.RateLimiter
	Logger     *zap.Logger
	TrustProxy bool
}

// NewRouter はミドルウェアとルートを組み立てます。
func NewRouter(opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if opts.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Recoverer)
	r.Use(handler.RequestLogger(opts.Logger))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Instrument)
	}

	r.Get("/healthz", healthz)
	if opts.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", obs.Handler(opts.Gatherer))
	}

	var writes []func(http.Handler) http.Handler
	if opts.Limiter != nil {
		writes = append(writes, opts.Limiter.Middleware)
	}
	opts.Handler.Register(r, writes...)

	return r
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
