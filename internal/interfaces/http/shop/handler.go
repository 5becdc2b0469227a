package shop

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	shopapp "github.com/sngm3741/akiseki-navi-services/api/internal/shop/application"
)

// Handler wires the store-user seat status endpoints to the application
// service.
type Handler struct {
	logger     *log.Logger
	seatStatus shopapp.SeatStatusService
	now        func() int64
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger     *log.Logger
	SeatStatus shopapp.SeatStatusService
	// Now supplies the evaluation clock in epoch seconds. Defaults to
	// wall-clock time; tests inject a fixed value.
	Now func() int64
}

// NewHandler constructs the shop HTTP handler set.
func NewHandler(cfg Config) *Handler {
	now := cfg.Now
	if now == nil {
		now = func() int64 { return time.Now().Unix() }
	}
	return &Handler{
		logger:     cfg.Logger,
		seatStatus: cfg.SeatStatus,
		now:        now,
	}
}

// Register mounts shop routes. 認証必須のため全ルートにミドルウェアを適用する。
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/shop", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/seat-status", h.seatStatusGetHandler())
		r.Post("/seat-status", h.seatStatusPostHandler())
		r.Get("/auth/verify", h.authVerifyHandler())
	})
}
