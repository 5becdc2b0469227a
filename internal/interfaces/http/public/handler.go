package public

import (
	"log"
	"time"

	"github.com/go-chi/chi/v5"

	publicapp "github.com/sngm3741/akiseki-navi-services/api/internal/public/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger       *log.Logger
	storeQueries publicapp.StoreQueryService
	now          func() int64
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger       *log.Logger
	StoreQueries publicapp.StoreQueryService
	// Now supplies the evaluation clock in epoch seconds. Defaults to
	// wall-clock time; tests inject a fixed value.
	Now func() int64
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	now := cfg.Now
	if now == nil {
		now = func() int64 { return time.Now().Unix() }
	}
	return &Handler{
		logger:       cfg.Logger,
		storeQueries: cfg.StoreQueries,
		now:          now,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/stores", h.storeListHandler())
	r.Get("/stores/{id}", h.storeDetailHandler())
}
