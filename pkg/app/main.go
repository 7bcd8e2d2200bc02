package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/itemboard/pkg/cache"
	"github.com/ghuser/itemboard/pkg/database"
	"github.com/ghuser/itemboard/pkg/events"
	"github.com/ghuser/itemboard/pkg/logger"
	"github.com/ghuser/itemboard/pkg/web"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route-registration calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "processing item", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db           *database.Database
	Logger       logger.Logger
	EventBus     *events.EventBus
	Redis        *cache.RedisClient
	SessionStore sessions.Store // Redis-backed session store carrying filter state and flashes
	Renderer     *web.Renderer  // HTML template renderer; nil in worker process
}
