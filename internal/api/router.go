package api

import (
	"fmt"
	"log/slog"
	"net/http"

	_ "github.com/mnyiz/lockdin/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mnyiz/lockdin/internal/api/handlers"
	"github.com/mnyiz/lockdin/internal/api/middleware"
	"github.com/mnyiz/lockdin/internal/config"
	"github.com/rs/cors"
)

func SetupRouter(cfg config.Config, h *handlers.Handler, verifier middleware.Verifier, log *slog.Logger) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(cfg.CorsConfig)

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	mainMux.HandleFunc("POST /login", h.Login)
	mainMux.HandleFunc("POST /signup", h.Signup)

	// ---------- PROTECTED ROUTES ----------
	mainMux.Handle("POST /friends/request", middleware.RequireCaller(verifier, log, h.RequestFriend))
	mainMux.Handle("GET /protected", middleware.RequireCaller(verifier, log, h.Protected))

	log.Debug("Router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Recover(log, handler)
	handler = middleware.Logger(log, handler)
	return handler
}
