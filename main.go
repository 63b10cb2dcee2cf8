// main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
	"rpe-portal/config"
	"rpe-portal/controllers"
	"rpe-portal/logger"
	"rpe-portal/metrics"
	"rpe-portal/middleware"
	"rpe-portal/models"
	"rpe-portal/services"
	"rpe-portal/websocket"
)

const sessionName = "rpe_session"

// app is everything main wires together.
type app struct {
	handler http.Handler
	hub     *websocket.Hub
	cancel  func()
}

// newSessionStore picks the session backend. The memory backend keeps large
// principals out of the cookie.
func newSessionStore(cfg *config.Config) sessions.Store {
	var store sessions.Store
	if cfg.SessionBackend == "memory" {
		store = memstore.NewStore([]byte(cfg.SessionSecret))
	} else {
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	}
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.SessionSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return store
}

func newGenerator(ctx context.Context, cfg *config.Config) services.Generator {
	if cfg.GeminiAPIKey == "" {
		logger.Warn.Println("[main] GEMINI_API_KEY not set; the assistant will answer with an apology")
		return nil
	}
	gen, err := services.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Error.Printf("[main] Gemini client unavailable: %v", err)
		return nil
	}
	return gen
}

func newPublisher(ctx context.Context, cfg *config.Config) metrics.Publisher {
	if !cfg.MetricsEnabled {
		return metrics.Nop{}
	}
	pub, err := metrics.NewCloudWatchPublisher(cfg.AWSRegion)
	if err != nil {
		logger.Error.Printf("[main] CloudWatch disabled: %v", err)
		return metrics.Nop{}
	}
	go pub.Run(ctx)
	return pub
}

// setupApp builds the router and background workers from cfg.
func setupApp(cfg *config.Config) *app {
	ctx, cancel := context.WithCancel(context.Background())

	content := services.NewContent(services.DefaultSeed())
	dir := services.NewUserDirectory(models.SeedUsers())

	pub := newPublisher(ctx, cfg)
	metrics.TrackMutations(pub, append(content.Observables(), dir.Observable())...)

	hub := websocket.NewHub(pub)
	hub.Watch(append(content.Observables(), dir.Observable())...)
	go hub.Run(ctx)

	portal := controllers.NewPortal(
		content,
		services.NewUserManager(dir),
		services.NewNormalizer(cfg.MaxUploadBytes),
		services.NewChatService(newGenerator(ctx, cfg)),
		hub,
		cfg.ApplicationURL,
	)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	// multipart bodies beyond this spill to disk
	router.MaxMultipartMemory = cfg.MaxUploadBytes
	router.Use(sessions.Sessions(sessionName, newSessionStore(cfg)))
	router.Use(middleware.PortalSession(dir))
	portal.RegisterRoutes(router, cfg.StaticDir)

	var handler http.Handler = router
	if cfg.TracingEnabled {
		handler = xray.Handler(xray.NewFixedSegmentNamer("rpe-portal"), router)
	}
	return &app{handler: handler, hub: hub, cancel: cancel}
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logger.Error.Fatalf("[main] %v", err)
	}
	if err := logger.InitLogger(cfg.LogDir); err != nil {
		logger.Error.Fatalf("[main] Could not initialise logger: %v", err)
	}
	logger.SetLogLevel(cfg.Env)
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	a := setupApp(cfg)
	defer a.cancel()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info.Printf("[main] Listening on %s (static=%s)", srv.Addr, cfg.StaticDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error.Fatalf("Failed to run server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info.Println("[main] Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error.Printf("[main] Forced shutdown: %v", err)
	}
}
