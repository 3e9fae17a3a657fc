package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/bookcircle/server/internal/config"
	"github.com/bookcircle/server/internal/database"
	"github.com/bookcircle/server/internal/database/annotations"
	"github.com/bookcircle/server/internal/database/books"
	"github.com/bookcircle/server/internal/database/friends"
	"github.com/bookcircle/server/internal/database/users"
	http_controllers "github.com/bookcircle/server/internal/http"
)

// Run wires the store, repositories and route layer together and serves
// until interrupted. All store handles are passed explicitly; nothing
// lives in package-level globals.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting bookcircle v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	ctrl := http_controllers.Controllers{
		Books:   http_controllers.NewBooksController(books.NewRepository(db)),
		Users:   http_controllers.NewUsersController(users.NewRepository(db, cfg.Auth.BcryptCost)),
		Shelf:   http_controllers.NewShelfController(annotations.NewRepository(db)),
		Friends: http_controllers.NewFriendsController(friends.NewRepository(db)),
	}
	router := http_controllers.SetupRouter(ctrl, db)

	// Periodic liveness probe keeps a dead connection from surviving
	// between requests on a quiet instance.
	var scheduler *cron.Cron
	if cfg.Store.PingEnabled {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.Store.PingSchedule, func() {
			if err := db.Ping(); err != nil {
				log.Printf("Store liveness probe failed: %v", err)
			}
		})
		if err != nil {
			log.Fatalf("Invalid store ping schedule %q: %v", cfg.Store.PingSchedule, err)
		}
		scheduler.Start()
		log.Printf("Store liveness probe scheduled: %s", cfg.Store.PingSchedule)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if scheduler != nil {
		scheduler.Stop()
	}

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
