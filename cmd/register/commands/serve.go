package commands

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/safar/go-pos-register/internal/catalog"
	"github.com/safar/go-pos-register/internal/config"
	"github.com/safar/go-pos-register/internal/events"
	"github.com/safar/go-pos-register/internal/httpx"
	"github.com/safar/go-pos-register/internal/identity"
	"github.com/safar/go-pos-register/internal/register"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP register",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			alloc := identity.NewAllocator()
			cat := catalog.New(alloc)

			src := catalog.DefaultSource()
			if cfg.Register.SeedPath != "" {
				src = catalog.FileSource(cfg.Register.SeedPath)
			}
			if err := cat.LoadFrom(src); err != nil {
				return err
			}
			log.Printf("Catalog seeded with %d products", cat.Len())

			bus := events.NewBus(cfg.Register.ServiceName)
			coord := register.NewCoordinator(cat, bus, alloc)
			feed := httpx.NewFeed(bus, cfg.Register.FeedCapacity)

			router := httpx.NewRouter()
			h := &httpx.RegisterHandler{Coord: coord, Feed: feed}
			h.Register(router)

			server := &http.Server{
				Addr:         ":" + cfg.Server.Port,
				Handler:      router,
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
			}

			go func() {
				log.Printf("Register listening on port %s", cfg.Server.Port)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Server error: %v", err)
				}
			}()

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			<-sig
			log.Println("Shutting down...")

			ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			return server.Shutdown(ctx)
		},
	}
}
