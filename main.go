package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"

	"hotel-booking-api/config"
	"hotel-booking-api/controllers"
	"hotel-booking-api/repository"
	"hotel-booking-api/routes"
)

func main() {
	root := &cli.Command{
		Name:  "hotel-booking-api",
		Usage: "Hotel back-office REST API over the booking database",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "optional YAML config file", Sources: cli.EnvVars("CONFIG_PATH")},
			&cli.StringFlag{Name: "addr", Usage: "HTTP listen address, overrides PORT"},
		},
		Commands: []*cli.Command{
			pingCommand(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}
			addr := cfg.Server.Addr()
			if a := cmd.String("addr"); a != "" {
				addr = a
			}
			return runServer(ctx, cfg, addr)
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func pingCommand() *cli.Command {
	return &cli.Command{
		Name:  "ping",
		Usage: "Check that the database is reachable and exit",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}
			db, err := config.ConnectDatabase(cfg.Database)
			if err != nil {
				return err
			}
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			if err := repository.NewDB(db).Ping(pingCtx); err != nil {
				return err
			}
			log.Println("✅ Database reachable")
			return nil
		},
	}
}

func runServer(ctx context.Context, cfg *config.Config, addr string) error {
	db, err := config.ConnectDatabase(cfg.Database)
	if err != nil {
		return err
	}
	store := repository.NewDB(db)
	log.Println("✅ Database connection established.")

	gin.SetMode(gin.ReleaseMode)
	router := routes.SetupRouter(cfg.Server, store, routes.Controllers{
		Amenity:  controllers.NewAmenityController(repository.NewAmenityRepository(store)),
		Room:     controllers.NewRoomController(repository.NewRoomRepository(store)),
		RoomType: controllers.NewRoomTypeController(repository.NewRoomTypeRepository(store)),
		User:     controllers.NewUserController(repository.NewUserRepository(store)),
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case <-quit:
		log.Println("⚠️  Shutdown signal received, shutting down server...")
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("✅ Server stopped gracefully")
	return nil
}
