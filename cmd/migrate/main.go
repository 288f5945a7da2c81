// Command migrate applies the embedded SQL migrations to the database named
// by DATABASE_DSN.
//
// Usage:
//
//	migrate [up|down|status]   (default: up)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/facility-backend/internal/adapter/postgres"
	"github.com/heartmarshall/facility-backend/internal/app"
	"github.com/heartmarshall/facility-backend/internal/config"
)

func main() {
	flag.Parse()
	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, cfg.Telemetry.ServiceName+"-migrate")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	migrator, err := postgres.NewMigrator(cfg.Database.DSN, logger)
	if err != nil {
		logger.Error("open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer migrator.Close()

	switch command {
	case "up":
		err = migrator.Up(ctx)
	case "down":
		err = migrator.Down(ctx)
	case "status":
		err = migrator.Status(ctx)
	default:
		logger.Error("unknown command", slog.String("command", command))
		os.Exit(1)
	}

	if err != nil {
		logger.Error("migrate "+command, slog.String("error", err.Error()))
		migrator.Close()
		os.Exit(1)
	}
}
