package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"convreport/internal/config"
	"convreport/internal/job"
	"convreport/internal/mailer"
	"convreport/internal/model"
)

func main() {
	if err := godotenv.Overload(); err != nil && !os.IsNotExist(err) {
		slog.Warn("load .env", "error", err)
	}

	modeFlag := flag.String("mode", string(model.ModeDaily), "selection mode: DAILY or RESET")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	log := newLogger(cfg.LogLevel).With("run_id", uuid.NewString())

	mode, err := model.ParseMode(*modeFlag)
	if err != nil {
		log.Error("parse mode", "error", err)
		os.Exit(1)
	}

	sender := mailer.New(http.DefaultClient, cfg)

	if err := job.Run(context.Background(), cfg, mode, sender, log); err != nil {
		log.Error("run failed", "mode", mode, "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
