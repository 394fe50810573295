// Package job runs one report cycle end to end.
package job

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"convreport/internal/config"
	"convreport/internal/csvparse"
	"convreport/internal/geo"
	"convreport/internal/model"
	"convreport/internal/report"
	"convreport/internal/selector"
)

// Sender delivers a formatted report.
type Sender interface {
	Send(ctx context.Context, message string) error
}

// Run executes one load → parse → select → format → deliver cycle.
// Runs that legitimately have nothing to send return nil: a missing or
// empty log file, a DAILY run without today's activity, or an empty
// selection all end the run successfully without an outbound request.
func Run(ctx context.Context, cfg *config.Config, mode model.Mode, sender Sender, log *slog.Logger) error {
	now := time.Now()

	raw, err := os.ReadFile(cfg.CSVPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info("no conversation log, nothing to report", "path", cfg.CSVPath)
			return nil
		}
		return fmt.Errorf("read conversation log: %w", err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		log.Info("conversation log is empty, nothing to report", "path", cfg.CSVPath)
		return nil
	}

	rows := csvparse.Parse(string(raw))
	convs, dropped := selector.Records(rows)
	if dropped > 0 {
		log.Debug("dropped malformed rows", "count", dropped)
	}

	selected := selector.Select(convs, mode, now)
	if len(selected) == 0 {
		log.Info("no conversations to report", "mode", mode, "parsed", len(convs))
		return nil
	}

	resolver, err := geo.Open(geo.DefaultDBPath)
	if err != nil {
		// Enrichment is optional; a broken database must not fail the run.
		log.Warn("open geoip database", "error", err)
	}
	defer resolver.Close()
	geo.Enrich(selected, resolver)

	message := report.Format(selected, mode, now.Format("2006-01-02"))

	if err := sender.Send(ctx, message); err != nil {
		return fmt.Errorf("send report: %w", err)
	}

	log.Info("report sent", "mode", mode, "conversations", len(selected))
	return nil
}
