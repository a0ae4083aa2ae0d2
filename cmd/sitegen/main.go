// Command sitegen renders every page into SITE_OUTPUT_DIR.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/league-site/internal/app"
	"github.com/riskibarqy/league-site/internal/config"
	"github.com/riskibarqy/league-site/internal/platform/logging"
)

func main() {
	strict := flag.Bool("strict", false, "exit non-zero when a page was written with an error alert")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With("service", cfg.ServiceName, "command", "sitegen")
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	builder, err := app.NewBuilder(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := builder.Build(ctx)
	if err != nil {
		logger.Error("site build failed", "output_dir", cfg.SiteOutputDir, "error", err)
		os.Exit(1)
	}

	degraded := report.Degraded()
	for _, page := range degraded {
		logger.Warn("page written with error alert", "page", page.Page, "path", page.Path, "error", page.PageErr)
	}
	logger.Info("site built",
		"output_dir", cfg.SiteOutputDir,
		"pages", len(report.Pages),
		"degraded", len(degraded),
	)

	if *strict && len(degraded) > 0 {
		os.Exit(2)
	}
}
