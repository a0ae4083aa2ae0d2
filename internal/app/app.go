package app

import (
	"net/http"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-site/external/sitedata"
	"github.com/riskibarqy/league-site/internal/config"
	"github.com/riskibarqy/league-site/internal/interfaces/httpapi"
	"github.com/riskibarqy/league-site/internal/platform/logging"
	"github.com/riskibarqy/league-site/internal/render"
	"github.com/riskibarqy/league-site/internal/site"
	"github.com/riskibarqy/league-site/internal/usecase"
)

// NewSiteRenderer wires the data client, renderer and page service behind
// the site pages.
func NewSiteRenderer(cfg config.Config, logger *logging.Logger) (*site.Renderer, error) {
	client, err := sitedata.NewClient(sitedata.ClientConfig{
		BaseURL: cfg.DataBaseURL,
		Dir:     cfg.DataDir,
		Timeout: cfg.DataFetchTimeout,
		Logger:  logger.Named("sitedata"),
	})
	if err != nil {
		return nil, crerr.Wrap(err, "build data client")
	}

	pageSvc := usecase.NewPageService(
		client,
		render.NewRenderer(cfg.SiteTimezone),
		cfg.StandaloneNoticeMessage,
		logger.Named("pages"),
	)

	return site.NewRenderer(pageSvc, cfg.StandaloneNoticeEnabled), nil
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, crerr.New("http server addr cannot be empty")
	}

	siteRenderer, err := NewSiteRenderer(cfg, logger)
	if err != nil {
		return nil, err
	}

	handler := httpapi.NewHandler(siteRenderer, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

// NewBuilder returns a static site builder over the same pages the server
// renders.
func NewBuilder(cfg config.Config, logger *logging.Logger) (*site.Builder, error) {
	siteRenderer, err := NewSiteRenderer(cfg, logger)
	if err != nil {
		return nil, err
	}

	return site.NewBuilder(siteRenderer, site.BuilderConfig{
		OutputDir: cfg.SiteOutputDir,
		Workers:   cfg.SiteBuildWorkers,
		Logger:    logger.Named("builder"),
	})
}
