package site

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/league-site/internal/platform/logging"
)

const defaultBuildWorkers = 4

type BuilderConfig struct {
	OutputDir string
	Workers   int
	Logger    *logging.Logger
}

// Builder writes every page of the site into a directory.
type Builder struct {
	renderer  *Renderer
	outputDir string
	workers   int
	logger    *logging.Logger
}

type PageReport struct {
	Page       string
	Path       string
	Bytes      int
	PageErr    error
	DurationMs int64
}

type BuildReport struct {
	Pages []PageReport
}

// Degraded lists pages that were written with an error alert.
func (r BuildReport) Degraded() []PageReport {
	var out []PageReport
	for _, p := range r.Pages {
		if p.PageErr != nil {
			out = append(out, p)
		}
	}
	return out
}

func NewBuilder(renderer *Renderer, cfg BuilderConfig) (*Builder, error) {
	if renderer == nil {
		return nil, crerr.New("site renderer is required")
	}
	if cfg.OutputDir == "" {
		return nil, crerr.New("output dir is required")
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = defaultBuildWorkers
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &Builder{
		renderer:  renderer,
		outputDir: cfg.OutputDir,
		workers:   workers,
		logger:    logger,
	}, nil
}

// Build renders all pages concurrently. A page whose data failed is still
// written; only shell or filesystem failures abort the build.
func (b *Builder) Build(ctx context.Context) (BuildReport, error) {
	if err := os.MkdirAll(filepath.Join(b.outputDir, filepath.Dir(StylesheetPath)), 0o755); err != nil {
		return BuildReport{}, crerr.Wrapf(err, "create output dir %s", b.outputDir)
	}
	if err := b.writeStylesheet(); err != nil {
		return BuildReport{}, err
	}

	pagesToBuild := Pages()
	pool, err := ants.NewPool(b.workers)
	if err != nil {
		return BuildReport{}, crerr.Wrap(err, "create worker pool")
	}
	defer pool.Release()

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		reports  = make([]PageReport, 0, len(pagesToBuild))
		buildErr error
	)

	for _, page := range pagesToBuild {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			report, err := b.buildPage(ctx, page)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				buildErr = crerr.CombineErrors(buildErr, err)
				return
			}
			reports = append(reports, report)
		}); err != nil {
			wg.Done()
			mu.Lock()
			buildErr = crerr.CombineErrors(buildErr, crerr.Wrapf(err, "submit page %s", page.File))
			mu.Unlock()
		}
	}
	wg.Wait()

	sort.SliceStable(reports, func(i, j int) bool { return reports[i].Path < reports[j].Path })
	if buildErr != nil {
		return BuildReport{Pages: reports}, buildErr
	}
	return BuildReport{Pages: reports}, nil
}

func (b *Builder) buildPage(ctx context.Context, page Page) (PageReport, error) {
	started := time.Now()
	result, err := b.renderer.Render(ctx, page)
	if err != nil {
		return PageReport{}, err
	}

	path := filepath.Join(b.outputDir, page.File)
	if err := os.WriteFile(path, result.HTML, 0o644); err != nil {
		return PageReport{}, crerr.Wrapf(err, "write page %s", path)
	}

	report := PageReport{
		Page:       page.Name,
		Path:       path,
		Bytes:      len(result.HTML),
		PageErr:    result.PageErr,
		DurationMs: time.Since(started).Milliseconds(),
	}
	if result.PageErr != nil {
		b.logger.WarnContext(ctx, "page written with error alert", "page", page.Name, "path", path, "error", result.PageErr)
	} else {
		b.logger.InfoContext(ctx, "page written", "page", page.Name, "path", path, "bytes", report.Bytes)
	}
	return report, nil
}

func (b *Builder) writeStylesheet() error {
	raw, err := Stylesheet()
	if err != nil {
		return err
	}
	path := filepath.Join(b.outputDir, StylesheetPath)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return crerr.Wrapf(err, "write stylesheet %s", path)
	}
	return nil
}
