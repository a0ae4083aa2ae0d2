// Package observability turns on tracing export and profiling for cmd/api.
package observability

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-site/internal/config"
	"github.com/riskibarqy/league-site/internal/platform/logging"
)

// Setup starts whatever cfg enables and returns a single shutdown that
// stops profiling first, then flushes traces.
func Setup(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("observability")

	stopProfiling, err := InitPyroscope(cfg, logger)
	if err != nil {
		return nil, err
	}
	shutdownTracing := InitUptrace(cfg, logger)

	return func(ctx context.Context) error {
		return crerr.CombineErrors(
			crerr.Wrap(stopProfiling(), "stop pyroscope"),
			crerr.Wrap(shutdownTracing(ctx), "shutdown uptrace"),
		)
	}, nil
}
