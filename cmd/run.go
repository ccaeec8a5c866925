package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"

	"github.com/jonesrussell/mailharvest/internal/config"
	"github.com/jonesrussell/mailharvest/internal/emails"
	"github.com/jonesrussell/mailharvest/internal/fetcher"
	"github.com/jonesrussell/mailharvest/internal/harvest"
	"github.com/jonesrussell/mailharvest/internal/input"
	"github.com/jonesrussell/mailharvest/internal/links"
	"github.com/jonesrussell/mailharvest/internal/logger"
	"github.com/jonesrussell/mailharvest/internal/output"
)

// runHarvest wires the pipeline and executes a full run. Only input,
// output, and configuration errors surface here; everything per-domain is
// handled inside the harvester and reflected in the records.
func runHarvest(ctx context.Context) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logging.ToLogger(debug))
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	// Ctrl-C finishes the in-flight domain, then drains the remaining
	// domains as failed and still writes the output file
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	domains, err := input.NewLoader(cfg.Harvest.DomainColumn, log).Load(inputPath)
	if err != nil {
		return err
	}

	harvester := harvest.NewHarvester(
		cfg.Harvest,
		fetcher.New(cfg.Harvest, log),
		links.NewDiscoverer(cfg.Harvest.FollowForms, log),
		emails.NewExtractor(cfg.Harvest.IncludeRaw, log),
		log,
	)

	records := harvester.Run(ctx, domains)

	return output.NewWriter(log).Write(records, outputPath)
}
