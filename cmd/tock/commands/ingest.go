package commands

import (
	"github.com/dyluth/tock/internal/config"
	"github.com/dyluth/tock/internal/logging"
	"github.com/dyluth/tock/internal/printer"
	"github.com/dyluth/tock/pkg/timesheet"
	"go.uber.org/zap"
)

// resolveConfig loads tock.yml and applies command-line overrides
func (a *app) resolveConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(a.flags.configPath)
	if err != nil {
		return nil, printer.Error("invalid configuration", err.Error(), []string{
			"Fix tock.yml",
			"Point --config at a different file",
		})
	}

	if a.flags.lenient && a.flags.collect {
		return nil, printer.Error("conflicting flags", "--lenient and --collect cannot be combined", nil)
	}

	if a.flags.permissiveIDs {
		cfg.Ingest.IDPolicy = "permissive"
	}
	if a.flags.lenient {
		cfg.Ingest.BatchPolicy = "lenient"
	}
	if a.flags.collect {
		cfg.Ingest.BatchPolicy = "collect"
	}
	if a.flags.keyByTitle {
		cfg.Ingest.Key = "title"
	}
	if a.flags.overnight {
		cfg.Ingest.RangePolicy = "overnight"
	}
	if a.flags.optionalTags {
		cfg.Ingest.OptionalTags = true
	}
	if a.flags.logLevel != "" {
		cfg.LogLevel = a.flags.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, printer.Error("invalid configuration", err.Error(), nil)
	}

	return cfg, nil
}

// ingest reads path and builds its catalog. Failures are printed and
// returned as short errors for Cobra.
func (a *app) ingest(path string) (*timesheet.Catalog, *config.Config, error) {
	cfg, err := a.resolveConfig()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, printer.Error("invalid log level", err.Error(), nil)
	}
	defer logger.Sync() //nolint:errcheck

	data, err := a.source.Read(path)
	if err != nil {
		return nil, nil, printer.IngestError(path, err)
	}
	logger.Debug("Read work log", zap.String("path", path), zap.Int("bytes", len(data)))

	cat, err := timesheet.NewBuilder(cfg.BuilderOptions(logger)...).Build(data)
	if err != nil {
		return nil, nil, printer.IngestError(path, err)
	}

	for _, skipped := range cat.Skipped() {
		printer.Warning("Skipped %v\n", skipped)
	}

	return cat, cfg, nil
}
