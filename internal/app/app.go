// Package app implements the application layer for depcache.
package app

import (
	"context"
	"runtime"

	"go.trai.ch/depcache/internal/adapters/cache"
	"go.trai.ch/depcache/internal/adapters/metadata"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/depcache/internal/engine/depcache"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	builder      *depcache.ChecksumBuilder
	logger       ports.Logger
	openStore    metadata.Factory
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	builder *depcache.ChecksumBuilder,
	log ports.Logger,
	openStore metadata.Factory,
) *App {
	return &App{
		configLoader: loader,
		builder:      builder,
		logger:       log,
		openStore:    openStore,
	}
}

// SetVerbose switches debug logging on when the logger supports it.
func (a *App) SetVerbose(verbose bool) {
	if v, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		v.SetVerbose(verbose)
	}
}

// Report is the outcome of one Run.
type Report struct {
	// Enabled is false when the configuration switches the dependency cache off.
	Enabled bool
	// Evaluated is false when the cache is disabled and no invalidation run took place.
	Evaluated bool
	Verdict   domain.Verdict
	Roots     []domain.CacheRoot
	// Checksums holds the recorded checksum per caches location.
	Checksums map[string]string
	Warnings  []string
}

// Run goes through the dependency cache lifecycle of every configured step and then
// decides whether the restored caches are still valid.
//
// Caching problems never fail the run; they end up in Report.Warnings. Only an
// unusable configuration is returned as an error.
func (a *App) Run(ctx context.Context, configPath string) (*Report, error) {
	// 1. Load the configuration
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Build-scoped collaborators
	host := cache.New(a.logger)
	computer := depcache.NewComputer(a.builder, cfg.Parameters.ThreadPoolSize())
	defer computer.Shutdown()
	invalidator := depcache.NewInvalidator(a.logger)
	manager := depcache.NewManager(a.logger, host, computer, invalidator, cfg.Parameters)

	if !manager.Enabled() {
		a.logger.Info("Gradle dependency cache is disabled")
		return &Report{}, nil
	}

	// 3. Step start: schedule checksums and restore caches
	stepCtxs := make([]*depcache.StepContext, len(cfg.Steps))
	for i, step := range cfg.Steps {
		stepCtxs[i] = depcache.NewStepContext(cfg.Parameters)
		manager.PrepareChecksumAsync(step.WorkingDir, stepCtxs[i])
		manager.RegisterAndRestoreCache(step.ID, step.GradleUserHome, stepCtxs[i])
	}

	// 4. Step end: record checksums in step order
	for _, stepCtx := range stepCtxs {
		manager.UpdateInvalidatorWithChecksum(ctx, stepCtx)
	}

	report := &Report{
		Enabled:   true,
		Roots:     host.NewCacheRoots(),
		Checksums: invalidator.Checksums(),
	}

	// 5. Post-build invalidation
	store := a.openStore(cfg.MetadataPath, host.LogWarning)
	report.Verdict = invalidator.Evaluate(store, report.Roots)
	report.Evaluated = true
	a.logger.Info("Gradle dependency cache " + report.Verdict.String())

	report.Warnings = host.Warnings()
	return report, nil
}

// Fingerprint is the checksum of one project directory.
type Fingerprint struct {
	Dir      string
	Checksum string
	Files    map[string]string
}

// Fingerprint computes the checksum of each directory concurrently.
// Results are returned in the order of dirs.
func (a *App) Fingerprint(ctx context.Context, dirs []string, depthLimit int) ([]Fingerprint, error) {
	results := make([]Fingerprint, len(dirs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, dir := range dirs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			files, err := a.builder.Files(dir, depthLimit, a.logger.Warn)
			if err != nil {
				return err
			}
			results[i] = Fingerprint{
				Dir:      dir,
				Checksum: depcache.Aggregate(files),
				Files:    files,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
