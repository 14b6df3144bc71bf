package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/ppiankov/texsift/internal/cache"
	"github.com/ppiankov/texsift/internal/fsio"
	"github.com/ppiankov/texsift/internal/logger"
	"github.com/ppiankov/texsift/internal/model"
	"github.com/ppiankov/texsift/internal/pipeline"
)

// Flags shared by the pipeline commands
var (
	outJSON string
	outYAML string
	dryRun  bool
)

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&outJSON, "json", "", "write the JSON report to this path")
	cmd.Flags().StringVar(&outYAML, "yaml", "", "write the YAML report to this path")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute and report without writing or copying")
}

// newPipeline wires the filesystem and document cache for cfg
func newPipeline(cfg *model.Config) (*pipeline.Pipeline, error) {
	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	}
	fs, err := fsio.New(cfg.IO, c)
	if err != nil {
		return nil, err
	}
	return pipeline.NewPipeline(cfg, fs), nil
}

// finish prints the summary, writes the requested report files and returns
// the pipeline error, which takes precedence over a report write error
func finish(r *pipeline.Renderer, w io.Writer, report any, summary func(io.Writer), runErr error) error {
	summary(w)

	if err := r.RenderFiles(report, outJSON, outYAML); err != nil {
		if runErr != nil {
			logger.Warn("%v", err)
			return runErr
		}
		return err
	}
	if outJSON != "" {
		logger.Info("✓ Wrote JSON: %s", outJSON)
	}
	if outYAML != "" {
		logger.Info("✓ Wrote YAML: %s", outYAML)
	}
	return runErr
}
