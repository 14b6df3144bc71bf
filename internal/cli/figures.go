package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/texsift/internal/model"
	"github.com/ppiankov/texsift/internal/pipeline"
)

var (
	texOutput string
	baseDir   string
)

// figuresCmd represents the figures command
var figuresCmd = &cobra.Command{
	Use:   "figures <doc.tex>",
	Short: "Renumber figure images by position",
	Long: `Figures numbers every figure environment that contains images in
document order, restarting at S1 after \appendix, and gives each image the
matching fig_<n>_ or fig_s<n>_ filename prefix.

The rewritten document is written next to the original as <stem>_reset.tex
and the images are copied under their new names to the output directory.
Image paths are resolved against the document's directory unless
--base-dir is given.

Example:
  texsift figures paper.tex
  texsift figures paper.tex --output-dir renamed --tex-output paper_final.tex
  texsift figures paper.tex --dry-run --json plan.json`,
	Args: cobra.ExactArgs(1),
	RunE: runFigures,
}

func init() {
	rootCmd.AddCommand(figuresCmd)

	defaults := model.DefaultConfig().Figures
	figuresCmd.Flags().String("output-dir", defaults.OutputDir, "directory receiving the renamed images")
	figuresCmd.Flags().StringVar(&texOutput, "tex-output", "", "rewritten document path (default: <stem>_reset.tex)")
	figuresCmd.Flags().StringVar(&baseDir, "base-dir", "", "directory image paths are relative to (default: the document's directory)")
	addRunFlags(figuresCmd)

	_ = viper.BindPFlag("figures.output_dir", figuresCmd.Flags().Lookup("output-dir"))
}

func runFigures(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	report, runErr := p.RunFigures(cmd.Context(), pipeline.FiguresRequest{
		TexFile:   args[0],
		TexOutput: texOutput,
		OutputDir: cfg.Figures.OutputDir,
		BaseDir:   baseDir,
		DryRun:    dryRun,
	})
	if report == nil {
		return fmt.Errorf("figures failed: %w", runErr)
	}

	return finish(p.Renderer(), cmd.OutOrStdout(), report, func(w io.Writer) {
		p.Renderer().RenderFiguresSummary(w, report)
	}, runErr)
}
