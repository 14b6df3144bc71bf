package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/texsift/internal/model"
	"github.com/ppiankov/texsift/internal/pipeline"
)

// bibCmd represents the bib command
var bibCmd = &cobra.Command{
	Use:   "bib <doc.tex> <refs.bib>",
	Short: "Write a bibliography ordered by first citation",
	Long: `Bib collects the keys of every \cite-family command in the document in
order of first appearance, reconciles them with the entries of the .bib
file, and writes the cited entries verbatim in citation order.

Missing keys (cited but not defined) and unused entries (defined but not
cited) are reported. Keys defined twice keep their first definition.

Example:
  texsift bib paper.tex refs.bib
  texsift bib paper.tex refs.bib -o refs_sorted.bib --preview 10
  texsift bib paper.tex refs.bib --dry-run --yaml citations.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: runBib,
}

func init() {
	rootCmd.AddCommand(bibCmd)

	defaults := model.DefaultConfig().Bibliography
	bibCmd.Flags().StringP("output", "o", defaults.Output, "ordered bibliography output path")
	bibCmd.Flags().Int("preview", defaults.PreviewLimit, "number of keys in the citation order preview (0 for all)")
	addRunFlags(bibCmd)

	_ = viper.BindPFlag("bibliography.output", bibCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("bibliography.preview_limit", bibCmd.Flags().Lookup("preview"))
}

func runBib(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	report, runErr := p.RunBibliography(cmd.Context(), pipeline.BibliographyRequest{
		TexFile: args[0],
		BibFile: args[1],
		DryRun:  dryRun,
	})
	if report == nil {
		return fmt.Errorf("bib failed: %w", runErr)
	}

	return finish(p.Renderer(), cmd.OutOrStdout(), report, func(w io.Writer) {
		p.Renderer().RenderBibliographySummary(w, report)
	}, runErr)
}
