package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/texsift/internal/model"
	"github.com/ppiankov/texsift/internal/pipeline"
)

// imagesCmd represents the images command
var imagesCmd = &cobra.Command{
	Use:   "images <old.tex> <new.tex>",
	Short: "Diff the images of two revisions and copy the new ones",
	Long: `Images compares the \includegraphics references of two revisions of a
document and copies every image that only the new revision uses from the
source directory to the destination directory.

References without an extension are matched against each candidate
extension. Files already in the destination are never overwritten.

Example:
  texsift images paper_v1.tex paper_v2.tex
  texsift images v1.tex v2.tex --source-dir all-figures --dest-dir new-figures
  texsift images v1.tex v2.tex --ext png,pdf --json images.json`,
	Args: cobra.ExactArgs(2),
	RunE: runImages,
}

func init() {
	rootCmd.AddCommand(imagesCmd)

	defaults := model.DefaultConfig().Images
	imagesCmd.Flags().String("source-dir", defaults.SourceDir, "directory holding all images")
	imagesCmd.Flags().String("dest-dir", defaults.DestDir, "directory receiving the new images")
	imagesCmd.Flags().StringSlice("ext", defaults.Extensions, "candidate extensions for references without one")
	addRunFlags(imagesCmd)

	_ = viper.BindPFlag("images.source_dir", imagesCmd.Flags().Lookup("source-dir"))
	_ = viper.BindPFlag("images.dest_dir", imagesCmd.Flags().Lookup("dest-dir"))
	_ = viper.BindPFlag("images.extensions", imagesCmd.Flags().Lookup("ext"))
}

func runImages(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	report, runErr := p.RunImages(cmd.Context(), pipeline.ImagesRequest{
		OldFile: args[0],
		NewFile: args[1],
		DryRun:  dryRun,
	})
	if report == nil {
		return fmt.Errorf("images failed: %w", runErr)
	}

	return finish(p.Renderer(), cmd.OutOrStdout(), report, func(w io.Writer) {
		p.Renderer().RenderImagesSummary(w, report)
	}, runErr)
}
