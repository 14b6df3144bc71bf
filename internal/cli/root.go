package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/texsift/internal/logger"
	"github.com/ppiankov/texsift/internal/model"
)

const version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "texsift",
	Short: "texsift - citation and figure bookkeeping for LaTeX manuscripts",
	Long: `texsift extracts citations and figure images from LaTeX documents and
keeps the files around them in step with the text.

  images   diff the images of two revisions and collect the new ones
  bib      write a bibliography ordered by first citation
  figures  renumber figure images by position and copy them under new names

Inputs are never modified; results go to new files.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool("output.verbose"))
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number of texsift.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "texsift v%s\n", version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.texsift/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	setDefaults(model.DefaultConfig())

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			logger.Warn("Error finding home directory: %v", err)
		} else {
			// Search for config in home directory
			viper.AddConfigPath(filepath.Join(home, ".texsift"))
			viper.SetConfigType("yaml")
			viper.SetConfigName("config")
		}
	}

	// Read in environment variables that match TEXSIFT_*, e.g.
	// TEXSIFT_IMAGES_SOURCE_DIR for images.source_dir
	viper.SetEnvPrefix("TEXSIFT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("Using config file: %s", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		logger.Warn("Cannot read config file %s: %v", cfgFile, err)
	}
}

// setDefaults registers every config key so env variables and Unmarshal see it
func setDefaults(cfg *model.Config) {
	viper.SetDefault("images.extensions", cfg.Images.Extensions)
	viper.SetDefault("images.source_dir", cfg.Images.SourceDir)
	viper.SetDefault("images.dest_dir", cfg.Images.DestDir)
	viper.SetDefault("bibliography.output", cfg.Bibliography.Output)
	viper.SetDefault("bibliography.preview_limit", cfg.Bibliography.PreviewLimit)
	viper.SetDefault("figures.output_dir", cfg.Figures.OutputDir)
	viper.SetDefault("figures.tex_suffix", cfg.Figures.TexSuffix)
	viper.SetDefault("figures.image_keywords", cfg.Figures.ImageKeywords)
	viper.SetDefault("io.fallback_encoding", cfg.IO.FallbackEncoding)
	viper.SetDefault("io.atomic_writes", cfg.IO.AtomicWrites)
	viper.SetDefault("cache.enabled", cfg.Cache.Enabled)
	viper.SetDefault("cache.ttl", cfg.Cache.TTL)
	viper.SetDefault("output.verbose", cfg.Output.Verbose)
}

// loadConfig resolves the effective configuration:
// flags > TEXSIFT_* env > config file > defaults
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.SetVerbose(cfg.Output.Verbose)
	return cfg, nil
}
