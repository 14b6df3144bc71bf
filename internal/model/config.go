package model

import "time"

// Config holds every tunable of a texsift run.
// Field tags serve both the YAML config file and viper's unmarshalling.
type Config struct {
	Images       ImagesConfig       `yaml:"images" mapstructure:"images"`
	Bibliography BibliographyConfig `yaml:"bibliography" mapstructure:"bibliography"`
	Figures      FiguresConfig      `yaml:"figures" mapstructure:"figures"`
	IO           IOConfig           `yaml:"io" mapstructure:"io"`
	Cache        CacheConfig        `yaml:"cache" mapstructure:"cache"`
	Output       OutputConfig       `yaml:"output" mapstructure:"output"`
}

// ImagesConfig configures the image diff/copy pipeline
type ImagesConfig struct {
	Extensions []string `yaml:"extensions" mapstructure:"extensions"` // Candidate extensions, tried in order for extensionless references
	SourceDir  string   `yaml:"source_dir" mapstructure:"source_dir"` // Pool of all images
	DestDir    string   `yaml:"dest_dir" mapstructure:"dest_dir"`     // Where newly added images are copied
}

// BibliographyConfig configures the citation/bibliography pipeline
type BibliographyConfig struct {
	Output       string `yaml:"output" mapstructure:"output"`               // Ordered .bib output path
	PreviewLimit int    `yaml:"preview_limit" mapstructure:"preview_limit"` // Keys shown in the citation order preview
}

// FiguresConfig configures the figure renumbering pipeline
type FiguresConfig struct {
	OutputDir     string   `yaml:"output_dir" mapstructure:"output_dir"`         // Where renamed images are copied
	TexSuffix     string   `yaml:"tex_suffix" mapstructure:"tex_suffix"`         // Appended to the document stem for the rewritten .tex
	ImageKeywords []string `yaml:"image_keywords" mapstructure:"image_keywords"` // Path fragments that mark an extensionless path as an image
}

// IOConfig configures the filesystem collaborator
type IOConfig struct {
	FallbackEncoding string `yaml:"fallback_encoding" mapstructure:"fallback_encoding"` // iso-8859-1 or windows-1252
	AtomicWrites     bool   `yaml:"atomic_writes" mapstructure:"atomic_writes"`
}

// CacheConfig configures the decoded document cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// OutputConfig configures console output
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultImageExtensions is the candidate list used when markup omits an extension
var DefaultImageExtensions = []string{".pdf", ".png", ".jpg", ".jpeg", ".eps", ".svg"}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Images: ImagesConfig{
			Extensions: append([]string(nil), DefaultImageExtensions...),
			SourceDir:  "figures-all",
			DestDir:    "figures-new",
		},
		Bibliography: BibliographyConfig{
			Output:       "refs_ordered.bib",
			PreviewLimit: 25,
		},
		Figures: FiguresConfig{
			OutputDir:     "figures-reset",
			TexSuffix:     "_reset",
			ImageKeywords: []string{"figure", "fig", "image"},
		},
		IO: IOConfig{
			FallbackEncoding: "iso-8859-1",
			AtomicWrites:     true,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     10 * time.Minute,
		},
	}
}
