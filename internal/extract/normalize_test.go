package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ppiankov/texsift/internal/model"
)

func TestSplitKeys(t *testing.T) {
	tests := []struct {
		payload string
		want    []string
	}{
		{"a", []string{"a"}},
		{" a , b,c ", []string{"a", "b", "c"}},
		{"a,,  ,b", []string{"a", "b"}},
		{"a,a", []string{"a", "a"}},
		{"  ", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitKeys(tt.payload), "payload %q", tt.payload)
	}
}

func TestSplitPath(t *testing.T) {
	dir, base := SplitPath("figs/sub/plot.png")
	assert.Equal(t, "figs/sub/", dir)
	assert.Equal(t, "plot.png", base)

	dir, base = SplitPath("plot.png")
	assert.Equal(t, "", dir)
	assert.Equal(t, "plot.png", base)
}

func TestSplitExt(t *testing.T) {
	tests := []struct{ in, stem, ext string }{
		{"plot.png", "plot", ".png"},
		{"plot", "plot", ""},
		{"plot.v2.pdf", "plot.v2", ".pdf"},
		{".hidden", ".hidden", ""},
		{"..x.eps", "..x", ".eps"},
	}
	for _, tt := range tests {
		stem, ext := SplitExt(tt.in)
		assert.Equal(t, tt.stem, stem, tt.in)
		assert.Equal(t, tt.ext, ext, tt.in)
	}
}

func TestImageReferences_FanOut(t *testing.T) {
	refs := ImageReferences("figs/plot", []string{".pdf", ".png"})
	assert.Equal(t, []model.ImageReference{
		{Filename: "plot.pdf", Inferred: true},
		{Filename: "plot.png", Inferred: true},
	}, refs)
}

func TestImageReferences_ExplicitExtension(t *testing.T) {
	refs := ImageReferences(" figs/plot.png ", []string{".pdf", ".png"})
	assert.Equal(t, []model.ImageReference{{Filename: "plot.png"}}, refs)
}

func TestImageReferences_EmptyBasename(t *testing.T) {
	assert.Empty(t, ImageReferences("figs/", model.DefaultImageExtensions))
}

func TestNormalizeExtensions(t *testing.T) {
	got := NormalizeExtensions([]string{"PDF", ".png", " ", ".pdf", "jpg"})
	assert.Equal(t, []string{".pdf", ".png", ".jpg"}, got)
}

func TestLooksLikeImage(t *testing.T) {
	exts := model.DefaultImageExtensions
	keywords := []string{"figure", "fig", "image"}

	assert.True(t, LooksLikeImage("plots/a.PNG", exts, keywords))
	assert.True(t, LooksLikeImage("Figures/a", exts, keywords))
	assert.True(t, LooksLikeImage("my_image_01", exts, keywords))
	assert.False(t, LooksLikeImage("tables/results", exts, keywords))
	assert.False(t, LooksLikeImage("tables/results", []string{""}, nil))
}
