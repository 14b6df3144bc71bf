package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/texsift/internal/model"
)

var keywords = []string{"figure", "fig", "image"}

func TestFigures_DocumentOrderAndImages(t *testing.T) {
	text := `\begin{figure}
\includegraphics[width=3in]{figs/first.png}
\includegraphics[a][b]{figs/second.pdf}
\caption{One}
\end{figure}
Some text.
\begin{figure*}
\includegraphics{figures/wide}
\end{figure*}`

	figs := Figures(text, model.DefaultImageExtensions, keywords)
	require.Len(t, figs, 2)

	first := figs[0]
	assert.Equal(t, 0, first.Position)
	require.Len(t, first.Images, 2)
	assert.Equal(t, "figs/first.png", first.Images[0].Path)
	assert.Equal(t, `\includegraphics[width=3in]{`, first.Images[0].Prefix)
	assert.Equal(t, "}", first.Images[0].Suffix)
	assert.Equal(t, "figs/second.pdf", first.Images[1].Path)
	assert.Less(t, first.Images[0].Position, first.Images[1].Position)

	for _, fig := range figs {
		for _, img := range fig.Images {
			assert.Equal(t, img.FullCommand, text[img.Position:img.Position+len(img.FullCommand)])
		}
	}

	assert.Equal(t, "figures/wide", figs[1].Images[0].Path)
	assert.Zero(t, figs[1].Ordinal)
}

func TestFigures_SkipsNonImagesAndEmptyEnvironments(t *testing.T) {
	text := `\begin{figure}\includegraphics{tables/t1}\end{figure}
\begin{figure}\caption{nothing}\end{figure}
\begin{figure}\includegraphics{plot.eps}\end{figure}`

	figs := Figures(text, model.DefaultImageExtensions, keywords)
	require.Len(t, figs, 1)
	assert.Equal(t, "plot.eps", figs[0].Images[0].Path)
}

func TestFigures_IgnoresImagesOutsideFigures(t *testing.T) {
	text := `\includegraphics{logo.png}
\begin{figure}\includegraphics{a.png}\end{figure}`

	figs := Figures(text, model.DefaultImageExtensions, keywords)
	require.Len(t, figs, 1)
	require.Len(t, figs[0].Images, 1)
	assert.Equal(t, "a.png", figs[0].Images[0].Path)
}

func TestFigures_TrimsPayload(t *testing.T) {
	text := `\begin{figure}\includegraphics{ a.png }\end{figure}`
	figs := Figures(text, model.DefaultImageExtensions, keywords)
	require.Len(t, figs, 1)
	assert.Equal(t, "a.png", figs[0].Images[0].Path)
	assert.Equal(t, `\includegraphics{ a.png }`, figs[0].Images[0].FullCommand)
}

func TestAppendixOffset(t *testing.T) {
	off, ok := AppendixOffset("body \\appendix tail")
	assert.True(t, ok)
	assert.Equal(t, 5, off)

	off, ok = AppendixOffset("body \\appendixfoo tail")
	assert.False(t, ok)
	assert.Equal(t, -1, off)
}
