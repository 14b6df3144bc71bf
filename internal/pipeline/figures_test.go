package pipeline

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/texsift/internal/model"
)

const testPaper = `\section{Results}
\begin{figure}
\includegraphics[width=0.5\textwidth]{figures/plot.png}
\caption{Plot}
\end{figure}
\begin{figure}
\includegraphics{figures/fig_1_old.pdf}
\end{figure}
\begin{figure}
\begin{tabular}{c} no image here \end{tabular}
\end{figure}
\appendix
\begin{figure*}
\includegraphics[height=2cm][keepaspectratio]{figures/extra}
\end{figure*}
`

func figuresFixture(t *testing.T) (string, FiguresRequest) {
	t.Helper()
	dir := t.TempDir()
	tex := writeFile(t, filepath.Join(dir, "paper.tex"), testPaper)
	writeFile(t, filepath.Join(dir, "figures", "plot.png"), "plot")
	writeFile(t, filepath.Join(dir, "figures", "fig_1_old.pdf"), "old")
	writeFile(t, filepath.Join(dir, "figures", "extra.png"), "extra")
	return dir, FiguresRequest{
		TexFile:   tex,
		OutputDir: filepath.Join(dir, "reset"),
	}
}

func TestRunFigures(t *testing.T) {
	dir, req := figuresFixture(t)
	p := newTestPipeline(t, nil)

	report, err := p.RunFigures(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "paper_reset.tex"), report.TexOutput)
	assert.Equal(t, strings.Index(testPaper, `\appendix`), report.AppendixOffset)

	require.Len(t, report.Plan, 3)
	assert.Equal(t, "figures/fig_1_plot.png", report.Plan[0].NewPath)
	assert.Equal(t, "Fig 1", report.Plan[0].FigureLabel)
	assert.Equal(t, "figures/fig_2_old.pdf", report.Plan[1].NewPath)
	assert.Equal(t, "figures/fig_s1_extra", report.Plan[2].NewPath)
	assert.Equal(t, "Fig S1", report.Plan[2].FigureLabel)

	s := report.Summary
	assert.Equal(t, 3, s.Environments)
	assert.Equal(t, 2, s.MainFigures)
	assert.Equal(t, 1, s.AppendixFigures)
	assert.Equal(t, 3, s.ToRename)
	assert.Equal(t, 0, s.AlreadyCorrect)

	assert.Equal(t, 3, report.Replacements)
	assert.True(t, report.Rewritten)
	out := readFile(t, report.TexOutput)
	assert.Contains(t, out, `\includegraphics[width=0.5\textwidth]{figures/fig_1_plot.png}`)
	assert.Contains(t, out, `\includegraphics{figures/fig_2_old.pdf}`)
	assert.Contains(t, out, `\includegraphics[height=2cm][keepaspectratio]{figures/fig_s1_extra}`)
	assert.Equal(t, testPaper, readFile(t, req.TexFile), "input must be untouched")

	require.NotNil(t, report.Copy)
	assert.Len(t, report.Copy.Copied, 3)
	assert.Equal(t, "plot", readFile(t, filepath.Join(dir, "reset", "fig_1_plot.png")))
	assert.Equal(t, "old", readFile(t, filepath.Join(dir, "reset", "fig_2_old.pdf")))
	assert.Equal(t, "extra", readFile(t, filepath.Join(dir, "reset", "fig_s1_extra.png")))
}

func TestRunFigures_Idempotent(t *testing.T) {
	dir, req := figuresFixture(t)
	p := newTestPipeline(t, nil)

	first, err := p.RunFigures(context.Background(), req)
	require.NoError(t, err)
	require.True(t, first.Rewritten)

	second, err := p.RunFigures(context.Background(), FiguresRequest{
		TexFile:   first.TexOutput,
		TexOutput: filepath.Join(dir, "again.tex"),
		OutputDir: filepath.Join(dir, "again"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Summary.ToRename)
	assert.Equal(t, 3, second.Summary.AlreadyCorrect)
	assert.Equal(t, 0, second.Replacements)
	assert.False(t, second.Rewritten)
	assert.NoFileExists(t, filepath.Join(dir, "again.tex"))
}

func TestRunFigures_DuplicateCommands(t *testing.T) {
	dir := t.TempDir()
	tex := writeFile(t, filepath.Join(dir, "dup.tex"), `\begin{figure}
\includegraphics{figures/a.png}
\end{figure}
\begin{figure}
\includegraphics{figures/a.png}
\end{figure}
`)
	p := newTestPipeline(t, nil)

	report, err := p.RunFigures(context.Background(), FiguresRequest{
		TexFile:   tex,
		OutputDir: filepath.Join(dir, "reset"),
	})
	require.NoError(t, err)

	out := readFile(t, report.TexOutput)
	assert.Contains(t, out, "{figures/fig_1_a.png}")
	assert.Contains(t, out, "{figures/fig_2_a.png}")
	require.NotNil(t, report.Copy)
	assert.Equal(t, []string{"figures/a.png", "figures/a.png"}, report.Copy.Missing)
}

func TestRunFigures_DryRun(t *testing.T) {
	dir, req := figuresFixture(t)
	req.DryRun = true
	p := newTestPipeline(t, nil)

	report, err := p.RunFigures(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Replacements)
	assert.False(t, report.Rewritten)
	assert.Nil(t, report.Copy)
	assert.NoFileExists(t, filepath.Join(dir, "paper_reset.tex"))
	assert.NoDirExists(t, filepath.Join(dir, "reset"))
}

func TestRunFigures_RefusesToOverwriteInput(t *testing.T) {
	_, req := figuresFixture(t)
	req.TexOutput = req.TexFile
	p := newTestPipeline(t, nil)

	report, err := p.RunFigures(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrWrite)
	assert.False(t, report.Rewritten)
	assert.Equal(t, testPaper, readFile(t, req.TexFile))
	// copying still happens
	require.NotNil(t, report.Copy)
	assert.Len(t, report.Copy.Copied, 3)
}

func TestRunFigures_NoAppendix(t *testing.T) {
	dir := t.TempDir()
	tex := writeFile(t, filepath.Join(dir, "plain.tex"), "\\begin{figure}\n\\includegraphics{img/image1.jpg}\n\\end{figure}\n")
	p := newTestPipeline(t, nil)

	report, err := p.RunFigures(context.Background(), FiguresRequest{TexFile: tex, DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, -1, report.AppendixOffset)
	require.Len(t, report.Plan, 1)
	assert.Equal(t, "img/fig_1_image1.jpg", report.Plan[0].NewPath)
}
