package extract

import (
	"strings"

	"github.com/ppiankov/texsift/internal/model"
)

// AppendixOffset returns the offset of the first \appendix marker
func AppendixOffset(text string) (int, bool) {
	m, ok := appendixTable.FindFirst(text)
	if !ok {
		return -1, false
	}
	return m.Offset(), true
}

// Figures returns the figure environments of a document in document order.
// Only \includegraphics payloads that look like images are kept, and
// environments without images are dropped. Ordinals are left at zero.
func Figures(text string, extensions, keywords []string) []model.FigureEnvironment {
	var positioned []Positioned[int]
	envs := make(map[int]model.FigureEnvironment)

	for _, env := range figureTable.FindAll(text) {
		body := text[env.PayloadStart:env.PayloadEnd]

		var images []Positioned[int]
		infos := make(map[int]model.ImageInfo)
		for _, img := range figureImageTable.FindAll(body) {
			path := strings.TrimSpace(img.Payload)
			if !LooksLikeImage(path, extensions, keywords) {
				continue
			}
			start := env.PayloadStart + img.Start
			infos[start] = model.ImageInfo{
				FullCommand: img.Text,
				Path:        path,
				Prefix:      img.Text[:img.PayloadStart-img.Start],
				Suffix:      img.Text[img.PayloadEnd-img.Start:],
				Position:    start,
			}
			images = append(images, Positioned[int]{Offset: start, Value: start})
		}
		if len(images) == 0 {
			continue
		}

		fig := model.FigureEnvironment{Position: env.Offset()}
		for _, p := range UniqueOrdered(images) {
			fig.Images = append(fig.Images, infos[p])
		}
		envs[env.Offset()] = fig
		positioned = append(positioned, Positioned[int]{Offset: env.Offset(), Value: env.Offset()})
	}

	figs := make([]model.FigureEnvironment, 0, len(envs))
	for _, p := range UniqueOrdered(positioned) {
		figs = append(figs, envs[p])
	}
	return figs
}
