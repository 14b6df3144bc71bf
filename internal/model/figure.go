package model

import "strconv"

// FigureEnvironment is a figure/figure* block that contains at least one image
type FigureEnvironment struct {
	Position int         `json:"position" yaml:"position"`
	Ordinal  int         `json:"ordinal" yaml:"ordinal"` // 1-based within its partition, 0 until planned
	Appendix bool        `json:"appendix" yaml:"appendix"`
	Images   []ImageInfo `json:"images" yaml:"images"`
}

// Label is the human-readable figure label, e.g. "Fig 2" or "Fig S1"
func (f FigureEnvironment) Label() string {
	if f.Appendix {
		return "Fig S" + strconv.Itoa(f.Ordinal)
	}
	return "Fig " + strconv.Itoa(f.Ordinal)
}

// FilePrefix is the expected filename prefix, e.g. "fig_2_" or "fig_s1_"
func (f FigureEnvironment) FilePrefix() string {
	if f.Appendix {
		return "fig_s" + strconv.Itoa(f.Ordinal) + "_"
	}
	return "fig_" + strconv.Itoa(f.Ordinal) + "_"
}

// RenameEntry is one row of the figure rename plan
type RenameEntry struct {
	FigureLabel  string `json:"figure_label" yaml:"figure_label"`
	OriginalPath string `json:"original_path" yaml:"original_path"`
	NewPath      string `json:"new_path" yaml:"new_path"`
	NeedsRename  bool   `json:"needs_rename" yaml:"needs_rename"`
	Appendix     bool   `json:"appendix" yaml:"appendix"`
	Position     int    `json:"position" yaml:"position"`
}

// FigureSummary counts what the figure planner found
type FigureSummary struct {
	Environments    int `json:"environments" yaml:"environments"`
	MainFigures     int `json:"main_figures" yaml:"main_figures"`
	AppendixFigures int `json:"appendix_figures" yaml:"appendix_figures"`
	Images          int `json:"images" yaml:"images"`
	MainImages      int `json:"main_images" yaml:"main_images"`
	AppendixImages  int `json:"appendix_images" yaml:"appendix_images"`
	ToRename        int `json:"to_rename" yaml:"to_rename"`
	AlreadyCorrect  int `json:"already_correct" yaml:"already_correct"`
}
