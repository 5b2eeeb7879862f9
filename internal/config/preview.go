package config

import "strings"

type PreviewLayout string

const (
	PreviewLayoutStacked PreviewLayout = "stacked"
	PreviewLayoutGrid    PreviewLayout = "grid"
)

type PreviewSettings struct {
	CardWidth   int           `json:"card_width"   toml:"card_width"`
	TabBarWidth int           `json:"tabbar_width" toml:"tabbar_width"`
	Layout      PreviewLayout `json:"layout"       toml:"layout"`
	ShowPalette bool          `json:"show_palette" toml:"show_palette"`
}

const (
	PreviewCardWidthDefault   = 36
	PreviewCardWidthMin       = 20
	PreviewCardWidthMax       = 80
	PreviewTabBarWidthDefault = 48
	PreviewTabBarWidthMin     = 24
	PreviewTabBarWidthMax     = 120
)

func DefaultPreviewSettings() PreviewSettings {
	return PreviewSettings{
		CardWidth:   PreviewCardWidthDefault,
		TabBarWidth: PreviewTabBarWidthDefault,
		Layout:      PreviewLayoutStacked,
		ShowPalette: true,
	}
}

func NormalisePreviewSettings(in PreviewSettings) PreviewSettings {
	out := DefaultPreviewSettings()
	out.CardWidth = clampInt(
		in.CardWidth,
		PreviewCardWidthMin,
		PreviewCardWidthMax,
		PreviewCardWidthDefault,
	)
	out.TabBarWidth = clampInt(
		in.TabBarWidth,
		PreviewTabBarWidthMin,
		PreviewTabBarWidthMax,
		PreviewTabBarWidthDefault,
	)
	out.ShowPalette = in.ShowPalette
	switch strings.ToLower(strings.TrimSpace(string(in.Layout))) {
	case string(PreviewLayoutGrid):
		out.Layout = PreviewLayoutGrid
	case string(PreviewLayoutStacked):
		out.Layout = PreviewLayoutStacked
	}
	return out
}

func clampInt(value, min, max, fallback int) int {
	if value == 0 {
		return fallback
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
