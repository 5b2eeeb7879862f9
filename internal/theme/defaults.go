package theme

const DefaultID = "default"

func DefaultCardTheme() CardTheme {
	return CardTheme{
		ID:          DefaultID,
		DisplayName: "Default",
		Style: CardStyle{
			Colors: CardColors{
				Primary:   "#313132",
				Secondary: "#1F1F20",
				Text:      "#FFFFFF",
				Accent:    "#FCBA19",
			},
			Typography: CardTypography{TitleSize: 18, Weight: "bold"},
			Layout:     CardLayout{Variant: "standard", BorderRadius: 10, ShowLogo: true},
		},
		Matcher: Matcher{Fallback: true},
	}
}

func DefaultBackground() BackgroundConfig {
	return BackgroundConfig{
		ID:    DefaultID,
		Type:  BackgroundSolid,
		Color: "#F2F2F2",
	}
}

func DefaultTabBarConfig() TabBarConfig {
	return TabBarConfig{
		Variant: DefaultVariant,
		Style: TabBarStyle{
			Background:  "#FFFFFF",
			BorderColor: "#E0E0E0",
			Height:      60,
		},
		TabItem: TabItemStyle{IconSize: 24, LabelSize: 12, ShowLabel: true, Padding: 6},
		Colors: TabBarColors{
			Active:   "#003366",
			Inactive: "#606060",
			Focused:  "#FCBA19",
		},
		Badge: BadgeStyle{Background: "#D8292F", Text: "#FFFFFF", Size: 18},
		Tabs: []TabDefinition{
			{ID: "home", Label: "Home", Icon: "home"},
			{ID: "credentials", Label: "Credentials", Icon: "wallet", Badge: true},
			{ID: "settings", Label: "Settings", Icon: "cog"},
		},
	}
}
