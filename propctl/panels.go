package propctl

// WindowPanel lists the controls of a resizable window.
func WindowPanel() Panel {
	return Panel{
		Name: "ResizableWindow",
		Controls: []Control{
			{Key: "style", Title: "Style", Kind: Enum, Options: []string{"macOS", "Safari", "Firefox", "Chrome", "None"}},
			{
				Key:           "appearance",
				Title:         "Appearance",
				Kind:          Boolean,
				EnabledTitle:  "Dark",
				DisabledTitle: "Light",
				Hidden:        `style in ("None", "Firefox", "Chrome")`,
			},
			{Key: "title", Title: "Title", Kind: String, Hidden: `style == "None"`},
			{Key: "headerHeight", Title: "Header Height", Kind: Number, Hidden: `style != "None"`},
			{Key: "scrollable", Title: "Scrollable", Kind: Boolean},
			{Key: "minWidth", Title: "Min. Width", Kind: Number},
			{Key: "minHeight", Title: "Min. Height", Kind: Number},
			{Key: "layouts", Title: "Layouts", Kind: Array, Item: &Control{Kind: ComponentInstance}},
		},
	}
}

// ButtonPanel lists the controls of a toggle button.
func ButtonPanel() Panel {
	return Panel{
		Name: "ToggleButton",
		Controls: []Control{
			{Key: "text", Title: "Text", Kind: String},
			{Key: "buttonType", Title: "Button", Kind: Enum, Options: []string{"Primary", "Secondary"}},
			{Key: "fullWidth", Title: "Full Width", Kind: Boolean},
			{Key: "buttonSize", Title: "Size", Kind: SegmentedEnum, Options: []string{"S", "M", "L"}},
		},
	}
}
