package propctl

import (
	"strings"
	"testing"
)

func visibleKeys(t *testing.T, p Panel, values map[string]interface{}) map[string]bool {
	t.Helper()
	cs, err := p.Visible(values)
	if err != nil {
		t.Fatalf("Visible() error = %v", err)
	}
	keys := map[string]bool{}
	for _, c := range cs {
		keys[c.Key] = true
	}
	return keys
}

func TestWindowPanelVisibility(t *testing.T) {
	tests := []struct {
		style          string
		wantAppearance bool
		wantTitle      bool
		wantHeader     bool
	}{
		{"macOS", true, true, false},
		{"Safari", true, true, false},
		{"Firefox", false, true, false},
		{"Chrome", false, true, false},
		{"None", false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			keys := visibleKeys(t, WindowPanel(), map[string]interface{}{"style": tt.style})
			if keys["appearance"] != tt.wantAppearance {
				t.Errorf("appearance visible = %v, want %v", keys["appearance"], tt.wantAppearance)
			}
			if keys["title"] != tt.wantTitle {
				t.Errorf("title visible = %v, want %v", keys["title"], tt.wantTitle)
			}
			if keys["headerHeight"] != tt.wantHeader {
				t.Errorf("headerHeight visible = %v, want %v", keys["headerHeight"], tt.wantHeader)
			}
			for _, always := range []string{"style", "scrollable", "minWidth", "minHeight", "layouts"} {
				if !keys[always] {
					t.Errorf("%s hidden", always)
				}
			}
		})
	}
}

func TestVisiblePredicateError(t *testing.T) {
	p := Panel{Name: "broken", Controls: []Control{{Key: "x", Hidden: `undefined_name == 1`}}}
	if _, err := p.Visible(map[string]interface{}{}); err == nil {
		t.Errorf("Visible() with unknown name returned nil error")
	}

	p = Panel{Name: "syntax", Controls: []Control{{Key: "x", Hidden: `style ==`}}}
	if _, err := p.Visible(map[string]interface{}{"style": "None"}); err == nil {
		t.Errorf("Visible() with syntax error returned nil error")
	}
}

func TestPredicateSeesNumbersAndBools(t *testing.T) {
	c := Control{Key: "x", Hidden: `minWidth > 300 and scrollable`}
	hidden, err := c.IsHidden(map[string]interface{}{"minWidth": 400.0, "scrollable": true})
	if err != nil {
		t.Fatalf("IsHidden() error = %v", err)
	}
	if !hidden {
		t.Errorf("IsHidden() = false, want true")
	}
	hidden, err = c.IsHidden(map[string]interface{}{"minWidth": 400.0, "scrollable": false})
	if err != nil || hidden {
		t.Errorf("IsHidden() = %v, %v, want false, nil", hidden, err)
	}
}

func TestButtonPanel(t *testing.T) {
	p := ButtonPanel()
	size, ok := p.Lookup("buttonSize")
	if !ok || size.Kind != SegmentedEnum || len(size.Options) != 3 {
		t.Errorf("buttonSize control = %+v, %v", size, ok)
	}
	if _, ok := p.Lookup("missing"); ok {
		t.Errorf("Lookup(missing) found a control")
	}
	keys := visibleKeys(t, p, map[string]interface{}{})
	if len(keys) != 4 {
		t.Errorf("visible button controls = %v", keys)
	}
}

func TestValidate(t *testing.T) {
	issues := WindowPanel().Validate(map[string]interface{}{
		"style": "Safary",
		"title": "anything goes",
	})
	if len(issues) != 1 {
		t.Fatalf("Validate() = %v, want one issue", issues)
	}
	if issues[0].Key != "style" || issues[0].Suggestion != "Safari" {
		t.Errorf("issue = %+v", issues[0])
	}

	issues = ButtonPanel().Validate(map[string]interface{}{"buttonType": "Primary", "buttonSize": "XL"})
	if len(issues) != 1 || issues[0].Key != "buttonSize" {
		t.Errorf("Validate() = %v", issues)
	}

	if issues := ButtonPanel().Validate(map[string]interface{}{"buttonType": 3}); len(issues) != 1 || issues[0].Suggestion != "" {
		t.Errorf("Validate(non-string) = %v", issues)
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"macos", "macOS"},
		{"Chrom", "Chrome"},
		{"Firefx", "Firefox"},
		{"none", "None"},
	}
	for _, tt := range tests {
		if got := Suggest(tt.in, WindowPanel().Controls[0].Options); got != tt.want {
			t.Errorf("Suggest(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := Suggest("x", nil); got != "" {
		t.Errorf("Suggest with no options = %q", got)
	}
}

func TestIssueString(t *testing.T) {
	i := Issue{Key: "style", Value: "Safary", Suggestion: "Safari"}
	if got := i.String(); got != `style: unknown option "Safary", did you mean "Safari"?` {
		t.Errorf("String() = %q", got)
	}
}

func TestPredicateSeesSliceLength(t *testing.T) {
	c := Control{Key: "x", Hidden: `layouts == 0`}
	hidden, err := c.IsHidden(map[string]interface{}{"layouts": []string{"a", "b"}})
	if err != nil {
		t.Fatalf("IsHidden() error = %v", err)
	}
	if hidden {
		t.Errorf("IsHidden() = true, want false for two layouts")
	}
}

func TestPredicateReportsUnsupportedValue(t *testing.T) {
	c := Control{Key: "x", Hidden: `style == "None"`}
	_, err := c.IsHidden(map[string]interface{}{"style": "None", "origin": struct{}{}})
	if err == nil {
		t.Fatalf("IsHidden() with unsupported value returned nil error")
	}
	if !strings.Contains(err.Error(), `"origin"`) {
		t.Errorf("error %q does not name the key", err)
	}
}

func TestVisibleKeys(t *testing.T) {
	keys, err := WindowPanel().VisibleKeys(map[string]interface{}{"style": "None"})
	if err != nil {
		t.Fatalf("VisibleKeys() error = %v", err)
	}
	want := []string{"style", "headerHeight", "scrollable", "minWidth", "minHeight", "layouts"}
	if strings.Join(keys, ",") != strings.Join(want, ",") {
		t.Errorf("VisibleKeys() = %v, want %v", keys, want)
	}
}
