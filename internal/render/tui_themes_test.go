package render

import "testing"

func TestGetTUIThemeByName(t *testing.T) {
	for _, name := range TUIThemeNames() {
		theme, ok := GetTUIThemeByName(name)
		if !ok {
			t.Errorf("theme %q not found", name)
			continue
		}
		if theme.Name != name {
			t.Errorf("theme name = %q, want %q", theme.Name, name)
		}
		if theme.Primary == "" || theme.Text == "" {
			t.Errorf("theme %q has empty colors", name)
		}
	}

	if _, ok := GetTUIThemeByName("nonexistent"); ok {
		t.Error("unknown theme name resolved")
	}
}

func TestSetTUITheme(t *testing.T) {
	defer SetTUITheme("tokyonight")

	if !SetTUITheme("dracula") {
		t.Fatal("SetTUITheme rejected a valid theme")
	}
	if GetTUITheme().Name != "dracula" {
		t.Errorf("active theme = %q, want dracula", GetTUITheme().Name)
	}

	if SetTUITheme("nonexistent") {
		t.Error("SetTUITheme accepted an unknown theme")
	}
	if GetTUITheme().Name != "dracula" {
		t.Error("failed SetTUITheme changed the active theme")
	}
}
