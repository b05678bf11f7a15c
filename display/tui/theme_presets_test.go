package tui

import "testing"

func TestGetThemePreset_Sky(t *testing.T) {
	p := GetThemePreset("sky")
	if p.Name != "sky" {
		t.Errorf("expected sky preset, got %q", p.Name)
	}
}

func TestGetThemePreset_Storm(t *testing.T) {
	p := GetThemePreset("storm")
	if p.Name != "storm" {
		t.Errorf("expected storm preset, got %q", p.Name)
	}
}

func TestGetThemePreset_Minimal(t *testing.T) {
	p := GetThemePreset("minimal")
	if p.Name != "minimal" {
		t.Errorf("expected minimal preset, got %q", p.Name)
	}
}

func TestGetThemePreset_Unknown(t *testing.T) {
	p := GetThemePreset("neon")
	if p.Name != "sky" {
		t.Errorf("expected unknown name to fall back to sky, got %q", p.Name)
	}
}

func TestAllThemePresets(t *testing.T) {
	presets := AllThemePresets()
	if len(presets) != 3 {
		t.Fatalf("expected 3 presets, got %d", len(presets))
	}

	seen := make(map[string]bool)
	for _, p := range presets {
		if p.Name == "" {
			t.Error("preset with empty name")
		}
		if seen[p.Name] {
			t.Errorf("duplicate preset name %q", p.Name)
		}
		seen[p.Name] = true
	}
}

func TestAllThemePresets_ReturnsCopy(t *testing.T) {
	presets := AllThemePresets()
	presets[0].Name = "mutated"

	if AllThemePresets()[0].Name == "mutated" {
		t.Error("expected AllThemePresets to return a copy")
	}
}

func TestApplyTheme(t *testing.T) {
	defer ApplyTheme(SkyTheme)

	ApplyTheme(StormTheme)

	if !styleActiveTab.GetBold() {
		t.Error("expected active tab style to be bold")
	}
	if styleActiveTab.GetBackground() != StormTheme.Primary {
		t.Errorf("expected active tab background %v, got %v",
			StormTheme.Primary, styleActiveTab.GetBackground())
	}
	if styleFooter.GetForeground() != StormTheme.Muted {
		t.Errorf("expected footer foreground %v, got %v",
			StormTheme.Muted, styleFooter.GetForeground())
	}
	if styleFooterError.GetForeground() != StormTheme.Danger {
		t.Errorf("expected footer error foreground %v, got %v",
			StormTheme.Danger, styleFooterError.GetForeground())
	}
}

func TestApplyTheme_CompactMode(t *testing.T) {
	defer ApplyTheme(SkyTheme)

	ApplyTheme(MinimalTheme)
	if styleContent.GetPaddingLeft() != 1 {
		t.Errorf("expected compact content padding 1, got %d", styleContent.GetPaddingLeft())
	}
	if styleHeader.GetBorderBottom() {
		t.Error("expected minimal theme to drop the header border")
	}

	ApplyTheme(SkyTheme)
	if styleContent.GetPaddingLeft() != 2 {
		t.Errorf("expected normal content padding 2, got %d", styleContent.GetPaddingLeft())
	}
	if !styleHeader.GetBorderBottom() {
		t.Error("expected sky theme to keep the header border")
	}
}

func TestThemePreset_Colors(t *testing.T) {
	for _, p := range AllThemePresets() {
		if p.Primary == "" || p.Secondary == "" || p.Danger == "" {
			t.Errorf("preset %q has unset colors", p.Name)
		}
	}
}
