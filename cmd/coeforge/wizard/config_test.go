package wizard

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadFromYAML_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test.yaml")

	content := `
output: rom.coe
dimensions: 64x32
radix: 2
seed: 42
overwrite: false
preview: rom.png
dicom: rom.dcm
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	state, err := LoadFromYAML(configPath)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}

	want := &WizardState{
		Output:     "rom.coe",
		Dimensions: "64x32",
		Radix:      2,
		Seed:       42,
		Overwrite:  false,
		Preview:    "rom.png",
		DICOM:      "rom.dcm",
	}
	if !reflect.DeepEqual(state, want) {
		t.Errorf("LoadFromYAML = %+v, want %+v", state, want)
	}
}

func TestLoadFromYAML_MinimalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "minimal.yaml")

	if err := os.WriteFile(configPath, []byte("seed: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	state, err := LoadFromYAML(configPath)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}

	defaults := NewDefaultState()
	if state.Output != defaults.Output {
		t.Errorf("Expected default output %s, got %s", defaults.Output, state.Output)
	}
	if state.Dimensions != "128x128" {
		t.Errorf("Expected default dimensions 128x128, got %s", state.Dimensions)
	}
	if state.Radix != 16 {
		t.Errorf("Expected default radix 16, got %d", state.Radix)
	}
	if !state.Overwrite {
		t.Error("Expected overwrite to default to true")
	}
	if state.Seed != 7 {
		t.Errorf("Expected seed 7, got %d", state.Seed)
	}
}

func TestLoadFromYAML_NonExistentFile(t *testing.T) {
	_, err := LoadFromYAML("/non/existent/path/config.yaml")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestLoadFromYAML_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	if err := os.WriteFile(configPath, []byte("radix: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromYAML(configPath); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestRoundtrip_SaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "roundtrip.yaml")

	original := &WizardState{
		Output:     "out.coe",
		Dimensions: "16x16",
		Radix:      10,
		Seed:       99,
		Overwrite:  false,
		DICOM:      "out.dcm",
	}

	if err := SaveToYAML(original, configPath); err != nil {
		t.Fatalf("SaveToYAML failed: %v", err)
	}

	loaded, err := LoadFromYAML(configPath)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}

	if !reflect.DeepEqual(original, loaded) {
		t.Errorf("Roundtrip mismatch:\n got  %+v\n want %+v", loaded, original)
	}
}

func TestSaveToYAML_InvalidPath(t *testing.T) {
	err := SaveToYAML(NewDefaultState(), "/nonexistent/deeply/nested/path/config.yaml")
	if err == nil {
		t.Error("Expected error for invalid path")
	}
}
