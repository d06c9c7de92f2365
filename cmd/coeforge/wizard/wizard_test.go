package wizard

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/mrsinham/coeforge/cmd/coeforge/wizard/screens"
	"github.com/mrsinham/coeforge/internal/coe"
	"github.com/mrsinham/coeforge/internal/generator"
	"github.com/mrsinham/coeforge/internal/util"
)

func TestToGeneratorOptions_BasicConversion(t *testing.T) {
	state := &WizardState{
		Output:     "/tmp/out.coe",
		Dimensions: "64x32",
		Radix:      2,
		Seed:       12345,
		Overwrite:  true,
		Preview:    "/tmp/out.png",
		DICOM:      "/tmp/out.dcm",
	}

	opts, err := ToGeneratorOptions(state)
	if err != nil {
		t.Fatalf("ToGeneratorOptions failed: %v", err)
	}

	if opts.OutputPath != "/tmp/out.coe" {
		t.Errorf("Expected OutputPath /tmp/out.coe, got %s", opts.OutputPath)
	}
	if opts.Dimensions != (util.Dimensions{Width: 64, Height: 32}) {
		t.Errorf("Expected dimensions 64x32, got %s", opts.Dimensions)
	}
	if opts.Radix != coe.Binary {
		t.Errorf("Expected radix 2, got %d", opts.Radix)
	}
	if opts.Seed != 12345 {
		t.Errorf("Expected seed 12345, got %d", opts.Seed)
	}
	if !opts.Overwrite {
		t.Error("Expected Overwrite true")
	}
	if opts.PreviewPath != "/tmp/out.png" || opts.DICOMPath != "/tmp/out.dcm" {
		t.Errorf("Unexpected companion paths: %q %q", opts.PreviewPath, opts.DICOMPath)
	}
}

func TestToGeneratorOptions_EmptyStateUsesDefaults(t *testing.T) {
	opts, err := ToGeneratorOptions(&WizardState{Overwrite: true})
	if err != nil {
		t.Fatalf("ToGeneratorOptions failed: %v", err)
	}

	defaults := generator.DefaultOptions()
	if opts.OutputPath != defaults.OutputPath || opts.Dimensions != defaults.Dimensions || opts.Radix != defaults.Radix {
		t.Errorf("Expected defaults, got %+v", opts)
	}
}

func TestToGeneratorOptions_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		state *WizardState
	}{
		{"bad dimensions", &WizardState{Dimensions: "big"}},
		{"bad radix", &WizardState{Radix: 8}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ToGeneratorOptions(tc.state); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestFromGeneratorOptions_Roundtrip(t *testing.T) {
	opts := generator.DefaultOptions()
	opts.Seed = 5
	opts.Radix = coe.Decimal
	opts.DICOMPath = "x.dcm"

	back, err := ToGeneratorOptions(FromGeneratorOptions(opts))
	if err != nil {
		t.Fatal(err)
	}
	if back.Seed != 5 || back.Radix != coe.Decimal || back.DICOMPath != "x.dcm" || back.Dimensions != opts.Dimensions {
		t.Errorf("Roundtrip mismatch: %+v", back)
	}
}

func TestNewWizard_DefaultState(t *testing.T) {
	w := NewWizard(nil)

	if w.phase != PhaseSettings {
		t.Errorf("Expected PhaseSettings, got %d", w.phase)
	}
	if w.state.Output != coe.DefaultFilename {
		t.Errorf("Expected default output, got %s", w.state.Output)
	}
	if w.settings.Radix != 16 || !w.settings.Overwrite {
		t.Errorf("Settings not seeded from defaults: %+v", w.settings)
	}
}

func TestNewWizard_WithExistingState(t *testing.T) {
	state := &WizardState{Output: "mine.coe", Dimensions: "8x8", Radix: 10, Seed: 3}
	w := NewWizard(state)

	if w.settings.Output != "mine.coe" || w.settings.Dimensions != "8x8" || w.settings.Seed != 3 {
		t.Errorf("Settings not seeded from state: %+v", w.settings)
	}
}

func TestWizard_GenerationMessages(t *testing.T) {
	w := NewWizard(nil)
	w.phase = PhaseGenerating

	w.Update(screens.CompletionMsg{OutputPath: "image_data.coe", Samples: 16384, Seed: 1})
	if w.phase != PhaseComplete {
		t.Fatalf("Expected PhaseComplete, got %d", w.phase)
	}
	if w.View() == "" {
		t.Error("Completion view should not be empty")
	}

	w = NewWizard(nil)
	w.phase = PhaseGenerating
	boom := errors.New("disk full")
	w.Update(screens.ErrorMsg{Error: boom})
	if w.phase != PhaseError {
		t.Fatalf("Expected PhaseError, got %d", w.phase)
	}
	if !errors.Is(w.err, boom) {
		t.Errorf("Expected wizard error to be recorded, got %v", w.err)
	}
}

func TestWizard_StartGenerationWritesFiles(t *testing.T) {
	dir := t.TempDir()
	w := NewWizard(&WizardState{
		Output:     filepath.Join(dir, "image_data.coe"),
		Dimensions: "4x4",
		Radix:      16,
		Seed:       11,
		Overwrite:  true,
	})
	w.settings.SaveConfig = filepath.Join(dir, "saved.yaml")

	_, cmd := w.startGeneration()
	if w.phase != PhaseGenerating {
		t.Fatalf("Expected PhaseGenerating, got %d", w.phase)
	}

	msg, ok := cmd().(screens.CompletionMsg)
	if !ok {
		t.Fatal("Expected CompletionMsg from generation command")
	}
	if msg.Samples != 16 || msg.Seed != 11 {
		t.Errorf("Unexpected completion: %+v", msg)
	}

	f, err := coe.ReadFile(msg.OutputPath)
	if err != nil {
		t.Fatalf("Generated file is not valid: %v", err)
	}
	if len(f.Values) != 16 {
		t.Errorf("Expected 16 values, got %d", len(f.Values))
	}

	saved, err := LoadFromYAML(msg.ConfigPath)
	if err != nil {
		t.Fatalf("Saved config not readable: %v", err)
	}
	if saved.Seed != 11 || saved.Dimensions != "4x4" {
		t.Errorf("Saved config mismatch: %+v", saved)
	}
}

func TestWizard_SavedConfigPinsDrawnSeed(t *testing.T) {
	dir := t.TempDir()
	w := NewWizard(&WizardState{
		Output:     filepath.Join(dir, "image_data.coe"),
		Dimensions: "4x4",
		Radix:      16,
		Overwrite:  true,
	})
	w.settings.SaveConfig = filepath.Join(dir, "saved.yaml")

	_, cmd := w.startGeneration()
	msg, ok := cmd().(screens.CompletionMsg)
	if !ok {
		t.Fatal("Expected CompletionMsg from generation command")
	}
	if msg.Seed == 0 {
		t.Fatal("Expected a drawn seed")
	}

	saved, err := LoadFromYAML(msg.ConfigPath)
	if err != nil {
		t.Fatalf("Saved config not readable: %v", err)
	}
	if saved.Seed != msg.Seed {
		t.Errorf("Saved seed %d, want drawn seed %d", saved.Seed, msg.Seed)
	}

	first, err := os.ReadFile(msg.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	opts, err := ToGeneratorOptions(saved)
	if err != nil {
		t.Fatal(err)
	}
	opts.OutputPath = filepath.Join(dir, "replay.coe")
	opts.Quiet = true
	if _, err := generator.Generate(opts); err != nil {
		t.Fatalf("Replaying saved config failed: %v", err)
	}
	replay, err := os.ReadFile(opts.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(replay) {
		t.Error("Replaying the saved config did not reproduce the file")
	}
}

func TestWizard_FailedGenerationSavesNoConfig(t *testing.T) {
	dir := t.TempDir()
	w := NewWizard(&WizardState{
		Output:     filepath.Join(dir, "missing", "image_data.coe"),
		Dimensions: "4x4",
		Radix:      16,
		Seed:       11,
		Overwrite:  true,
	})
	configPath := filepath.Join(dir, "saved.yaml")
	w.settings.SaveConfig = configPath

	_, cmd := w.startGeneration()
	if _, ok := cmd().(screens.ErrorMsg); !ok {
		t.Fatal("Expected ErrorMsg for an unwritable output path")
	}
	if _, err := os.Stat(configPath); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Config saved for a failed run: %v", err)
	}
}
