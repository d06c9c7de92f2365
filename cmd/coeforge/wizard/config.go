package wizard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML layout of a saved configuration.
type Config struct {
	Output     string `yaml:"output"`
	Dimensions string `yaml:"dimensions"`
	Radix      int    `yaml:"radix"`
	Seed       uint64 `yaml:"seed,omitempty"`
	Overwrite  *bool  `yaml:"overwrite,omitempty"`
	Preview    string `yaml:"preview,omitempty"`
	DICOM      string `yaml:"dicom,omitempty"`
}

// LoadFromYAML reads a config file. Missing keys keep their defaults.
func LoadFromYAML(path string) (*WizardState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return configToWizardState(cfg), nil
}

// SaveToYAML writes the state to path.
func SaveToYAML(state *WizardState, path string) error {
	data, err := yaml.Marshal(wizardStateToConfig(state))
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func configToWizardState(cfg Config) *WizardState {
	state := NewDefaultState()
	if cfg.Output != "" {
		state.Output = cfg.Output
	}
	if cfg.Dimensions != "" {
		state.Dimensions = cfg.Dimensions
	}
	if cfg.Radix != 0 {
		state.Radix = cfg.Radix
	}
	if cfg.Overwrite != nil {
		state.Overwrite = *cfg.Overwrite
	}
	state.Seed = cfg.Seed
	state.Preview = cfg.Preview
	state.DICOM = cfg.DICOM
	return state
}

func wizardStateToConfig(state *WizardState) Config {
	overwrite := state.Overwrite
	return Config{
		Output:     state.Output,
		Dimensions: state.Dimensions,
		Radix:      state.Radix,
		Seed:       state.Seed,
		Overwrite:  &overwrite,
		Preview:    state.Preview,
		DICOM:      state.DICOM,
	}
}
