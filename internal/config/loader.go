package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

// LoadAll reads skills.yaml, runes.yaml, combatants.yaml and the named
// encounter file from dir.
func LoadAll(dir, encounter string) (*SkillsConfig, *RunesConfig, *CombatantsConfig, *EncounterConfig, error) {
	var sc SkillsConfig
	var rc RunesConfig
	var cc CombatantsConfig
	var ec EncounterConfig
	if encounter == "" {
		encounter = "encounter.yaml"
	}
	if err := loadYAML(filepath.Join(dir, "skills.yaml"), &sc); err != nil {
		return nil, nil, nil, nil, err
	}
	if err := loadYAML(filepath.Join(dir, "runes.yaml"), &rc); err != nil {
		return nil, nil, nil, nil, err
	}
	if err := loadYAML(filepath.Join(dir, "combatants.yaml"), &cc); err != nil {
		return nil, nil, nil, nil, err
	}
	if err := loadYAML(filepath.Join(dir, encounter), &ec); err != nil {
		return nil, nil, nil, nil, err
	}
	return &sc, &rc, &cc, &ec, nil
}
