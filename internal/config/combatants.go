package config

type CombatantsConfig struct {
	Combatants []CombatantDef `yaml:"combatants"`
}

type CombatantDef struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Elements    []string       `yaml:"elements"`
	Rating      int            `yaml:"rating"`
	RequiredExp float64        `yaml:"required_exp"`
	Experience  float64        `yaml:"experience"`
	Stats       StatsDef       `yaml:"stats"`
	Awaken      AwakenDef      `yaml:"awaken"`
	Awakened    bool           `yaml:"awakened"`
	Skills      []string       `yaml:"skills"`
	Runes       []string       `yaml:"runes"`
	Personality PersonalityDef `yaml:"personality"`
	Note        string         `yaml:"note"`
}

type StatsDef struct {
	MaxHP      float64 `yaml:"max_hp"`
	MaxMP      float64 `yaml:"max_mp"`
	Attack     float64 `yaml:"attack"`
	Defense    float64 `yaml:"defense"`
	Speed      float64 `yaml:"speed"`
	CritRate   float64 `yaml:"crit_rate"`
	CritDamage float64 `yaml:"crit_damage"`
	Resistance float64 `yaml:"resistance"`
	Accuracy   float64 `yaml:"accuracy"`
	CritResist float64 `yaml:"crit_resist"`
}

type AwakenDef struct {
	Percent    float64 `yaml:"percent"`
	Speed      float64 `yaml:"speed"`
	CritRate   float64 `yaml:"crit_rate"`
	CritDamage float64 `yaml:"crit_damage"`
	Resistance float64 `yaml:"resistance"`
	Accuracy   float64 `yaml:"accuracy"`
}

type PersonalityDef struct {
	Aggression float64 `yaml:"aggression"`
	Caution    float64 `yaml:"caution"`
}
