package config

type RunesConfig struct {
	Runes []Rune `yaml:"runes"`
}

type Rune struct {
	ID      string       `yaml:"id"`
	Slot    int          `yaml:"slot"`
	Effects []RuneEffect `yaml:"effects"`
	Note    string       `yaml:"note"`
}

type RuneEffect struct {
	Stat    string  `yaml:"stat"`
	Percent float64 `yaml:"percent"`
	Flat    float64 `yaml:"flat"`
}
