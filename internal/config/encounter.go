package config

type EncounterConfig struct {
	ID       string  `yaml:"id"`
	Note     string  `yaml:"note"`
	MaxTurns int     `yaml:"max_turns"`
	Team1    TeamDef `yaml:"team1"`
	Team2    TeamDef `yaml:"team2"`
}

type TeamDef struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"`
}
