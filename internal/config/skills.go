package config

type SkillsConfig struct {
	Skills []Skill `yaml:"skills"`
}

type Skill struct {
	ID            string        `yaml:"id"`
	Name          string        `yaml:"name"`
	Kind          string        `yaml:"kind"` // attack | heal
	MPCost        float64       `yaml:"mp_cost"`
	Multiplier    MultiplierDef `yaml:"multiplier"`
	GaugeUp       float64       `yaml:"allies_gauge_up"`
	GaugeDown     float64       `yaml:"enemies_gauge_down"`
	Heal          float64       `yaml:"heal"`
	IgnoreDefense bool          `yaml:"ignore_defense"`
	Note          string        `yaml:"note"`
}

type MultiplierDef struct {
	MaxHPSelf     float64 `yaml:"max_hp_self"`
	MaxHPEnemy    float64 `yaml:"max_hp_enemy"`
	AtkSpeedSelf  float64 `yaml:"atk_speed_self"`
	AtkSelf       float64 `yaml:"atk_self"`
	AtkSpeedEnemy float64 `yaml:"atk_speed_enemy"`
	AtkEnemy      float64 `yaml:"atk_enemy"`
	DefSelf       float64 `yaml:"def_self"`
	DefEnemy      float64 `yaml:"def_enemy"`
	MPSelf        float64 `yaml:"mp_self"`
	HPPctSelf     float64 `yaml:"hp_pct_self"`
	HPLossSelf    float64 `yaml:"hp_loss_self"`
	HPPctEnemy    float64 `yaml:"hp_pct_enemy"`
	MPEnemy       float64 `yaml:"mp_enemy"`
}
