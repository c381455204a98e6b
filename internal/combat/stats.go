package combat

import "fmt"

const (
	MinCritRate   = 0.15
	MinCritDamage = 1.5
	MinResistance = 0.15
	MaxResistance = 1.0
	MaxAccuracy   = 1.0
	MaxCritResist = 1.0
)

type Stat int

const (
	StatMaxHP Stat = iota
	StatMaxMP
	StatAttack
	StatDefense
	StatSpeed
	StatCritRate
	StatCritDamage
	StatResistance
	StatAccuracy
	StatCritResist
)

var statNames = map[Stat]string{
	StatMaxHP:      "max_hp",
	StatMaxMP:      "max_mp",
	StatAttack:     "attack",
	StatDefense:    "defense",
	StatSpeed:      "speed",
	StatCritRate:   "crit_rate",
	StatCritDamage: "crit_damage",
	StatResistance: "resistance",
	StatAccuracy:   "accuracy",
	StatCritResist: "crit_resist",
}

func (s Stat) String() string {
	if n, ok := statNames[s]; ok {
		return n
	}
	return fmt.Sprintf("stat(%d)", int(s))
}

func ParseStat(name string) (Stat, error) {
	for s, n := range statNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown stat %q", name)
}

type StatBlock struct {
	MaxHP      float64 `json:"max_hp"`
	MaxMP      float64 `json:"max_mp"`
	Attack     float64 `json:"attack"`
	Defense    float64 `json:"defense"`
	Speed      float64 `json:"speed"`
	CritRate   float64 `json:"crit_rate"`
	CritDamage float64 `json:"crit_damage"`
	Resistance float64 `json:"resistance"`
	Accuracy   float64 `json:"accuracy"`
	CritResist float64 `json:"crit_resist"`
}

func (b *StatBlock) field(s Stat) *float64 {
	switch s {
	case StatMaxHP:
		return &b.MaxHP
	case StatMaxMP:
		return &b.MaxMP
	case StatAttack:
		return &b.Attack
	case StatDefense:
		return &b.Defense
	case StatSpeed:
		return &b.Speed
	case StatCritRate:
		return &b.CritRate
	case StatCritDamage:
		return &b.CritDamage
	case StatResistance:
		return &b.Resistance
	case StatAccuracy:
		return &b.Accuracy
	case StatCritResist:
		return &b.CritResist
	}
	return nil
}

func (b StatBlock) Get(s Stat) float64 {
	if p := b.field(s); p != nil {
		return *p
	}
	return 0
}

// clampCeilings caps the percentage-bounded stats.
func (b *StatBlock) clampCeilings() {
	b.Resistance = min(b.Resistance, MaxResistance)
	b.Accuracy = min(b.Accuracy, MaxAccuracy)
	b.CritResist = min(b.CritResist, MaxCritResist)
}

// clampFloors keeps every stat at or above its defined minimum.
func (b *StatBlock) clampFloors() {
	b.MaxHP = max(b.MaxHP, 0)
	b.MaxMP = max(b.MaxMP, 0)
	b.Attack = max(b.Attack, 0)
	b.Defense = max(b.Defense, 0)
	b.Speed = max(b.Speed, 0)
	b.CritRate = max(b.CritRate, MinCritRate)
	b.CritDamage = max(b.CritDamage, MinCritDamage)
	b.Resistance = max(b.Resistance, MinResistance)
	b.Accuracy = max(b.Accuracy, 0)
	b.CritResist = max(b.CritResist, 0)
}

func (b *StatBlock) normalize() {
	b.clampFloors()
	b.clampCeilings()
}

// triangular is n(n-1)/2.
func triangular(n int) float64 {
	return float64(n*(n-1)) / 2
}
