package combat

import "math"

const (
	MinRating = 1
	MaxRating = 6

	// FullGauge is the gauge value at which a combatant may act.
	FullGauge = 1.0
	MinGauge  = 0.0

	DefaultRequiredExperience = 100.0
)

// Buffs are percentage adjustments consulted by normal attacks.
type Buffs struct {
	AttackUp    float64 `json:"attack_up"`
	AttackDown  float64 `json:"attack_down"`
	DefenseUp   float64 `json:"defense_up"`
	DefenseDown float64 `json:"defense_down"`
}

// AwakenBonus is applied exactly once by Awaken.
type AwakenBonus struct {
	Percent    float64 `json:"percent"`
	Speed      float64 `json:"speed"`
	CritRate   float64 `json:"crit_rate"`
	CritDamage float64 `json:"crit_damage"`
	Resistance float64 `json:"resistance"`
	Accuracy   float64 `json:"accuracy"`
}

type Spec struct {
	ID                 string
	Name               string
	Elements           []Element
	Rating             int
	Base               StatBlock
	Awaken             AwakenBonus
	Skills             []*Skill
	RequiredExperience float64
}

type Combatant struct {
	ID       string
	Name     string
	Elements []Element
	Skills   []*Skill
	Buffs    Buffs

	rating       int
	level        int
	maxLevel     int
	experience   float64
	required     float64
	baseRequired float64

	stats  StatBlock
	hp, mp float64
	gauge  float64

	modifiers [MaxModifierSlots]*Modifier
	order     []int

	awaken   AwakenBonus
	awakened bool

	team   *Team
	battle *Battle
}

func NewCombatant(spec Spec) *Combatant {
	rating := spec.Rating
	if rating < MinRating {
		rating = MinRating
	}
	if rating > MaxRating {
		rating = MaxRating
	}
	req := spec.RequiredExperience
	if req <= 0 {
		req = DefaultRequiredExperience
	}
	name := spec.Name
	if name == "" {
		name = spec.ID
	}
	c := &Combatant{
		ID:           spec.ID,
		Name:         name,
		Elements:     append([]Element(nil), spec.Elements...),
		Skills:       spec.Skills,
		rating:       rating,
		level:        1,
		maxLevel:     maxLevelFor(rating),
		required:     req,
		baseRequired: req,
		stats:        spec.Base,
		awaken:       spec.Awaken,
	}
	c.stats.normalize()
	c.Recover()
	return c
}

// maxLevelFor is 10*triangular(rating), with rating 1 capped at 10 and the top
// rating unbounded.
func maxLevelFor(rating int) int {
	if rating >= MaxRating {
		return math.MaxInt
	}
	return 10 * max(int(triangular(rating)), 1)
}

func (c *Combatant) Stats() StatBlock            { return c.stats }
func (c *Combatant) HP() float64                 { return c.hp }
func (c *Combatant) MP() float64                 { return c.mp }
func (c *Combatant) Gauge() float64              { return c.gauge }
func (c *Combatant) Rating() int                 { return c.rating }
func (c *Combatant) Level() int                  { return c.level }
func (c *Combatant) MaxLevel() int               { return c.maxLevel }
func (c *Combatant) Experience() float64         { return c.experience }
func (c *Combatant) RequiredExperience() float64 { return c.required }
func (c *Combatant) Awakened() bool              { return c.awakened }
func (c *Combatant) AwakenBonus() AwakenBonus    { return c.awaken }
func (c *Combatant) Team() *Team                 { return c.team }

func (c *Combatant) IsAlive() bool { return c.hp > 0 }

// HPFraction is current over max HP, zero when max HP is zero.
func (c *Combatant) HPFraction() float64 {
	if c.stats.MaxHP <= 0 {
		return 0
	}
	return c.hp / c.stats.MaxHP
}

// Recover restores HP and MP to full and empties the gauge.
func (c *Combatant) Recover() {
	c.hp = c.stats.MaxHP
	c.mp = c.stats.MaxMP
	c.gauge = MinGauge
}

// AddExperience adds a positive, finite amount. The total saturates at
// math.MaxFloat64.
func (c *Combatant) AddExperience(amount float64) {
	if amount > 0 && !math.IsInf(amount, 1) {
		c.experience = min(c.experience+amount, math.MaxFloat64)
	}
}

// SameSide reports whether both combatants belong to the same team.
func (c *Combatant) SameSide(other *Combatant) bool {
	return c.team != nil && c.team == other.team
}

func (c *Combatant) Skill(i int) *Skill {
	if i < 0 || i >= len(c.Skills) {
		return nil
	}
	return c.Skills[i]
}

func (c *Combatant) restore() {
	c.hp = c.stats.MaxHP
	c.mp = c.stats.MaxMP
}

func (c *Combatant) clampCurrent() {
	c.hp = min(c.hp, c.stats.MaxHP)
	c.mp = min(c.mp, c.stats.MaxMP)
}

func (c *Combatant) regenMP() {
	c.mp = min(c.mp+c.stats.MaxMP/12, c.stats.MaxMP)
}

func (c *Combatant) gaugeRate() float64 {
	return c.stats.Speed * GaugeRate
}

func (c *Combatant) addGauge(delta float64) {
	c.gauge = max(c.gauge+delta, MinGauge)
}
