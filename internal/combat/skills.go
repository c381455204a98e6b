package combat

import (
	"fmt"
	"math"

	"gaugebattle/internal/config"
)

type SkillKind int

const (
	SkillAttack SkillKind = iota
	SkillHeal
)

func (k SkillKind) String() string {
	switch k {
	case SkillAttack:
		return "attack"
	case SkillHeal:
		return "heal"
	}
	return fmt.Sprintf("skill_kind(%d)", int(k))
}

func ParseSkillKind(s string) (SkillKind, error) {
	switch s {
	case "attack", "":
		return SkillAttack, nil
	case "heal":
		return SkillHeal, nil
	}
	return 0, fmt.Errorf("unknown skill kind %q", s)
}

// DamageMultiplier holds the coefficients of the skill damage formula. Each
// one scales an attribute of the user ("self") or the target ("enemy").
type DamageMultiplier struct {
	MaxHPSelf     float64 `json:"max_hp_self"`
	MaxHPEnemy    float64 `json:"max_hp_enemy"`
	AtkSpeedSelf  float64 `json:"atk_speed_self"`
	AtkSelf       float64 `json:"atk_self"`
	AtkSpeedEnemy float64 `json:"atk_speed_enemy"`
	AtkEnemy      float64 `json:"atk_enemy"`
	DefSelf       float64 `json:"def_self"`
	DefEnemy      float64 `json:"def_enemy"`
	MPSelf        float64 `json:"mp_self"`
	HPPctSelf     float64 `json:"hp_pct_self"`
	HPLossSelf    float64 `json:"hp_loss_self"`
	HPPctEnemy    float64 `json:"hp_pct_enemy"`
	MPEnemy       float64 `json:"mp_enemy"`
}

func (m *DamageMultiplier) coefficients() []*float64 {
	return []*float64{
		&m.MaxHPSelf, &m.MaxHPEnemy, &m.AtkSpeedSelf, &m.AtkSelf, &m.AtkSpeedEnemy,
		&m.AtkEnemy, &m.DefSelf, &m.DefEnemy, &m.MPSelf, &m.HPPctSelf,
		&m.HPLossSelf, &m.HPPctEnemy, &m.MPEnemy,
	}
}

func (m *DamageMultiplier) scale(f float64) {
	for _, p := range m.coefficients() {
		*p *= f
	}
}

type Skill struct {
	ID                     string
	Name                   string
	Kind                   SkillKind
	MPCost                 float64
	Multiplier             DamageMultiplier
	AlliesAttackGaugeUp    float64
	EnemiesAttackGaugeDown float64
	HealAmount             float64
	IgnoresDefense         bool

	level int
}

func NewAttackSkill(id string, cost float64, dm DamageMultiplier) *Skill {
	return &Skill{ID: id, Name: id, Kind: SkillAttack, MPCost: cost, Multiplier: dm, level: 1}
}

func NewHealSkill(id string, cost, amount float64) *Skill {
	return &Skill{ID: id, Name: id, Kind: SkillHeal, MPCost: cost, HealAmount: amount, level: 1}
}

func (s *Skill) Level() int {
	if s.level < 1 {
		return 1
	}
	return s.level
}

// LevelUp raises the level and grows the heal amount or every damage
// coefficient accordingly.
func (s *Skill) LevelUp() {
	s.level = s.Level() + 1
	switch s.Kind {
	case SkillHeal:
		s.HealAmount *= math.Pow(10, triangular(s.level))
	case SkillAttack:
		s.Multiplier.scale(1.25 * float64(s.level))
	}
}

// Clone returns an independent copy so leveling one owner's skill leaves the
// template untouched.
func (s *Skill) Clone() *Skill {
	cp := *s
	return &cp
}

type SkillBook struct {
	byID  map[string]*Skill
	order []string
}

func NewSkillBook(cfg *config.SkillsConfig) (*SkillBook, error) {
	sb := &SkillBook{byID: map[string]*Skill{}}
	if cfg == nil {
		return sb, nil
	}
	for _, s := range cfg.Skills {
		if s.ID == "" {
			return nil, fmt.Errorf("skill without id")
		}
		if _, dup := sb.byID[s.ID]; dup {
			return nil, fmt.Errorf("skill %s defined twice", s.ID)
		}
		kind, err := ParseSkillKind(s.Kind)
		if err != nil {
			return nil, fmt.Errorf("skill %s: %w", s.ID, err)
		}
		name := s.Name
		if name == "" {
			name = s.ID
		}
		tpl := &Skill{
			ID:                     s.ID,
			Name:                   name,
			Kind:                   kind,
			MPCost:                 s.MPCost,
			AlliesAttackGaugeUp:    s.GaugeUp,
			EnemiesAttackGaugeDown: s.GaugeDown,
			IgnoresDefense:         s.IgnoreDefense,
			level:                  1,
		}
		switch kind {
		case SkillAttack:
			tpl.Multiplier = DamageMultiplier{
				MaxHPSelf:     s.Multiplier.MaxHPSelf,
				MaxHPEnemy:    s.Multiplier.MaxHPEnemy,
				AtkSpeedSelf:  s.Multiplier.AtkSpeedSelf,
				AtkSelf:       s.Multiplier.AtkSelf,
				AtkSpeedEnemy: s.Multiplier.AtkSpeedEnemy,
				AtkEnemy:      s.Multiplier.AtkEnemy,
				DefSelf:       s.Multiplier.DefSelf,
				DefEnemy:      s.Multiplier.DefEnemy,
				MPSelf:        s.Multiplier.MPSelf,
				HPPctSelf:     s.Multiplier.HPPctSelf,
				HPLossSelf:    s.Multiplier.HPLossSelf,
				HPPctEnemy:    s.Multiplier.HPPctEnemy,
				MPEnemy:       s.Multiplier.MPEnemy,
			}
		case SkillHeal:
			tpl.HealAmount = s.Heal
		}
		sb.byID[s.ID] = tpl
		sb.order = append(sb.order, s.ID)
	}
	return sb, nil
}

func (sb *SkillBook) Len() int { return len(sb.order) }

// Instantiate returns fresh copies of the named skills, in order.
func (sb *SkillBook) Instantiate(ids ...string) ([]*Skill, error) {
	out := make([]*Skill, 0, len(ids))
	for _, id := range ids {
		tpl, ok := sb.byID[id]
		if !ok {
			return nil, fmt.Errorf("skill %s: %w", id, ErrUnknownSkill)
		}
		out = append(out, tpl.Clone())
	}
	return out, nil
}
