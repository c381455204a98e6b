package combat

import (
	"fmt"

	"gaugebattle/internal/config"
)

// RuneBook holds modifier templates by id.
type RuneBook struct {
	byID map[string]*Modifier
}

func NewRuneBook(cfg *config.RunesConfig) (*RuneBook, error) {
	rb := &RuneBook{byID: map[string]*Modifier{}}
	if cfg == nil {
		return rb, nil
	}
	for _, r := range cfg.Runes {
		if _, dup := rb.byID[r.ID]; dup {
			return nil, fmt.Errorf("rune %s defined twice", r.ID)
		}
		effects := make([]StatEffect, 0, len(r.Effects))
		for _, ef := range r.Effects {
			st, err := ParseStat(ef.Stat)
			if err != nil {
				return nil, fmt.Errorf("rune %s: %w", r.ID, err)
			}
			effects = append(effects, StatEffect{Stat: st, Percent: ef.Percent, Flat: ef.Flat})
		}
		m, err := NewModifier(r.ID, r.Slot, effects...)
		if err != nil {
			return nil, err
		}
		rb.byID[r.ID] = m
	}
	return rb, nil
}

// Instantiate returns a fresh, unapplied copy of the rune.
func (rb *RuneBook) Instantiate(id string) (*Modifier, error) {
	m, ok := rb.byID[id]
	if !ok {
		return nil, fmt.Errorf("unknown rune %q: %w", id, ErrInvalidModifierState)
	}
	return m.Clone(), nil
}

// Roster builds combatants and teams from their definitions. Every Build
// returns a new combatant, so concurrent battles never share state.
type Roster struct {
	defs   map[string]config.CombatantDef
	skills *SkillBook
	runes  *RuneBook
}

func NewRoster(cc *config.CombatantsConfig, skills *SkillBook, runes *RuneBook) (*Roster, error) {
	r := &Roster{defs: map[string]config.CombatantDef{}, skills: skills, runes: runes}
	if r.skills == nil {
		r.skills = &SkillBook{byID: map[string]*Skill{}}
	}
	if r.runes == nil {
		r.runes = &RuneBook{byID: map[string]*Modifier{}}
	}
	if cc == nil {
		return r, nil
	}
	for _, def := range cc.Combatants {
		if def.ID == "" {
			return nil, fmt.Errorf("combatant without id")
		}
		if _, dup := r.defs[def.ID]; dup {
			return nil, fmt.Errorf("combatant %s defined twice", def.ID)
		}
		r.defs[def.ID] = def
	}
	return r, nil
}

func (r *Roster) Build(id string) (*Combatant, error) {
	def, ok := r.defs[id]
	if !ok {
		return nil, fmt.Errorf("unknown combatant %q", id)
	}
	elems, err := ParseElements(def.Elements)
	if err != nil {
		return nil, fmt.Errorf("combatant %s: %w", id, err)
	}
	skills, err := r.skills.Instantiate(def.Skills...)
	if err != nil {
		return nil, fmt.Errorf("combatant %s: %w", id, err)
	}
	c := NewCombatant(Spec{
		ID:       def.ID,
		Name:     def.Name,
		Elements: elems,
		Rating:   def.Rating,
		Base: StatBlock{
			MaxHP:      def.Stats.MaxHP,
			MaxMP:      def.Stats.MaxMP,
			Attack:     def.Stats.Attack,
			Defense:    def.Stats.Defense,
			Speed:      def.Stats.Speed,
			CritRate:   def.Stats.CritRate,
			CritDamage: def.Stats.CritDamage,
			Resistance: def.Stats.Resistance,
			Accuracy:   def.Stats.Accuracy,
			CritResist: def.Stats.CritResist,
		},
		Awaken: AwakenBonus{
			Percent:    def.Awaken.Percent,
			Speed:      def.Awaken.Speed,
			CritRate:   def.Awaken.CritRate,
			CritDamage: def.Awaken.CritDamage,
			Resistance: def.Awaken.Resistance,
			Accuracy:   def.Awaken.Accuracy,
		},
		Skills:             skills,
		RequiredExperience: def.RequiredExp,
	})
	for _, runeID := range def.Runes {
		m, err := r.runes.Instantiate(runeID)
		if err != nil {
			return nil, fmt.Errorf("combatant %s: %w", id, err)
		}
		if err := c.ApplyModifier(m); err != nil {
			return nil, fmt.Errorf("combatant %s: %w", id, err)
		}
	}
	c.AddExperience(def.Experience)
	c.LevelUp()
	if def.Awakened {
		if err := c.Awaken(); err != nil {
			return nil, err
		}
	}
	c.Recover()
	return c, nil
}

func (r *Roster) BuildTeam(def config.TeamDef) (*Team, error) {
	members := make([]*Combatant, 0, len(def.Members))
	for _, id := range def.Members {
		c, err := r.Build(id)
		if err != nil {
			return nil, err
		}
		members = append(members, c)
	}
	return NewTeam(def.Name, members...)
}

// BuildBattle builds both teams of the encounter and starts a battle.
func (r *Roster) BuildBattle(ec *config.EncounterConfig, opts ...Option) (*Battle, error) {
	if ec == nil {
		return nil, fmt.Errorf("no encounter")
	}
	t1, err := r.BuildTeam(ec.Team1)
	if err != nil {
		return nil, fmt.Errorf("encounter %s: %w", ec.ID, err)
	}
	t2, err := r.BuildTeam(ec.Team2)
	if err != nil {
		return nil, fmt.Errorf("encounter %s: %w", ec.ID, err)
	}
	return NewBattle(t1, t2, opts...)
}

func (r *Roster) Personality(id string) Personality {
	def := r.defs[id]
	return Personality{Aggression: def.Personality.Aggression, Caution: def.Personality.Caution}
}

// Decider plays each combatant with a UtilityDecider tuned to its own
// personality.
func (r *Roster) Decider() Decider {
	byID := map[string]*UtilityDecider{}
	for id := range r.defs {
		byID[id] = NewUtilityDecider(r.Personality(id))
	}
	fallback := NewUtilityDecider(Personality{})
	return DeciderFunc(func(b *Battle, m *Mover) Action {
		if d, ok := byID[m.Combatant.ID]; ok {
			return d.Decide(b, m)
		}
		return fallback.Decide(b, m)
	})
}
