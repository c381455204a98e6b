package combat

// Decider picks the action for the current mover.
type Decider interface {
	Decide(b *Battle, m *Mover) Action
}

type DeciderFunc func(b *Battle, m *Mover) Action

func (f DeciderFunc) Decide(b *Battle, m *Mover) Action { return f(b, m) }

// Personality weights the utility scores. Both values are expected in [0, 1].
type Personality struct {
	Aggression float64 `json:"aggression"`
	Caution    float64 `json:"caution"`
}

// UtilityDecider scores every legal action and plays the best one. Equal
// scores are broken with the battle's random source.
type UtilityDecider struct {
	Personality Personality
	LowHPPct    float64
}

func NewUtilityDecider(p Personality) *UtilityDecider {
	return &UtilityDecider{Personality: p, LowHPPct: 0.3}
}

type candidate struct {
	action Action
	score  float64
}

func (d *UtilityDecider) isLow(c *Combatant) float64 {
	if c.HPFraction() <= d.LowHPPct {
		return 1
	}
	return 0
}

func killShare(dmg float64, t *Combatant) (kill, share float64) {
	if t.hp <= 0 {
		return 0, 0
	}
	if dmg >= t.hp {
		return 1, 1
	}
	return 0, dmg / t.hp
}

func (d *UtilityDecider) scoreAttack(u, t *Combatant) float64 {
	kill, share := killShare(NormalAttackDamage(u, t), t)
	agg, cau := d.Personality.Aggression, d.Personality.Caution
	return (80*kill+40*share)*(1+0.10*agg) - 8*cau*d.isLow(u)
}

// expectedSkillDamage averages the critical roll instead of rolling it.
func expectedSkillDamage(u, t *Combatant, sk *Skill) float64 {
	dmg := RawSkillDamage(u, t, sk.Multiplier)
	if !sk.IgnoresDefense {
		dmg *= Mitigation(t.stats.Defense)
	}
	dmg *= ElementalMultiplier(u.Elements, t.Elements)
	chance := min(CritChance(u, t), 1)
	return dmg * (1 + chance*(u.stats.CritDamage-1))
}

func (d *UtilityDecider) scoreSkillDamage(u, t *Combatant, sk *Skill) float64 {
	kill, share := killShare(expectedSkillDamage(u, t, sk), t)
	agg, cau := d.Personality.Aggression, d.Personality.Caution
	return (100*kill+50*share+10*sk.EnemiesAttackGaugeDown)*(1+0.15*agg) - 10*cau*d.isLow(u)
}

func (d *UtilityDecider) scoreSkillHeal(t *Combatant, sk *Skill) float64 {
	if t.stats.MaxHP <= 0 || t.hp >= t.stats.MaxHP {
		return 0
	}
	missing := t.stats.MaxHP - t.hp
	restored := min(max(sk.HealAmount, 0), missing) / t.stats.MaxHP
	return (60*restored+10*sk.AlliesAttackGaugeUp)*(1+0.2*d.Personality.Caution) + 20*d.isLow(t)
}

func (d *UtilityDecider) scoreNormalHeal(u *Combatant) float64 {
	if d.isLow(u) == 0 {
		return 0
	}
	return 40 * NormalHealFraction * (1 + d.Personality.Caution)
}

func (d *UtilityDecider) candidates(b *Battle, u *Combatant) []candidate {
	var out []candidate
	enemies := b.Enemies(u)
	allies := b.Allies(u)
	for _, t := range enemies {
		out = append(out, candidate{NormalAttack{Target: t}, d.scoreAttack(u, t)})
	}
	for i, sk := range u.Skills {
		if sk.MPCost > u.mp {
			continue
		}
		switch sk.Kind {
		case SkillAttack:
			for _, t := range enemies {
				out = append(out, candidate{UseSkill{Skill: i, Target: t}, d.scoreSkillDamage(u, t, sk)})
			}
		case SkillHeal:
			for _, t := range allies {
				if s := d.scoreSkillHeal(t, sk); s > 0 {
					out = append(out, candidate{UseSkill{Skill: i, Target: t}, s})
				}
			}
		}
	}
	if s := d.scoreNormalHeal(u); s > 0 {
		out = append(out, candidate{NormalHeal{}, s})
	}
	return out
}

func (d *UtilityDecider) Decide(b *Battle, m *Mover) Action {
	cands := d.candidates(b, m.Combatant)
	if len(cands) == 0 {
		return NormalHeal{}
	}
	best := cands[0].score
	for _, c := range cands[1:] {
		best = max(best, c.score)
	}
	var top []Action
	for _, c := range cands {
		if c.score == best {
			top = append(top, c.action)
		}
	}
	if len(top) == 1 {
		return top[0]
	}
	return top[b.Rand().IntN(len(top))]
}

// FallbackAction is always legal for a living mover: a normal attack on the
// first living enemy, or a normal heal when none is left.
func FallbackAction(b *Battle, m *Mover) Action {
	if enemies := b.Enemies(m.Combatant); len(enemies) > 0 {
		return NormalAttack{Target: enemies[0]}
	}
	return NormalHeal{}
}
