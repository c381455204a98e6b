package combat

import "math/rand/v2"

const (
	mitigationBase  = 1e8
	mitigationSlope = 3.5

	NormalHealFraction = 0.15
)

// Mitigation is the share of raw damage that survives the given defense.
func Mitigation(defense float64) float64 {
	return mitigationBase / (mitigationBase + mitigationSlope*defense)
}

// NormalAttackDamage applies attacker/defender buffs and defense mitigation to
// the attacker's attack stat.
func NormalAttackDamage(attacker, defender *Combatant) float64 {
	raw := attacker.stats.Attack *
		(1 + attacker.Buffs.AttackUp/100 - attacker.Buffs.AttackDown/100) *
		(1 + defender.Buffs.DefenseUp/100 - defender.Buffs.DefenseDown/100)
	return raw * Mitigation(defender.stats.Defense)
}

func NormalHealAmount(c *Combatant) float64 {
	return NormalHealFraction * c.stats.MaxHP
}

// RawSkillDamage evaluates dm for the user/target pair before mitigation,
// element and critical modifiers.
func RawSkillDamage(user, target *Combatant, dm DamageMultiplier) float64 {
	self, enemy := user.stats, target.stats
	sum := self.MaxHP*dm.MaxHPSelf +
		enemy.MaxHP*dm.MaxHPEnemy +
		self.Attack*(dm.AtkSpeedSelf*self.Speed+dm.AtkSelf) +
		enemy.Attack*(dm.AtkSpeedEnemy*enemy.Speed+dm.AtkEnemy) +
		self.Defense*dm.DefSelf +
		enemy.Defense*dm.DefEnemy +
		self.MaxMP*dm.MPSelf
	selfHP := user.HPFraction()
	enemyHP := target.HPFraction()
	return sum *
		(1 + selfHP*dm.HPPctSelf) *
		(1 + (1-selfHP)*dm.HPLossSelf) *
		(1 + enemyHP*dm.HPPctEnemy + enemy.MaxMP*dm.MPEnemy)
}

// CritChance is the user's crit rate minus the target's crit resist, floored at 0.
func CritChance(user, target *Combatant) float64 {
	return max(user.stats.CritRate-target.stats.CritResist, 0)
}

func rollCrit(rng *rand.Rand, chance float64) bool {
	if chance <= 0 {
		return false
	}
	if rng == nil {
		return rand.Float64() < chance
	}
	return rng.Float64() < chance
}

// SkillHit is the result of one attack-skill damage computation.
type SkillHit struct {
	Damage  float64
	Element float64
	Crit    bool
}

// SkillDamage combines raw damage, mitigation, the elemental multiplier and a
// critical roll.
func SkillDamage(rng *rand.Rand, user, target *Combatant, sk *Skill) SkillHit {
	dmg := RawSkillDamage(user, target, sk.Multiplier)
	if !sk.IgnoresDefense {
		dmg *= Mitigation(target.stats.Defense)
	}
	elem := ElementalMultiplier(user.Elements, target.Elements)
	dmg *= elem
	crit := rollCrit(rng, CritChance(user, target))
	if crit {
		dmg *= user.stats.CritDamage
	}
	return SkillHit{Damage: dmg, Element: elem, Crit: crit}
}
