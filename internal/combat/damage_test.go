package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMitigation(t *testing.T) {
	assert.Equal(t, 1.0, Mitigation(0))
	assert.InDelta(t, 1e8/(1e8+31500), Mitigation(9000), 1e-15)
	assert.Less(t, Mitigation(1e9), Mitigation(1e6))
}

func TestNormalAttackDamage_ZeroDefenseIsAttack(t *testing.T) {
	stats := baseStats()
	stats.Attack = 9000
	attacker := newTestCombatant("a", stats)
	stats.Defense = 0
	defender := newTestCombatant("d", stats)

	assert.Equal(t, 9000.0, NormalAttackDamage(attacker, defender))
}

func TestNormalAttackDamage_Scenario(t *testing.T) {
	stats := baseStats()
	stats.Attack, stats.Defense = 9000, 9000
	attacker := newTestCombatant("a", stats)
	defender := newTestCombatant("d", stats)

	want := 9000 * 1e8 / (1e8 + 3.5*9000)
	assert.InDelta(t, want, NormalAttackDamage(attacker, defender), 1e-9)
	assert.InDelta(t, 8997.17, NormalAttackDamage(attacker, defender), 0.01)
}

func TestNormalAttackDamage_Buffs(t *testing.T) {
	stats := baseStats()
	stats.Defense = 0
	attacker := newTestCombatant("a", stats)
	defender := newTestCombatant("d", stats)

	attacker.Buffs = Buffs{AttackUp: 50, AttackDown: 20}
	defender.Buffs = Buffs{DefenseDown: 30}
	assert.InDelta(t, 500*1.3*0.7, NormalAttackDamage(attacker, defender), 1e-9)
}

func TestRawSkillDamage(t *testing.T) {
	user := newTestCombatant("u", baseStats())
	enemyStats := baseStats()
	enemyStats.MaxHP = 2000
	enemyStats.Attack = 800
	enemyStats.Speed = 20
	target := newTestCombatant("t", enemyStats)

	tests := []struct {
		name string
		dm   DamageMultiplier
		want float64
	}{
		{"self attack", DamageMultiplier{AtkSelf: 2}, 1000},
		{"self max hp", DamageMultiplier{MaxHPSelf: 0.1}, 100},
		{"enemy max hp", DamageMultiplier{MaxHPEnemy: 0.1}, 200},
		{"self speed", DamageMultiplier{AtkSpeedSelf: 0.1}, 500 * 0.1 * 10},
		{"enemy attack and speed", DamageMultiplier{AtkEnemy: 1, AtkSpeedEnemy: 0.05}, 800 * (0.05*20 + 1)},
		{"defenses", DamageMultiplier{DefSelf: 1, DefEnemy: 0.5}, 300 + 150},
		{"self mp", DamageMultiplier{MPSelf: 1}, 120},
		{"full hp bonus", DamageMultiplier{AtkSelf: 1, HPPctSelf: 0.5}, 500 * 1.5},
		{"no loss at full hp", DamageMultiplier{AtkSelf: 1, HPLossSelf: 3}, 500},
		{"enemy hp and mp factor", DamageMultiplier{AtkSelf: 1, HPPctEnemy: 1, MPEnemy: 0.01}, 500 * (1 + 1 + 1.2)},
		{"zero multiplier", DamageMultiplier{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RawSkillDamage(user, target, tt.dm), 1e-9)
		})
	}
}

func TestRawSkillDamage_HPLoss(t *testing.T) {
	user := newTestCombatant("u", baseStats())
	target := newTestCombatant("t", baseStats())
	user.hp = 250 // 75% lost

	got := RawSkillDamage(user, target, DamageMultiplier{AtkSelf: 1, HPLossSelf: 2})
	assert.InDelta(t, 500*(1+0.75*2), got, 1e-9)
}

func TestCritChance(t *testing.T) {
	a := newTestCombatant("a", baseStats())
	d := newTestCombatant("d", baseStats())
	assert.InDelta(t, 0.2, CritChance(a, d), 1e-12)

	d.stats.CritResist = 1
	assert.Zero(t, CritChance(a, d))
}

func TestSkillDamage_CritFrequency(t *testing.T) {
	stats := baseStats()
	stats.CritRate = 0.15
	stats.CritResist = 0
	user := newTestCombatant("u", stats)
	target := newTestCombatant("t", stats)
	sk := NewAttackSkill("jab", 0, DamageMultiplier{AtkSelf: 1})
	rng := testRand()

	const trials = 20000
	crits := 0
	for i := 0; i < trials; i++ {
		if SkillDamage(rng, user, target, sk).Crit {
			crits++
		}
	}
	assert.InDelta(t, 0.15, float64(crits)/trials, 0.01)
}

func TestSkillDamage_CritElementAndDefense(t *testing.T) {
	stats := baseStats()
	stats.CritRate = 1.0
	stats.CritResist = 0
	user := newTestCombatant("u", stats, Terra)
	target := newTestCombatant("t", stats, Electric)
	sk := NewAttackSkill("quake", 0, DamageMultiplier{AtkSelf: 1})

	hit := SkillDamage(testRand(), user, target, sk)
	assert.True(t, hit.Crit)
	assert.Equal(t, 2.0, hit.Element)
	assert.InDelta(t, 500*Mitigation(300)*2*2, hit.Damage, 1e-9)

	sk.IgnoresDefense = true
	hit = SkillDamage(testRand(), user, target, sk)
	assert.InDelta(t, 500*2*2.0, hit.Damage, 1e-9)
}

func TestSkillDamage_NoCritWhenResisted(t *testing.T) {
	stats := baseStats()
	stats.CritResist = 1
	user := newTestCombatant("u", stats)
	target := newTestCombatant("t", stats)
	sk := NewAttackSkill("jab", 0, DamageMultiplier{AtkSelf: 1})
	rng := testRand()
	for i := 0; i < 1000; i++ {
		assert.False(t, SkillDamage(rng, user, target, sk).Crit)
	}
}

func TestSkillLevelUp(t *testing.T) {
	atk := NewAttackSkill("quake", 10, DamageMultiplier{AtkSelf: 1, MaxHPEnemy: 0.2, MPEnemy: 0.01})
	atk.LevelUp()
	assert.Equal(t, 2, atk.Level())
	assert.InDelta(t, 2.5, atk.Multiplier.AtkSelf, 1e-12)
	assert.InDelta(t, 0.5, atk.Multiplier.MaxHPEnemy, 1e-12)
	assert.InDelta(t, 0.025, atk.Multiplier.MPEnemy, 1e-12)
	assert.Zero(t, atk.Multiplier.DefSelf)

	atk.LevelUp()
	assert.InDelta(t, 2.5*3.75, atk.Multiplier.AtkSelf, 1e-12)

	heal := NewHealSkill("mend", 10, 100)
	heal.LevelUp()
	assert.InDelta(t, 1000, heal.HealAmount, 1e-9) // 10^triangular(2)
	heal.LevelUp()
	assert.InDelta(t, 1e6, heal.HealAmount, 1e-3) // * 10^triangular(3)
	assert.Zero(t, heal.Multiplier)
}
