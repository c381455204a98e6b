package combat

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func baseStats() StatBlock {
	return StatBlock{
		MaxHP:      1000,
		MaxMP:      120,
		Attack:     500,
		Defense:    300,
		Speed:      10,
		CritRate:   0.3,
		CritDamage: 2,
		Resistance: 0.4,
		Accuracy:   0.2,
		CritResist: 0.1,
	}
}

func newTestCombatant(id string, stats StatBlock, elems ...Element) *Combatant {
	return NewCombatant(Spec{ID: id, Rating: 1, Base: stats, Elements: elems})
}

func newTestTeam(t *testing.T, name string, members ...*Combatant) *Team {
	t.Helper()
	team, err := NewTeam(name, members...)
	require.NoError(t, err)
	return team
}

func newTestBattle(t *testing.T, t1, t2 *Team) *Battle {
	t.Helper()
	b, err := NewBattle(t1, t2, WithRand(testRand()))
	require.NoError(t, err)
	return b
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// snapshot captures everything an action may change on a combatant.
type snapshot struct {
	stats         StatBlock
	hp, mp, gauge float64
}

func snap(c *Combatant) snapshot {
	return snapshot{stats: c.stats, hp: c.hp, mp: c.mp, gauge: c.gauge}
}
