package combat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skirmish(t *testing.T) *Battle {
	t.Helper()
	knight := newTestCombatant("knight", withSpeed(12), Terra)
	knight.Skills = []*Skill{NewAttackSkill("quake", 30, DamageMultiplier{AtkSelf: 1.8})}
	medic := newTestCombatant("medic", withSpeed(14), Sea)
	medic.Skills = []*Skill{NewHealSkill("mend", 40, 300)}
	brute := newTestCombatant("brute", withSpeed(9), Electric)
	imp := newTestCombatant("imp", withSpeed(18), Flame)
	return newTestBattle(t, newTestTeam(t, "heroes", knight, medic), newTestTeam(t, "monsters", brute, imp))
}

func TestRun_Decides(t *testing.T) {
	b := skirmish(t)
	res, err := Run(context.Background(), b, NewUtilityDecider(Personality{Aggression: 0.5}), RunOptions{Record: true})
	require.NoError(t, err)

	assert.NotEqual(t, Undecided.String(), res.Winner)
	assert.Equal(t, b.Winner().String(), res.Winner)
	assert.Positive(t, res.Turns)
	assert.LessOrEqual(t, res.Turns, DefaultMaxTurns)
	assert.Len(t, res.Survivors, 4)
	require.NotEmpty(t, res.Events)
	assert.Equal(t, "Spawn", res.Events[0].Type)
	assert.Equal(t, "Victory", res.Events[len(res.Events)-1].Type)

	loser := b.team1
	if b.Winner() == Team1Wins {
		loser = b.team2
	}
	assert.True(t, loser.Defeated())
}

func TestRun_SameSeedSameResult(t *testing.T) {
	r1, err := Run(context.Background(), skirmish(t), NewUtilityDecider(Personality{}), RunOptions{})
	require.NoError(t, err)
	r2, err := Run(context.Background(), skirmish(t), NewUtilityDecider(Personality{}), RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

func TestRun_MaxTurnsReleasesCombatants(t *testing.T) {
	b := skirmish(t)
	res, err := Run(context.Background(), b, DeciderFunc(func(*Battle, *Mover) Action {
		return NormalHeal{}
	}), RunOptions{MaxTurns: 5})
	require.NoError(t, err)

	assert.Equal(t, 5, res.Turns)
	assert.Equal(t, Undecided.String(), res.Winner)
	_, err = NewTeam("again", b.team1.Members()...)
	assert.NoError(t, err)
}

func TestRun_RejectedDecisionsFallBack(t *testing.T) {
	tests := []struct {
		name     string
		retries  int
		rejected int
	}{
		{"default", 0, 3 * (1 + DefaultRetries)},
		{"two retries", 2, 3 * 3},
		{"no retries", NoRetries, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asked := 0
			b := skirmish(t)
			res, err := Run(context.Background(), b, DeciderFunc(func(_ *Battle, m *Mover) Action {
				asked++
				return NormalAttack{Target: m.Combatant}
			}), RunOptions{MaxTurns: 3, Retries: tt.retries})
			require.NoError(t, err)

			assert.Equal(t, 3, res.Turns)
			assert.Equal(t, tt.rejected, res.Rejected)
			assert.Equal(t, tt.rejected, asked)
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := Run(ctx, skirmish(t), NewUtilityDecider(Personality{}), RunOptions{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Turns)
}
