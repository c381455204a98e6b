package combat

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// GaugeRate is the gauge gained per tick for each point of speed.
const GaugeRate = 0.07

type Result int

const (
	Undecided Result = iota
	Team1Wins
	Team2Wins
)

func (r Result) String() string {
	switch r {
	case Team1Wins:
		return "team1"
	case Team2Wins:
		return "team2"
	}
	return "undecided"
}

// Mover identifies the combatant whose turn it is.
type Mover struct {
	Combatant *Combatant
	Side      int // 1 or 2
	Slot      int
}

type Option func(*Battle)

// WithRand sets the random source for critical rolls.
func WithRand(r *rand.Rand) Option {
	return func(b *Battle) { b.rng = r }
}

// Battle schedules turns between two teams with attack gauges and resolves
// actions until one side is defeated.
type Battle struct {
	team1, team2 *Team
	winner       Result
	current      *Mover
	rng          *rand.Rand
	ticks        int
	closed       bool
}

func NewBattle(t1, t2 *Team, opts ...Option) (*Battle, error) {
	if t1 == nil || t2 == nil {
		return nil, fmt.Errorf("new battle: missing team")
	}
	if t1 == t2 {
		return nil, fmt.Errorf("new battle: team %s on both sides: %w", t1.Name, ErrOwnershipConflict)
	}
	for _, t := range []*Team{t1, t2} {
		if len(t.Alive()) == 0 {
			return nil, fmt.Errorf("new battle: team %s has no living members: %w", t.Name, ErrNotEligible)
		}
		for _, c := range t.members {
			if c.team != t || c.battle != nil {
				return nil, fmt.Errorf("new battle: %s in team %s: %w", c.ID, t.Name, ErrOwnershipConflict)
			}
		}
	}
	b := &Battle{team1: t1, team2: t2}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	b.each(func(c *Combatant, _, _ int) { c.battle = b })
	return b, nil
}

func (b *Battle) Team1() *Team     { return b.team1 }
func (b *Battle) Team2() *Team     { return b.team2 }
func (b *Battle) Winner() Result   { return b.winner }
func (b *Battle) Current() *Mover  { return b.current }
func (b *Battle) Ticks() int       { return b.ticks }
func (b *Battle) Rand() *rand.Rand { return b.rng }
func (b *Battle) Decided() bool    { return b.winner != Undecided }

// WinningTeam returns the winning team, or nil while undecided.
func (b *Battle) WinningTeam() *Team {
	switch b.winner {
	case Team1Wins:
		return b.team1
	case Team2Wins:
		return b.team2
	}
	return nil
}

func (b *Battle) each(fn func(c *Combatant, side, slot int)) {
	for i, c := range b.team1.members {
		fn(c, 1, i)
	}
	for i, c := range b.team2.members {
		fn(c, 2, i)
	}
}

// Side returns 1 or 2 for participants, 0 otherwise.
func (b *Battle) Side(c *Combatant) int {
	switch {
	case c == nil || c.battle != b:
		return 0
	case c.team == b.team1:
		return 1
	case c.team == b.team2:
		return 2
	}
	return 0
}

// Enemies returns the living members of the opposing team.
func (b *Battle) Enemies(c *Combatant) []*Combatant {
	switch b.Side(c) {
	case 1:
		return b.team2.Alive()
	case 2:
		return b.team1.Alive()
	}
	return nil
}

// Allies returns the living members of c's team, c included.
func (b *Battle) Allies(c *Combatant) []*Combatant {
	switch b.Side(c) {
	case 1:
		return b.team1.Alive()
	case 2:
		return b.team2.Alive()
	}
	return nil
}

// Tick advances every living combatant's gauge by speed*GaugeRate.
func (b *Battle) Tick() { b.step(1) }

// step advances the battle by n ticks at once.
func (b *Battle) step(n int) {
	b.ticks += n
	b.each(func(c *Combatant, _, _ int) {
		if c.IsAlive() {
			c.gauge += float64(n) * c.gaugeRate()
		}
	})
}

// ticksToFull returns how many ticks c needs to reach FullGauge, and false
// when it cannot get there within limit ticks.
func ticksToFull(c *Combatant, limit int) (int, bool) {
	rate := c.gaugeRate()
	if !(rate > 0) {
		return 0, false
	}
	need := math.Ceil((FullGauge - c.gauge) / rate)
	if math.IsNaN(need) || need >= float64(limit) {
		return 0, false
	}
	n := max(int(need), 1)
	for n > 1 && c.gauge+float64(n-1)*rate >= FullGauge {
		n--
	}
	for c.gauge+float64(n)*rate < FullGauge {
		if n >= limit {
			return 0, false
		}
		n++
	}
	return n, true
}

// nextFill returns the number of ticks until the first living gauge fills.
func (b *Battle) nextFill() (int, bool) {
	limit := math.MaxInt - b.ticks
	best, found := 0, false
	b.each(func(c *Combatant, _, _ int) {
		if !c.IsAlive() {
			return
		}
		if n, ok := ticksToFull(c, limit); ok && (!found || n < best) {
			best, found = n, true
		}
	})
	return best, found
}

// selectFull returns the living combatant with the strictly greatest gauge at
// or above FullGauge. Ties go to team 1, then to the lower slot.
func (b *Battle) selectFull() *Mover {
	var best *Mover
	b.each(func(c *Combatant, side, slot int) {
		if !c.IsAlive() || c.gauge < FullGauge {
			return
		}
		if best == nil || c.gauge > best.Combatant.gauge {
			best = &Mover{Combatant: c, Side: side, Slot: slot}
		}
	})
	return best
}

// Advance ticks until some combatant's gauge is full and returns it as the
// current mover. A pending mover is returned unchanged. It returns nil once
// the battle is decided, or when no living gauge can fill within the tick
// counter's range.
func (b *Battle) Advance() *Mover {
	if b.winner != Undecided || b.closed {
		return nil
	}
	if b.current != nil {
		return b.current
	}
	for {
		if m := b.selectFull(); m != nil {
			b.current = m
			return m
		}
		n, ok := b.nextFill()
		if !ok {
			return nil
		}
		b.step(n)
	}
}

func actionTarget(a Action) *Combatant {
	switch act := a.(type) {
	case NormalAttack:
		return act.Target
	case UseSkill:
		return act.Target
	}
	return nil
}

// Resolve applies the current mover's action. A rejected action changes
// nothing and the mover keeps the turn.
func (b *Battle) Resolve(m *Mover, a Action) (Outcome, error) {
	if b.winner != Undecided || b.closed {
		return Outcome{}, ErrBattleOver
	}
	if m == nil || b.current == nil || m.Combatant != b.current.Combatant {
		return Outcome{}, ErrNotYourTurn
	}
	if t := actionTarget(a); t != nil && t.battle != b {
		return Outcome{}, fmt.Errorf("%s is not in this battle: %w", t.ID, ErrIllegalTarget)
	}
	user := b.current.Combatant
	out, err := resolveAction(b.rng, user, a)
	if err != nil {
		return Outcome{}, err
	}
	user.gauge = MinGauge
	user.regenMP()
	b.current = nil
	b.checkWinner()
	return out, nil
}

func (b *Battle) checkWinner() {
	switch {
	case b.team2.Defeated():
		b.winner = Team1Wins
	case b.team1.Defeated():
		b.winner = Team2Wins
	default:
		return
	}
	b.Close()
}

// Close releases the participants so they can join other teams and battles.
// A decided battle closes itself.
func (b *Battle) Close() {
	if b.closed {
		return
	}
	b.closed = true
	b.current = nil
	b.each(func(c *Combatant, _, _ int) {
		if c.battle == b {
			c.battle = nil
		}
	})
}
