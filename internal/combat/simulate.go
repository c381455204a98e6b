package combat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

const (
	DefaultMaxTurns = 500
	DefaultRetries  = 1

	// NoRetries plays the fallback right after the first rejected decision.
	NoRetries = -1
)

type RunOptions struct {
	// MaxTurns bounds the number of resolved actions. Zero means DefaultMaxTurns.
	MaxTurns int
	// Retries is how many times a rejected decision is re-prompted before the
	// fallback action is played. Zero means DefaultRetries, see NoRetries.
	Retries int
	Record  bool
	Logger  *slog.Logger
}

type SimResult struct {
	Winner    string             `json:"winner"`
	Turns     int                `json:"turns"`
	Ticks     int                `json:"ticks"`
	Crits     int                `json:"crits"`
	Rejected  int                `json:"rejected"`
	Survivors []Survivor         `json:"survivors"`
	DamageBy  map[string]float64 `json:"damage_by,omitempty"`
	HealingBy map[string]float64 `json:"healing_by,omitempty"`
	Events    []Event            `json:"events,omitempty"`
}

// Run drives b until it is decided, stalls, hits MaxTurns or ctx is done.
// An undecided battle is closed before returning so its combatants are free.
func Run(ctx context.Context, b *Battle, d Decider, opts RunOptions) (SimResult, error) {
	maxTurns := opts.MaxTurns
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	retries := opts.Retries
	switch {
	case retries == 0:
		retries = DefaultRetries
	case retries < 0:
		retries = 0
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	defer b.Close()

	res := SimResult{
		DamageBy:  map[string]float64{},
		HealingBy: map[string]float64{},
	}
	emit := func(ev Event) {
		if opts.Record {
			res.Events = append(res.Events, ev)
		}
	}

	b.each(func(c *Combatant, side, slot int) {
		emit(Event{T: 0, Type: "Spawn", Payload: map[string]any{
			"id": c.ID, "side": side, "slot": slot,
			"hp": c.hp, "max_hp": c.stats.MaxHP, "mp": c.mp, "speed": c.stats.Speed,
		}})
	})

	var runErr error
	for res.Turns < maxTurns {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		m := b.Advance()
		if m == nil {
			break
		}
		out, err := resolveWithRetry(b, d, m, retries, &res)
		if err != nil {
			runErr = fmt.Errorf("turn %d, %s: %w", res.Turns+1, m.Combatant.ID, err)
			break
		}
		res.Turns++
		actor := m.Combatant
		res.DamageBy[actor.ID] += out.Damage
		res.HealingBy[actor.ID] += out.Healed
		if out.Crit {
			res.Crits++
		}
		payload := map[string]any{
			"actor": actor.ID, "kind": out.Kind, "target": out.Target.ID,
			"hp": out.Target.hp, "mp": actor.mp,
		}
		if out.Skill != "" {
			payload["skill"] = out.Skill
		}
		if out.Damage > 0 {
			payload["dmg"] = out.Damage
			payload["crit"] = out.Crit
			payload["element"] = out.Element
		}
		if out.Healed > 0 {
			payload["healed"] = out.Healed
		}
		emit(Event{T: b.ticks, Turn: res.Turns, Type: "Action", Payload: payload})
		log.Debug("action resolved",
			"turn", res.Turns,
			"actor", actor.ID,
			"kind", out.Kind,
			"skill", out.Skill,
			"target", out.Target.ID,
			"damage", out.Damage,
			"healed", out.Healed,
			"crit", out.Crit)
		if !out.Target.IsAlive() {
			emit(Event{T: b.ticks, Turn: res.Turns, Type: "Down", Payload: map[string]any{"id": out.Target.ID}})
		}
	}

	res.Winner = b.winner.String()
	res.Ticks = b.ticks
	if b.winner != Undecided {
		emit(Event{T: b.ticks, Turn: res.Turns, Type: "Victory", Payload: map[string]any{
			"winner": res.Winner, "team": b.WinningTeam().Name,
		}})
	}
	for _, t := range []*Team{b.team1, b.team2} {
		for _, c := range t.members {
			res.Survivors = append(res.Survivors, Survivor{
				ID: c.ID, Name: c.Name, Team: t.Name,
				HP: c.hp, MaxHP: c.stats.MaxHP, MP: c.mp, MaxMP: c.stats.MaxMP,
				Alive: c.IsAlive(),
			})
		}
	}
	log.Debug("battle finished", "winner", res.Winner, "turns", res.Turns, "ticks", res.Ticks)
	return res, runErr
}

// resolveWithRetry asks d once plus up to retries more times after a rejected
// action, then plays the fallback action.
func resolveWithRetry(b *Battle, d Decider, m *Mover, retries int, res *SimResult) (Outcome, error) {
	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		out, err := b.Resolve(m, d.Decide(b, m))
		if err == nil {
			return out, nil
		}
		if errors.Is(err, ErrBattleOver) || errors.Is(err, ErrNotYourTurn) {
			return Outcome{}, err
		}
		res.Rejected++
		lastErr = err
	}
	out, err := b.Resolve(m, FallbackAction(b, m))
	if err != nil {
		return Outcome{}, errors.Join(lastErr, err)
	}
	return out, nil
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
