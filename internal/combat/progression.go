package combat

import (
	"fmt"
	"math"
)

const (
	levelSpeedBonus  = 2.0
	evolveSpeedBonus = 3.0
)

// LevelUp consumes as many level thresholds as the current experience allows
// and returns the number of levels gained. Modifiers are stripped before the
// base stats are scaled and reapplied afterwards.
func (c *Combatant) LevelUp() int {
	gained := 0
	for c.experience >= c.required && c.level < c.maxLevel {
		c.level++
		c.required *= math.Pow(10, float64(c.level))
		scale := triangular(c.level)
		c.rebase(func(b *StatBlock) {
			b.Attack *= scale
			b.MaxHP *= scale
			b.MaxMP *= scale
			b.Defense *= scale
			b.Speed += levelSpeedBonus
		})
		c.restore()
		gained++
	}
	return gained
}

// Awaken applies the awaken bonus. It succeeds once per combatant.
func (c *Combatant) Awaken() error {
	if c.awakened {
		return fmt.Errorf("awaken %s: already awakened: %w", c.ID, ErrNotEligible)
	}
	bonus := c.awaken
	scale := 1 + bonus.Percent/100
	c.rebase(func(b *StatBlock) {
		b.MaxHP *= scale
		b.MaxMP *= scale
		b.Attack *= scale
		b.Defense *= scale
		b.Speed += bonus.Speed
		b.CritRate += bonus.CritRate
		b.CritDamage += bonus.CritDamage
		b.Resistance += bonus.Resistance
		b.Accuracy += bonus.Accuracy
	})
	c.awakened = true
	c.restore()
	return nil
}

// CanEvolve reports whether Evolve would succeed.
func (c *Combatant) CanEvolve() bool {
	return c.level == c.maxLevel && c.rating < MaxRating && c.experience >= c.required
}

// Evolve raises the rating by one and restarts leveling at level 1.
// Experience is reset with the level.
func (c *Combatant) Evolve() error {
	if !c.CanEvolve() {
		return fmt.Errorf("evolve %s (rating %d, level %d/%d): %w",
			c.ID, c.rating, c.level, c.maxLevel, ErrNotEligible)
	}
	c.rating++
	c.level = 1
	c.experience = 0
	c.required = c.baseRequired
	c.maxLevel = maxLevelFor(c.rating)
	scale := triangular(1) + 1
	c.rebase(func(b *StatBlock) {
		b.Attack *= scale
		b.MaxHP *= scale
		b.MaxMP *= scale
		b.Defense *= scale
		b.Speed += evolveSpeedBonus
	})
	c.restore()
	return nil
}
