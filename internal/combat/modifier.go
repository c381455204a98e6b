package combat

import "fmt"

// MaxModifierSlots is the number of rune slots on a combatant.
const MaxModifierSlots = 6

// StatEffect scales a stat by Percent then adds Flat.
type StatEffect struct {
	Stat    Stat    `json:"stat"`
	Percent float64 `json:"percent"`
	Flat    float64 `json:"flat"`
}

// Modifier is a rune-like, reversible stat adjustment bound to a slot.
// An instance can be applied to at most one combatant at a time.
type Modifier struct {
	ID      string       `json:"id"`
	Slot    int          `json:"slot"`
	Effects []StatEffect `json:"effects"`

	owner *Combatant
}

func NewModifier(id string, slot int, effects ...StatEffect) (*Modifier, error) {
	if slot < 0 || slot >= MaxModifierSlots {
		return nil, fmt.Errorf("modifier %s: slot %d out of range: %w", id, slot, ErrInvalidModifierState)
	}
	for _, ef := range effects {
		if ef.Percent <= -100 {
			return nil, fmt.Errorf("modifier %s: percent %.2f on %s is not invertible: %w", id, ef.Percent, ef.Stat, ErrInvalidModifierState)
		}
	}
	return &Modifier{ID: id, Slot: slot, Effects: append([]StatEffect(nil), effects...)}, nil
}

func (m *Modifier) Applied() bool { return m.owner != nil }

// Clone returns an unapplied copy of m.
func (m *Modifier) Clone() *Modifier {
	return &Modifier{ID: m.ID, Slot: m.Slot, Effects: append([]StatEffect(nil), m.Effects...)}
}

func (m *Modifier) applyTo(b *StatBlock) {
	for _, ef := range m.Effects {
		p := b.field(ef.Stat)
		if p == nil {
			continue
		}
		*p = *p*(1+ef.Percent/100) + ef.Flat
	}
	b.normalize()
}

func (m *Modifier) revertFrom(b *StatBlock) {
	for i := len(m.Effects) - 1; i >= 0; i-- {
		ef := m.Effects[i]
		p := b.field(ef.Stat)
		if p == nil {
			continue
		}
		*p = (*p - ef.Flat) / (1 + ef.Percent/100)
	}
	b.normalize()
}

// ApplyModifier applies m in its slot, reverting whatever occupied the slot
// first. m must not be applied anywhere already. Current HP and MP are capped
// at the new maximums.
func (c *Combatant) ApplyModifier(m *Modifier) error {
	if m == nil {
		return fmt.Errorf("apply nil modifier: %w", ErrInvalidModifierState)
	}
	if m.Applied() {
		return fmt.Errorf("modifier %s already applied to %s: %w", m.ID, m.owner.ID, ErrInvalidModifierState)
	}
	if m.Slot < 0 || m.Slot >= MaxModifierSlots {
		return fmt.Errorf("modifier %s: slot %d out of range: %w", m.ID, m.Slot, ErrInvalidModifierState)
	}
	if c.modifiers[m.Slot] != nil {
		if err := c.RevertModifier(m.Slot); err != nil {
			return err
		}
	}
	m.applyTo(&c.stats)
	m.owner = c
	c.modifiers[m.Slot] = m
	c.order = append(c.order, m.Slot)
	c.clampCurrent()
	return nil
}

// RevertModifier removes the modifier in slot and undoes its effects.
func (c *Combatant) RevertModifier(slot int) error {
	if slot < 0 || slot >= MaxModifierSlots {
		return fmt.Errorf("revert slot %d out of range: %w", slot, ErrInvalidModifierState)
	}
	m := c.modifiers[slot]
	if m == nil {
		return fmt.Errorf("revert empty slot %d on %s: %w", slot, c.ID, ErrInvalidModifierState)
	}
	m.revertFrom(&c.stats)
	m.owner = nil
	c.modifiers[slot] = nil
	c.dropOrder(slot)
	c.clampCurrent()
	return nil
}

// Modifier returns the modifier in slot, or nil.
func (c *Combatant) Modifier(slot int) *Modifier {
	if slot < 0 || slot >= MaxModifierSlots {
		return nil
	}
	return c.modifiers[slot]
}

// Modifiers returns the applied modifiers keyed by slot.
func (c *Combatant) Modifiers() map[int]*Modifier {
	out := make(map[int]*Modifier, len(c.order))
	for _, slot := range c.order {
		out[slot] = c.modifiers[slot]
	}
	return out
}

func (c *Combatant) dropOrder(slot int) {
	for i, s := range c.order {
		if s == slot {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// rebase strips every modifier in reverse application order, runs fn on the
// bare stats, then reapplies the modifiers in their original slots and order.
func (c *Combatant) rebase(fn func(b *StatBlock)) {
	order := append([]int(nil), c.order...)
	for i := len(order) - 1; i >= 0; i-- {
		c.modifiers[order[i]].revertFrom(&c.stats)
	}
	fn(&c.stats)
	c.stats.normalize()
	for _, slot := range order {
		c.modifiers[slot].applyTo(&c.stats)
	}
}
