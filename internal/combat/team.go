package combat

import "fmt"

const MaxTeamSize = 5

// Team is an ordered party of up to MaxTeamSize unique combatants.
type Team struct {
	Name    string
	members []*Combatant
}

func NewTeam(name string, members ...*Combatant) (*Team, error) {
	if len(members) > MaxTeamSize {
		return nil, fmt.Errorf("team %s has %d members, max %d: %w", name, len(members), MaxTeamSize, ErrTeamCapacityExceeded)
	}
	seen := map[string]bool{}
	for i, c := range members {
		if c == nil {
			return nil, fmt.Errorf("team %s: member #%d is nil", name, i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("team %s: %s: %w", name, c.ID, ErrDuplicateMember)
		}
		seen[c.ID] = true
		if c.battle != nil {
			return nil, fmt.Errorf("team %s: %s: %w", name, c.ID, ErrOwnershipConflict)
		}
	}
	t := &Team{Name: name, members: append([]*Combatant(nil), members...)}
	for _, c := range t.members {
		c.team = t
	}
	return t, nil
}

func (t *Team) Len() int { return len(t.members) }

// Members returns the roster in slot order.
func (t *Team) Members() []*Combatant {
	return append([]*Combatant(nil), t.members...)
}

func (t *Team) Member(slot int) *Combatant {
	if slot < 0 || slot >= len(t.members) {
		return nil
	}
	return t.members[slot]
}

// Slot returns the member index of c, or -1.
func (t *Team) Slot(c *Combatant) int {
	for i, m := range t.members {
		if m == c {
			return i
		}
	}
	return -1
}

func (t *Team) Alive() []*Combatant {
	var out []*Combatant
	for _, m := range t.members {
		if m.IsAlive() {
			out = append(out, m)
		}
	}
	return out
}

// Defeated reports whether every member is at or below zero HP.
func (t *Team) Defeated() bool {
	for _, m := range t.members {
		if m.IsAlive() {
			return false
		}
	}
	return true
}

// Recover fully restores every member between fights.
func (t *Team) Recover() {
	for _, m := range t.members {
		m.Recover()
	}
}
