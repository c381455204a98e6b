package combat

import (
	"fmt"
	"strings"
)

type Element int

const (
	Terra Element = iota
	Flame
	Sea
	Nature
	Electric
	Ice
	Metal
	Dark
	Light
	War
	Pure
	Legend
	Primal
	Wind

	// ancillary elements never change damage
	Beast
	Magic
	Chaos
	Time
	Spirit
	Void

	elementCount
)

var elementNames = [elementCount]string{
	"terra", "flame", "sea", "nature", "electric", "ice", "metal", "dark", "light", "war",
	"pure", "legend", "primal", "wind",
	"beast", "magic", "chaos", "time", "spirit", "void",
}

func (e Element) String() string {
	if e < 0 || e >= elementCount {
		return fmt.Sprintf("element(%d)", int(e))
	}
	return elementNames[e]
}

// Ancillary reports whether e sits outside the double/half relation.
func (e Element) Ancillary() bool { return e >= Beast && e < elementCount }

func ParseElement(s string) (Element, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range elementNames {
		if n == name {
			return Element(i), nil
		}
	}
	return 0, fmt.Errorf("unknown element %q", s)
}

func ParseElements(names []string) ([]Element, error) {
	out := make([]Element, 0, len(names))
	for _, n := range names {
		e, err := ParseElement(n)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

type affinity struct {
	double []Element
	half   []Element
}

// Literal per-attacker rules. The relation is not symmetric.
var affinities = map[Element]affinity{
	Terra:    {double: []Element{Electric, Dark}, half: []Element{Metal, War}},
	Flame:    {double: []Element{Nature, Ice}, half: []Element{Sea, War}},
	Sea:      {double: []Element{Flame, War}, half: []Element{Nature, Electric}},
	Nature:   {double: []Element{Sea, Light}, half: []Element{Flame, Ice}},
	Electric: {double: []Element{Sea, Metal}, half: []Element{Terra, Light}},
	Ice:      {double: []Element{Nature, War}, half: []Element{Flame, Metal}},
	Metal:    {double: []Element{Terra, Ice}, half: []Element{Electric, Dark}},
	Dark:     {double: []Element{Metal, Light}, half: []Element{Terra}},
	Light:    {double: []Element{Electric, Dark}, half: []Element{Nature}},
	War:      {double: []Element{Terra, Flame}, half: []Element{Sea, Ice}},
	Pure:     {double: []Element{Legend}, half: []Element{Primal}},
	Legend:   {double: []Element{Primal}, half: []Element{Pure}},
	Primal:   {double: []Element{Pure}, half: []Element{Legend}},
	Wind:     {double: []Element{Wind}},
}

func containsElement(list []Element, e Element) bool {
	for _, x := range list {
		if x == e {
			return true
		}
	}
	return false
}

// Multiplier returns 2, 0.5 or 1 for a single attacking element against a
// single defending element.
func Multiplier(attacking, defending Element) float64 {
	aff, ok := affinities[attacking]
	if !ok {
		return 1.0
	}
	switch {
	case containsElement(aff.double, defending):
		return 2.0
	case containsElement(aff.half, defending):
		return 0.5
	}
	return 1.0
}

// ElementalMultiplier evaluates every attacker element against the defender's
// primary element and keeps the largest result.
func ElementalMultiplier(attacker, defender []Element) float64 {
	if len(attacker) == 0 || len(defender) == 0 {
		return 1.0
	}
	primary := defender[0]
	best := Multiplier(attacker[0], primary)
	for _, e := range attacker[1:] {
		if m := Multiplier(e, primary); m > best {
			best = m
		}
	}
	return best
}
