package combat

import (
	"fmt"
	"math/rand/v2"
)

// Action is one of NormalAttack, NormalHeal or UseSkill.
type Action interface {
	isAction()
}

type NormalAttack struct {
	Target *Combatant
}

// NormalHeal always targets the acting combatant.
type NormalHeal struct{}

type UseSkill struct {
	Skill  int
	Target *Combatant
}

func (NormalAttack) isAction() {}
func (NormalHeal) isAction()   {}
func (UseSkill) isAction()     {}

// Outcome describes what an accepted action did.
type Outcome struct {
	Kind    string
	Skill   string
	Target  *Combatant
	Damage  float64
	Healed  float64
	Crit    bool
	Element float64
}

// resolveAction validates a against user and applies its effects. On error no
// state is changed.
func resolveAction(rng *rand.Rand, user *Combatant, a Action) (Outcome, error) {
	switch act := a.(type) {
	case NormalAttack:
		return resolveNormalAttack(user, act.Target)
	case NormalHeal:
		return resolveNormalHeal(user), nil
	case UseSkill:
		return resolveSkill(rng, user, act)
	case nil:
		return Outcome{}, fmt.Errorf("nil action: %w", ErrIllegalTarget)
	}
	return Outcome{}, fmt.Errorf("unsupported action %T: %w", a, ErrIllegalTarget)
}

func checkTarget(user, target *Combatant) error {
	if target == nil {
		return fmt.Errorf("%s: no target: %w", user.ID, ErrIllegalTarget)
	}
	if !target.IsAlive() {
		return fmt.Errorf("%s -> %s: target is down: %w", user.ID, target.ID, ErrIllegalTarget)
	}
	return nil
}

func resolveNormalAttack(user, target *Combatant) (Outcome, error) {
	if err := checkTarget(user, target); err != nil {
		return Outcome{}, err
	}
	if user == target {
		return Outcome{}, fmt.Errorf("%s attacks itself: %w", user.ID, ErrIllegalTarget)
	}
	dmg := NormalAttackDamage(user, target)
	target.hp -= dmg
	return Outcome{Kind: "attack", Target: target, Damage: dmg, Element: 1}, nil
}

// resolveNormalHeal adds 15% of max HP without capping at max HP.
func resolveNormalHeal(user *Combatant) Outcome {
	amount := NormalHealAmount(user)
	user.hp += amount
	return Outcome{Kind: "heal", Target: user, Healed: amount}
}

func resolveSkill(rng *rand.Rand, user *Combatant, act UseSkill) (Outcome, error) {
	sk := user.Skill(act.Skill)
	if sk == nil {
		return Outcome{}, fmt.Errorf("%s has no skill #%d: %w", user.ID, act.Skill, ErrUnknownSkill)
	}
	target := act.Target
	if err := checkTarget(user, target); err != nil {
		return Outcome{}, err
	}
	switch sk.Kind {
	case SkillAttack:
		if user == target || user.SameSide(target) {
			return Outcome{}, fmt.Errorf("%s uses %s on ally %s: %w", user.ID, sk.ID, target.ID, ErrIllegalTarget)
		}
	case SkillHeal:
		if !user.SameSide(target) {
			return Outcome{}, fmt.Errorf("%s uses %s on enemy %s: %w", user.ID, sk.ID, target.ID, ErrIllegalTarget)
		}
	default:
		return Outcome{}, fmt.Errorf("skill %s has kind %s: %w", sk.ID, sk.Kind, ErrUnknownSkill)
	}
	if user.mp < sk.MPCost {
		return Outcome{}, fmt.Errorf("%s needs %.1f MP for %s, has %.1f: %w",
			user.ID, sk.MPCost, sk.ID, user.mp, ErrInsufficientResource)
	}

	user.mp -= sk.MPCost
	out := Outcome{Kind: "skill", Skill: sk.ID, Target: target}
	switch sk.Kind {
	case SkillAttack:
		hit := SkillDamage(rng, user, target, sk)
		target.hp -= hit.Damage
		target.addGauge(-sk.EnemiesAttackGaugeDown * FullGauge)
		out.Damage, out.Crit, out.Element = hit.Damage, hit.Crit, hit.Element
	case SkillHeal:
		target.addGauge(sk.AlliesAttackGaugeUp * FullGauge)
		before := target.hp
		if target.hp < target.stats.MaxHP {
			target.hp = min(target.hp+max(sk.HealAmount, 0), target.stats.MaxHP)
		}
		out.Healed = target.hp - before
	}
	return out, nil
}
