package combat

import "errors"

var (
	ErrIllegalTarget        = errors.New("illegal target")
	ErrInsufficientResource = errors.New("insufficient resource")
	ErrInvalidModifierState = errors.New("invalid modifier state")
	ErrTeamCapacityExceeded = errors.New("team capacity exceeded")
	ErrNotEligible          = errors.New("not eligible")
	ErrOwnershipConflict    = errors.New("combatant owned by another battle")
	ErrDuplicateMember      = errors.New("duplicate team member")
	ErrUnknownSkill         = errors.New("unknown skill")
	ErrNotYourTurn          = errors.New("not the current mover")
	ErrBattleOver           = errors.New("battle already decided")
)
