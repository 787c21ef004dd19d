package planner

import "errors"

var (
	// ErrUnrepairable indicates a recommendation could not be brought inside
	// the credit bounds and must be discarded.
	ErrUnrepairable = errors.New("recommendation unrepairable within credit bounds")

	// ErrInfeasible indicates the deterministic fallback could not reach the
	// minimum credit load from the available pool.
	ErrInfeasible = errors.New("no feasible course load from available pool")

	// ErrBadTarget indicates a simulation target semester outside the
	// student's remaining program.
	ErrBadTarget = errors.New("target semester outside remaining program")
)
