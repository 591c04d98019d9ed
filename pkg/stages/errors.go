package stages

import "errors"

// ErrInfeasible wraps a stage-specific message when its CSP placement
// returns Unsatisfiable: the pipeline surfaces this as a dismissible,
// non-fatal error. Only an infeasible hills_holes_islands stage stops the
// later phases; other infeasible stages leave the rest of the run going.
var ErrInfeasible = errors.New("stages: placement infeasible")
