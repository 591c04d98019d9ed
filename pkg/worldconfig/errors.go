package worldconfig

import "errors"

// ErrConfigInvalid is wrapped by Validate's returned errors, letting callers
// test for a config failure distinctly from I/O or YAML parse failures.
var ErrConfigInvalid = errors.New("worldconfig: invalid configuration")
