// Package stages implements the generation stage library: pure functions of
// World state and a stage-local RNG, some of which consult the csp package
// to place features subject to geometric constraints.
//
// Every stage has the signature `func(ctx context.Context, w *world.World)
// error`, mirroring the original generator's functions over a shared Map
// (original_source/src/pcg.h) but taking a context so long passes can poll
// for cancellation instead of checking a global ShouldForceStop().
package stages
