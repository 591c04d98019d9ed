package pipeline

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kjsanger/terraforge/pkg/stages"
	"github.com/kjsanger/terraforge/pkg/world"
	"github.com/kjsanger/terraforge/pkg/worldconfig"
)

// Pipeline drives the World through its five phases using a fixed stage
// table, following original_source/src/scene.h's DefaultScene::Run
// ordering. ForceStop mirrors the original's map-level ShouldForceStop
// flag, but as a field owned by the Pipeline rather than process-global
// state.
type Pipeline struct {
	logger *logrus.Logger
	stages []StageDef

	forceStop atomic.Bool

	mu      sync.Mutex
	errs    []*Error
	message string
}

// New creates a Pipeline over the default stage table, logging through
// logger (a nil logger falls back to logrus's standard instance at Info
// level).
func New(logger *logrus.Logger) *Pipeline {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Pipeline{logger: logger, stages: DefaultStages()}
}

// ForceStop requests that the pipeline abandon any stage not yet started.
// It only sets a flag that the pipeline checks between stages and phases;
// it does not cancel the context of a stage that is already running, so
// such a stage runs until it finishes or its own context ends.
func (p *Pipeline) ForceStop() {
	p.forceStop.Store(true)
}

// Stopped reports whether ForceStop has been called.
func (p *Pipeline) Stopped() bool {
	return p.forceStop.Load()
}

// PopError drains and returns the oldest queued error, or nil if the queue
// is empty.
func (p *Pipeline) PopError() *Error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.errs) == 0 {
		return nil
	}
	e := p.errs[0]
	p.errs = p.errs[1:]
	return e
}

func (p *Pipeline) pushError(e *Error) {
	p.mu.Lock()
	p.errs = append(p.errs, e)
	p.mu.Unlock()
}

// Message returns the last human-readable progress message set by a
// running stage, mirroring the original's Map::SetGenerationMessage.
func (p *Pipeline) Message() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.message
}

func (p *Pipeline) setMessage(msg string) {
	p.mu.Lock()
	p.message = msg
	p.mu.Unlock()
}

// Run generates a fresh World from cfg and executes every phase in order.
// It returns the World even on a phase-level error, since partially
// generated state is still useful to a caller that wants to inspect what
// completed.
func (p *Pipeline) Run(ctx context.Context, cfg *worldconfig.Config) (*world.World, error) {
	w := world.New(cfg.Width, cfg.Height, cfg)
	return w, p.generate(ctx, w)
}

// Regenerate reruns every phase at and after from on an existing World,
// clearing prior state for those phases first. PhaseHorizontal can't be
// cleared (zones are fixed at construction), so from is clamped upward to
// PhaseBiomes.
func (p *Pipeline) Regenerate(ctx context.Context, w *world.World, from world.Phase) error {
	if from < world.PhaseBiomes {
		from = world.PhaseBiomes
	}
	for ph := from; ph <= world.PhaseUnderground; ph++ {
		w.Clear(ph)
	}
	return p.generate(ctx, w)
}

// generate drives the World through all four post-construction phases.
// A phase's own stage failures only abort the phases after it when they
// set ForceStop (see runOne) — an Infeasible cabins or castles placement,
// for instance, fails that one stage but still lets the rest of phase 2
// and every later phase complete, matching scene.h's commented-out
// per-stage timeout checks for those two futures.
//
// When Config.CavesParallelWithBiomes is set, "caves" is dispatched as its
// own goroutine alongside phase 1, matching original_source/src/scene.h's
// GenerateStage4 dispatch; every other phase-4 stage still waits for phase
// 3 to finish, since they read structures phase 3 produces.
func (p *Pipeline) generate(ctx context.Context, w *world.World) error {
	p.forceStop.Store(false)
	parallelCaves := w.Config().CavesParallelWithBiomes

	var cavesWG sync.WaitGroup
	if parallelCaves {
		w.BeginPhase(world.PhaseUnderground)
		cavesWG.Add(1)
		go func() {
			defer cavesWG.Done()
			p.runOne(ctx, w, p.stageNamed("caves"))
		}()
	}

	w.BeginPhase(world.PhaseBiomes)
	p.runSequential(ctx, w, world.PhaseBiomes)
	if p.Stopped() {
		cavesWG.Wait()
		return p.firstError()
	}

	w.BeginPhase(world.PhasePlacement)
	p.runConcurrent(ctx, w, world.PhasePlacement)
	if p.Stopped() {
		cavesWG.Wait()
		return p.firstError()
	}

	w.BeginPhase(world.PhaseSurfaceShaping)
	p.runSurfaceShaping(ctx, w)
	if p.Stopped() {
		cavesWG.Wait()
		return p.firstError()
	}

	cavesWG.Wait()
	if p.Stopped() {
		return p.firstError()
	}

	if parallelCaves {
		p.runSequential(ctx, w, world.PhaseUnderground, "caves")
	} else {
		w.BeginPhase(world.PhaseUnderground)
		p.runSequential(ctx, w, world.PhaseUnderground)
	}

	return p.firstError()
}

// stageNamed returns the registered stage def with the given name, or a
// zero StageDef (a no-op Run) if none matches.
func (p *Pipeline) stageNamed(name string) StageDef {
	for _, d := range p.stages {
		if d.Name == name {
			return d
		}
	}
	return StageDef{}
}

func (p *Pipeline) firstError() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.errs) == 0 {
		return nil
	}
	return p.errs[0]
}

func (p *Pipeline) defsFor(phase world.Phase) []StageDef {
	var out []StageDef
	for _, d := range p.stages {
		if d.Phase == phase {
			out = append(out, d)
		}
	}
	return out
}

// runSequential runs every stage in phase in table order, stopping at the
// first failure (matching scene.h's non-async stage calls, which share no
// write set with later stages so running one-at-a-time is both correct
// and simplest). Any stage named in exclude is skipped — used to omit
// "caves" when it was already dispatched alongside phase 1.
func (p *Pipeline) runSequential(ctx context.Context, w *world.World, phase world.Phase, exclude ...string) bool {
	for _, d := range p.defsFor(phase) {
		if containsName(exclude, d.Name) {
			continue
		}
		if p.Stopped() {
			return true
		}
		if p.runOne(ctx, w, d) {
			return true
		}
	}
	return false
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// runConcurrent runs every stage in phase as a goroutine, each with its own
// budget, and waits for all to finish before returning — matching scene.h's
// futures_to_wait collection for phase 2's placement stages.
func (p *Pipeline) runConcurrent(ctx context.Context, w *world.World, phase world.Phase) bool {
	defs := p.defsFor(phase)
	var wg sync.WaitGroup
	failed := make([]bool, len(defs))
	for i, d := range defs {
		wg.Add(1)
		go func(i int, d StageDef) {
			defer wg.Done()
			failed[i] = p.runOne(ctx, w, d)
		}(i, d)
	}
	wg.Wait()
	for _, f := range failed {
		if f {
			return true
		}
	}
	return false
}

// runSurfaceShaping runs phase 3's sequential stages in order, except for
// "trees" which scene.h dispatches as a budgeted async stage alongside the
// sequential ones; here it simply runs inline with its own budget since no
// other phase-3 stage depends on tree output.
func (p *Pipeline) runSurfaceShaping(ctx context.Context, w *world.World) bool {
	return p.runSequential(ctx, w, world.PhaseSurfaceShaping)
}

// runOne executes one stage with its budget applied (if any), logs
// start/stop/error via logrus, records status on World, and queues a
// pipeline Error on failure. It returns true if the stage failed and the
// caller should stop scheduling further stages.
func (p *Pipeline) runOne(ctx context.Context, w *world.World, d StageDef) bool {
	log := p.logger.WithFields(logrus.Fields{"stage": d.Name, "phase": d.Phase.String()})

	stageCtx := ctx
	cancel := func() {}
	if d.Budget > 0 {
		stageCtx, cancel = context.WithTimeout(ctx, d.Budget)
	}
	defer cancel()

	p.setMessage(d.Name)
	w.SetStageStatus(d.Name, d.Phase, world.Running)
	log.Info("stage started")

	start := time.Now()
	err := d.Run(stageCtx, w)
	elapsed := time.Since(start)

	if err == nil {
		w.SetStageStatus(d.Name, d.Phase, world.Done)
		log.WithField("elapsed", elapsed).Info("stage done")
		return false
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		w.SetStageStatus(d.Name, d.Phase, world.Cancelled)
		w.SetStageError(d.Name, err)
		p.forceStop.Store(true)
		p.pushError(&Error{Kind: KindTimeout, Stage: d.Name, Message: "exceeded its wall-clock budget"})
		log.WithField("budget", d.Budget).Warn("stage timed out")
	case errors.Is(err, context.Canceled):
		w.SetStageStatus(d.Name, d.Phase, world.Cancelled)
		w.SetStageError(d.Name, err)
		p.pushError(&Error{Kind: KindCancelled, Stage: d.Name, Message: "cancelled"})
		log.Warn("stage cancelled")
	case errors.Is(err, stages.ErrInfeasible):
		w.SetStageStatus(d.Name, d.Phase, world.Failed)
		w.SetStageError(d.Name, err)
		// Only hills_holes_islands aborts the rest of generation on
		// Infeasible, matching scene.h:119-139: the hills/holes/islands
		// future's timeout is the only one that sets ForceStop there, while
		// the equivalent cabins/castles checks are commented out. Cabins and
		// castles placement failures stay local to their own stage so
		// castles and surface shaping still complete.
		if d.Name == "hills_holes_islands" {
			p.forceStop.Store(true)
		}
		p.pushError(&Error{Kind: KindInfeasible, Stage: d.Name, Message: err.Error()})
		log.WithError(err).Warn("stage placement infeasible")
	default:
		w.SetStageStatus(d.Name, d.Phase, world.Failed)
		w.SetStageError(d.Name, err)
		p.forceStop.Store(true)
		p.pushError(&Error{Kind: KindConfigInvalid, Stage: d.Name, Message: err.Error()})
		log.WithError(err).Error("stage failed")
	}
	return true
}
