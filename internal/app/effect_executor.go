// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/example/loom/internal/core/document"
	"github.com/example/loom/internal/core/effects"
	"github.com/example/loom/internal/core/patch"
	"github.com/example/loom/internal/core/weave"
	"github.com/example/loom/internal/ports/primary"
	"github.com/example/loom/internal/ports/secondary"
)

// Outcomes recorded for targets that were never patched.
const (
	OutcomeMissing = "missing"
	OutcomeCreated = "created"
	OutcomeExists  = "exists"
)

// EffectExecutor interprets and executes effects.
// This is the "Imperative Shell" - the only place I/O happens.
type EffectExecutor interface {
	// Execute runs effs in order and reports every file it touched, including
	// those completed before a hard error stopped the run.
	Execute(ctx context.Context, effs []effects.Effect) (Report, error)
}

// Report lists what an execution did, in order.
type Report struct {
	Outcomes []primary.FileOutcome
}

// DefaultEffectExecutor implements EffectExecutor over a FileSystem.
type DefaultEffectExecutor struct {
	fs       secondary.FileSystem
	rewriter *Rewriter
	console  secondary.Console
	journal  secondary.JournalWriter
	logger   *zap.Logger
}

// NewEffectExecutor creates a new DefaultEffectExecutor.
// journal and logger may be nil.
func NewEffectExecutor(fs secondary.FileSystem, console secondary.Console, journal secondary.JournalWriter, logger *zap.Logger) *DefaultEffectExecutor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultEffectExecutor{
		fs:       fs,
		rewriter: NewRewriter(fs),
		console:  console,
		journal:  journal,
		logger:   logger,
	}
}

// Execute processes a slice of effects, executing each in sequence.
// A hard error stops the run; earlier commits stay in place.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) (Report, error) {
	var rep Report
	err := e.execute(ctx, effs, &rep)
	return rep, err
}

func (e *DefaultEffectExecutor) execute(ctx context.Context, effs []effects.Effect, rep *Report) error {
	for _, eff := range effs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.executeOne(ctx, eff, rep); err != nil {
			return fmt.Errorf("failed to execute %s effect: %w", eff.EffectType(), err)
		}
	}
	return nil
}

func (e *DefaultEffectExecutor) executeOne(ctx context.Context, eff effects.Effect, rep *Report) error {
	switch typed := eff.(type) {
	case effects.WeaveEffect:
		return e.executeWeave(ctx, typed.Phase, typed.Recipe, rep)
	case effects.FileEffect:
		return e.executeFile(ctx, typed, rep)
	case effects.CompositeEffect:
		return e.execute(ctx, typed.Effects, rep)
	case effects.NoEffect:
		return nil
	case effects.LogEffect:
		e.notify(weave.Notice{Level: weave.Level(typed.Level), Message: typed.Message})
		return nil
	default:
		return fmt.Errorf("unknown effect type: %T", eff)
	}
}

func (e *DefaultEffectExecutor) executeWeave(ctx context.Context, phase string, r weave.Recipe, rep *Report) error {
	if err := r.Validate(); err != nil {
		return err
	}

	log := e.logger.With(zap.String("recipe", r.Name), zap.String("path", r.Path))

	state, err := e.targetState(ctx, r.Path)
	if err != nil {
		return err
	}

	check := weave.CheckTarget(r, state)
	if check.Action == weave.TargetFail {
		e.record(ctx, rep, phase, r.Name, r.Path, OutcomeMissing, check.Err.Error())
		return check.Err
	}
	if check.CreateDir {
		if err := e.rewriter.EnsureDirectory(ctx, filepath.Dir(r.Path), true); err != nil {
			return err
		}
	}
	if check.Action == weave.TargetSkip {
		if check.Notice != nil {
			e.notify(*check.Notice)
		}
		log.Debug("target missing, skipped")
		e.record(ctx, rep, phase, r.Name, r.Path, OutcomeMissing, "")
		return nil
	}

	for _, n := range r.Notices {
		e.notify(n)
	}

	data, err := e.fs.ReadFile(ctx, r.Path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", r.Path, err)
	}

	res := patch.Run(document.Parse(r.Path, data), r.Pass)
	log.Debug("pass complete", zap.Stringer("outcome", res.Outcome))

	if res.Changed() {
		if err := e.rewriter.Commit(ctx, r.Path, res.Document.Bytes()); err != nil {
			return err
		}
	}
	for _, n := range r.MissNotices(res) {
		e.notify(n)
	}
	e.record(ctx, rep, phase, r.Name, r.Path, res.Outcome.String(), journalDetail(r, res))

	if r.NeedsFollowUp(res) {
		log.Debug("running follow-up", zap.String("follow_up", r.FollowUp.Name))
		return e.executeWeave(ctx, phase, *r.FollowUp, rep)
	}
	return nil
}

func (e *DefaultEffectExecutor) executeFile(ctx context.Context, eff effects.FileEffect, rep *Report) error {
	switch eff.Operation {
	case "mkdir":
		return e.rewriter.EnsureDirectory(ctx, eff.Path, true)
	case "create_if_absent":
		exists, err := e.fs.Exists(ctx, eff.Path)
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", eff.Path, err)
		}
		if exists {
			e.logger.Debug("file exists, not overwritten", zap.String("path", eff.Path))
			e.record(ctx, rep, eff.Phase, "create", eff.Path, OutcomeExists, "")
			return nil
		}
		if err := e.rewriter.EnsureDirectory(ctx, filepath.Dir(eff.Path), true); err != nil {
			return err
		}
		if err := e.rewriter.Create(ctx, eff.Path, eff.Content, os.FileMode(eff.Mode)); err != nil {
			return err
		}
		e.record(ctx, rep, eff.Phase, "create", eff.Path, OutcomeCreated, "")
		return nil
	default:
		return fmt.Errorf("unknown file operation: %s", eff.Operation)
	}
}

func (e *DefaultEffectExecutor) targetState(ctx context.Context, path string) (weave.TargetState, error) {
	dirExists, err := e.fs.DirExists(ctx, filepath.Dir(path))
	if err != nil {
		return weave.TargetState{}, fmt.Errorf("failed to check directory of %s: %w", path, err)
	}
	fileExists := false
	if dirExists {
		fileExists, err = e.fs.Exists(ctx, path)
		if err != nil {
			return weave.TargetState{}, fmt.Errorf("failed to check %s: %w", path, err)
		}
	}
	return weave.TargetState{DirExists: dirExists, FileExists: fileExists}, nil
}

func (e *DefaultEffectExecutor) notify(n weave.Notice) {
	if e.console == nil {
		return
	}
	switch n.Level {
	case weave.LevelWarning:
		e.console.Warning(n.Message)
	default:
		e.console.Info(n.Message)
	}
}

// record appends to the report and the journal. Journal failures are logged,
// never fatal.
func (e *DefaultEffectExecutor) record(ctx context.Context, rep *Report, phase, recipe, path, outcome, detail string) {
	rep.Outcomes = append(rep.Outcomes, primary.FileOutcome{
		Phase:   phase,
		Recipe:  recipe,
		Path:    path,
		Outcome: outcome,
	})

	if e.journal == nil {
		return
	}
	err := e.journal.Record(ctx, secondary.JournalEntry{
		Phase:   phase,
		Recipe:  recipe,
		Path:    path,
		Outcome: outcome,
		Detail:  detail,
	})
	if err != nil {
		e.logger.Warn("failed to journal outcome", zap.String("path", path), zap.Error(err))
	}
}

// journalDetail lists the recipe's markers for the journal. A partly applied pass
// also names the markers it missed.
func journalDetail(r weave.Recipe, res patch.Result) string {
	parts := make([]string, 0, len(r.Pass.Specs))
	for _, spec := range r.Pass.Specs {
		parts = append(parts, spec.Matcher.String())
	}
	d := strings.Join(parts, " | ")
	if res.Outcome == patch.ExtensionPointNotFound {
		return d
	}
	if missed := r.MissedMarkers(res); len(missed) > 0 {
		d += "; not found: " + strings.Join(missed, " | ")
	}
	return d
}
