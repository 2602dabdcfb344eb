package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/calvinalkan/cscycle/internal/config"
	"github.com/calvinalkan/cscycle/internal/fs"
	"github.com/calvinalkan/cscycle/internal/scheme"
)

// newFilePerm is only used if the target vanished between locate and write.
const newFilePerm = 0o644

var errAborted = errors.New("interrupted, config file left unchanged")

// target is the resolved terminal config every command works against.
type target struct {
	fsys   fs.FS
	cfg    config.Config
	env    map[string]string
	cycler *scheme.Cycler
}

func newTarget(fsys fs.FS, cfg config.Config, env map[string]string) *target {
	return &target{
		fsys:   fsys,
		cfg:    cfg,
		env:    env,
		cycler: scheme.NewCycler(cfg.Key),
	}
}

// locate finds the config file and resolves symlinks, so the link target is
// rewritten rather than the link replaced.
func (t *target) locate(o *IO) (string, error) {
	path, err := config.Locate(t.fsys, t.cfg, t.env)
	if err != nil {
		return "", err
	}

	resolved, err := t.fsys.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}

	if resolved != path {
		o.Verbosef("config: %s -> %s", path, resolved)
	} else {
		o.Verbosef("config: %s", path)
	}

	return resolved, nil
}

func (t *target) read(path string) (scheme.Document, error) {
	content, err := t.fsys.ReadFile(path)
	if err != nil {
		return scheme.Document{}, fmt.Errorf("reading config: %w", err)
	}

	return scheme.NewDocument(content), nil
}

// inspect reads the config without locking it.
func (t *target) inspect(o *IO) (string, scheme.State, error) {
	path, err := t.locate(o)
	if err != nil {
		return "", scheme.State{}, err
	}

	doc, err := t.read(path)
	if err != nil {
		return "", scheme.State{}, err
	}

	state, err := t.cycler.Inspect(doc)
	if err != nil {
		return "", scheme.State{}, err
	}

	t.warn(o, state)

	return path, state, nil
}

// rewrite locks the config, computes a change with compute and, unless
// dryRun, writes it back atomically. Nothing is written if compute fails or
// ctx is cancelled first.
func (t *target) rewrite(
	ctx context.Context,
	o *IO,
	dryRun bool,
	compute func(scheme.Document) (scheme.Change, error),
) (string, scheme.Change, error) {
	path, err := t.locate(o)
	if err != nil {
		return "", scheme.Change{}, err
	}

	lock, err := t.fsys.Lock(path)
	if err != nil {
		return "", scheme.Change{}, fmt.Errorf("acquiring lock: %w", err)
	}

	defer func() { _ = lock.Close() }()

	doc, err := t.read(path)
	if err != nil {
		return "", scheme.Change{}, err
	}

	change, err := compute(doc)
	if err != nil {
		return "", scheme.Change{}, err
	}

	t.warn(o, change.State)

	if dryRun {
		return path, change, nil
	}

	if ctx.Err() != nil {
		return "", scheme.Change{}, errAborted
	}

	err = t.fsys.WriteFileAtomic(path, scheme.JoinLines(change.Lines), newFilePerm)
	if err != nil {
		return "", scheme.Change{}, fmt.Errorf("writing config: %w", err)
	}

	return path, change, nil
}

func (t *target) warn(o *IO, state scheme.State) {
	if len(state.Duplicates) > 0 {
		o.Warn(
			"anchor declared more than once: "+strings.Join(state.Duplicates, ", "),
			"cycling uses the first declaration; rename or remove the duplicates",
		)
	}

	if state.ReferenceCount > 1 {
		o.Verbosef("%d lines reference a scheme, using line %d", state.ReferenceCount, state.Active.Line+1)
	}
}
