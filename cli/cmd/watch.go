package cmd

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ardnew/lithium/log"
)

// watchDebounce is the quiet period after a change during which further
// changes are ignored.
const watchDebounce = 100 * time.Millisecond

// watch runs the named scripts, then runs them again each time one of them
// is written or replaced, until ctx is done.
//
// Failures of individual runs are logged and do not end the watch. Stdin
// cannot be watched.
func (r *Run) watch(ctx context.Context, e *Engine, names []string) error {
	if slices.Contains(names, stdinSource) {
		return ErrWatch.With(slog.String("script", stdinSource))
	}

	scripts, err := loadScripts(names, e.Search, nil)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return ErrWatch.Wrap(err)
	}
	defer w.Close()

	// Parent directories are watched; events are filtered by script name.
	watched := make(map[string]struct{}, len(scripts))

	for _, s := range scripts {
		watched[filepath.Clean(s.name)] = struct{}{}

		if err := w.Add(filepath.Dir(s.name)); err != nil {
			return ErrWatch.With(slog.String("script", s.name)).Wrap(err)
		}
	}

	rerun := func() {
		scripts, err := loadScripts(names, e.Search, nil)
		if err == nil {
			err = r.execute(ctx, e, scripts)
		}

		if err != nil {
			log.ErrorContext(ctx, "watch run failed", slog.Any("error", err))
		}
	}

	rerun()

	var last time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if _, ok := watched[filepath.Clean(event.Name)]; !ok {
				continue
			}

			if time.Since(last) < watchDebounce {
				continue
			}

			last = time.Now()

			log.DebugContext(ctx, "script changed", slog.String("script", event.Name))
			rerun()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			log.WarnContext(ctx, "watch error", slog.Any("error", err))
		}
	}
}
