package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdinSource is the special script name for reading from stdin.
const stdinSource = "-"

// script is the source of one script file.
type script struct {
	name string
	src  string
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// loadScripts reads the named scripts in command-line order.
//
// Names are resolved with [resolveScript]. A file named more than once,
// through any combination of relative paths, absolute paths, and symlinks,
// is read only once. All occurrences of "-" collapse into a single read of
// stdin placed after every regular file.
func loadScripts(names, search []string, stdin io.Reader) ([]script, error) {
	scripts := make([]script, 0, len(names))
	seen := make(map[fileKey]struct{}, len(names))

	hasStdin := false

	for _, name := range names {
		if name == stdinSource {
			hasStdin = true

			continue
		}

		path, err := resolveScript(name, search)
		if err != nil {
			return nil, err
		}

		src, ok, err := readUniqueFile(path, seen)
		if err != nil {
			return nil, ErrReadScript.With(slog.String("script", path)).Wrap(err)
		}

		if ok {
			scripts = append(scripts, script{name: path, src: src})
		}
	}

	if hasStdin {
		if stdin == nil {
			stdin = os.Stdin
		}

		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, ErrReadScript.With(slog.String("script", stdinSource)).Wrap(err)
		}

		scripts = append(scripts, script{name: stdinSource, src: string(data)})
	}

	return scripts, nil
}

// readUniqueFile reads the file at path if it hasn't been seen before.
// It reports false for duplicates.
func readUniqueFile(path string, seen map[fileKey]struct{}) (string, bool, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", false, err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", false, err
	}

	if key, ok := makeFileKey(info); ok {
		if _, exists := seen[key]; exists {
			return "", false, nil
		}

		seen[key] = struct{}{}
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return "", false, err
	}

	return string(data), true, nil
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}
