package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardnew/mung"
)

// PathEnv names the environment variable holding the script search path.
const PathEnv = "LITHIUM_PATH"

// SearchPath returns the directories searched for scripts: include, in
// order, followed by the entries of $LITHIUM_PATH. Entries that are not
// existing directories are dropped, as are repeated entries.
func SearchPath(include ...string) []string {
	abs := make([]string, 0, len(include))
	for _, dir := range include {
		if a, err := filepath.Abs(expandHome(dir)); err == nil {
			abs = append(abs, a)
		}
	}

	joined := mung.Make(
		mung.WithSubjectItems(os.Getenv(PathEnv)),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(abs...),
		mung.WithFilter(isDir),
	).String()

	var dirs []string

	seen := make(map[string]struct{})

	for _, dir := range filepath.SplitList(joined) {
		if _, dup := seen[dir]; dup || dir == "" || !isDir(dir) {
			continue
		}

		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}

	return dirs
}

// resolveScript locates the script called name.
//
// Names containing a path separator, and names of files that exist
// relative to the working directory, are used as given. Other names are
// looked up in each directory of search in order.
func resolveScript(name string, search []string) (string, error) {
	name = expandHome(name)

	if isFile(name) {
		return filepath.Abs(name)
	}

	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		for _, dir := range search {
			if path := filepath.Join(dir, name); isFile(path) {
				return path, nil
			}
		}
	}

	return "", ErrScriptNotFound.With(
		slog.String("script", name),
		slog.Any("search", search),
	)
}

func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok || (rest != "" && rest[0] != '/' && rest[0] != filepath.Separator) {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, rest)
}

func isDir(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}
