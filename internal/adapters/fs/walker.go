// Package fs provides file system adapters for finding and hashing Gradle dependency files.
package fs

import (
	"iter"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// Walker finds dependency-declaration files below a project directory.
type Walker struct {
	fs       afero.Fs
	patterns []string
}

// NewWalker creates a new Walker matching file names against patterns.
func NewWalker(fsys afero.Fs, patterns []string) *Walker {
	return &Walker{fs: fsys, patterns: patterns}
}

// Matches reports whether a file name matches one of the walker's patterns.
func (w *Walker) Matches(name string) bool {
	for _, pattern := range w.patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// SkippedDirError reports a directory below the walk root that could not be listed.
// The walk continues past it.
type SkippedDirError struct {
	Path string
	Err  error
}

func (e *SkippedDirError) Error() string {
	return e.Err.Error()
}

func (e *SkippedDirError) Unwrap() error {
	return e.Err
}

// WalkMatching yields the paths of matching files below root, relative to root,
// "/"-separated and starting with "/".
//
// Directories are visited in lexical order. Files directly in root have depth 0, so a
// depthLimit of 0 never descends. An unreadable root yields an error and stops the walk.
// An unreadable subdirectory yields a *SkippedDirError and the walk goes on if the
// consumer keeps iterating.
func (w *Walker) WalkMatching(root string, depthLimit int) iter.Seq2[string, error] {
	if depthLimit < 0 {
		depthLimit = 0
	}
	return func(yield func(string, error) bool) {
		w.walkDir(root, "", 0, depthLimit, yield)
	}
}

func (w *Walker) walkDir(root, rel string, depth, limit int, yield func(string, error) bool) bool {
	dir := filepath.Join(root, rel)
	entries, err := afero.ReadDir(w.fs, dir)
	if err != nil {
		if rel == "" {
			yield("", zerr.With(zerr.Wrap(err, domain.ErrWorkDirUnreadable.Error()), "path", dir))
			return false
		}
		// Gradle may delete build directories while the scan runs
		return yield("", &SkippedDirError{
			Path: dir,
			Err:  zerr.With(zerr.Wrap(err, domain.ErrDirUnreadable.Error()), "path", dir),
		})
	}

	for _, entry := range entries {
		name := entry.Name()
		childRel := filepath.Join(rel, name)

		if entry.IsDir() {
			// Always skip VCS metadata
			if name == ".git" || name == ".jj" || depth >= limit {
				continue
			}
			if !w.walkDir(root, childRel, depth+1, limit, yield) {
				return false
			}
			continue
		}

		if !w.Matches(name) {
			continue
		}
		if !yield("/"+filepath.ToSlash(childRel), nil) {
			return false
		}
	}
	return true
}
