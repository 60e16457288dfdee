package store

import (
	"os"
	"path/filepath"
)

// A Strategy yields candidate store paths in priority order. Strategies
// with nothing to contribute return an empty slice.
type Strategy func() []string

// FromEnv reads a single candidate from the named environment variable.
func FromEnv(key string) Strategy {
	return func() []string {
		if v := os.Getenv(key); v != "" {
			return []string{v}
		}
		return nil
	}
}

// Fixed yields the given paths as-is, dropping empty entries.
func Fixed(paths ...string) Strategy {
	return func() []string {
		out := make([]string, 0, len(paths))
		for _, p := range paths {
			if p != "" {
				out = append(out, p)
			}
		}
		return out
	}
}

// Conventional yields the locations a store file is expected at when nothing
// is configured: a backend directory next to or above the working directory,
// then the working directory itself.
func Conventional(filename string) Strategy {
	return func() []string {
		return []string{
			filepath.Join("backend", filename),
			filepath.Join("..", "backend", filename),
			filepath.Join("..", "..", "backend", filename),
			filename,
		}
	}
}

// Locator probes a fixed candidate list for an existing store file.
type Locator struct {
	candidates []string
}

// NewLocator runs the strategies in order, resolves every candidate against
// the working directory and drops duplicates. The list is computed once and
// never changes for the life of the process, so repeated lookups under the
// same conditions probe the same paths.
func NewLocator(strategies ...Strategy) *Locator {
	seen := make(map[string]struct{})
	var candidates []string
	for _, s := range strategies {
		for _, p := range s() {
			abs, err := filepath.Abs(p)
			if err != nil {
				abs = p
			}
			if _, ok := seen[abs]; ok {
				continue
			}
			seen[abs] = struct{}{}
			candidates = append(candidates, abs)
		}
	}
	return &Locator{candidates: candidates}
}

// Candidates returns every path the locator probes, in order.
func (l *Locator) Candidates() []string {
	out := make([]string, len(l.candidates))
	copy(out, l.candidates)
	return out
}

// Locate probes every candidate and returns the existing subset in candidate
// order, plus the full candidate list. found is never nil so it serializes
// as an empty array rather than null.
func (l *Locator) Locate() (found, candidates []string) {
	candidates = l.Candidates()
	found = []string{}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			found = append(found, p)
		}
	}
	return found, candidates
}
