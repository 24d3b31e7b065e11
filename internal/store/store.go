// Package store reads served files whole into memory.
package store

import "os"

// Store serves files under a root directory. The zero-value root (or
// ".") means the process working directory, with resolved paths opened
// as-is.
type Store struct {
	root string
}

func New(root string) *Store {
	return &Store{root: root}
}

// Load reads the file at the given relative path. Open failures, read
// failures and empty files are indistinguishable on purpose: all of
// them report ok=false and the caller answers 404.
//
// The path is opened without cleaning; the resolver's lexical filter
// is the only gate in front of it.
func (s *Store) Load(name string) ([]byte, bool) {
	path := name
	if s.root != "" && s.root != "." {
		path = s.root + string(os.PathSeparator) + name
	}

	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}
