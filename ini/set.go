// Copyright 2026 Daniel McGuire
// SPDX-License-Identifier: MIT

package ini

import (
	"fmt"
	"os"
)

// FileSet is a list of files to obtain configuration from in descending
// order of precedence.
type FileSet []*File

// ParseFiles parses the files at the given paths as INI and returns a
// FileSet. If the returned error is nil, the returned file set's length will
// be the same as the number of arguments. ParseFiles will stop on the first
// error, but ignores missing file errors, instead filling the corresponding
// element of the set with a nil *File.
func ParseFiles(paths ...string) (FileSet, error) {
	fset := make(FileSet, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if os.IsNotExist(err) {
			fset = append(fset, nil)
			continue
		}
		if err != nil {
			return fset, fmt.Errorf("parse ini files: %w", err)
		}
		parsed, err := Parse(f)
		f.Close() // Close errors irrelevant.
		if err != nil {
			return fset, fmt.Errorf("parse ini files: %s: %w", p, err)
		}
		fset = append(fset, parsed)
	}
	return fset, nil
}

// Get returns the value of the first entry with the given key in the first
// section with the given name, from the first file in the set that contains
// such an entry. If no file does, Get returns the empty string.
func (fset FileSet) Get(sectionName, key string) string {
	for _, f := range fset {
		if v, ok := f.get(sectionName, key); ok {
			return v
		}
	}
	return ""
}

// Section returns a copy of the entries of the named section from the first
// file in the set that contains the section. A present section with no
// entries still counts.
func (fset FileSet) Section(name string) (entries []Entry, ok bool) {
	for _, f := range fset {
		if f == nil {
			continue
		}
		if entries, ok := f.Section(name); ok {
			return entries, true
		}
	}
	return nil, false
}

// Set sets the entry on the first file and deletes the key from all
// subsequent files so that the new value takes precedence everywhere. Set
// will panic if len(fset) == 0. If fset[0] == nil, Set allocates a new File.
func (fset FileSet) Set(sectionName, key, value string) {
	if fset[0] == nil {
		fset[0] = new(File)
	}
	fset[0].Set(sectionName, key, value)
	fset[1:].Delete(sectionName, key)
}

// Delete removes every entry with the given key from the first section with
// the given name in every file of the set. Nil elements are ignored.
func (fset FileSet) Delete(sectionName, key string) {
	for _, f := range fset {
		if f != nil {
			f.Delete(sectionName, key)
		}
	}
}
