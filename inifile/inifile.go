// Copyright 2026 Daniel McGuire
// SPDX-License-Identifier: MIT

// Package inifile provides a read-modify-write store for a single INI
// configuration file.
//
// A Store holds nothing but a path: every operation parses the whole file
// from disk before answering, and every mutating operation rewrites the
// whole file. This is intended for small, infrequently updated,
// human-editable configuration files, not for throughput.
//
// Failures are reported as boolean results or empty strings, following the
// shape of the format itself; the underlying I/O error is logged through
// zombiezen.com/go/log. The store performs no locking: concurrent writers
// to the same path can lose updates.
package inifile

import (
	"context"
	"io/ioutil"
	"os"

	"github.com/DanielLMcGuire/iniHandler/ini"
	"zombiezen.com/go/log"
)

// A Store reads and writes the INI file at a fixed path.
type Store struct {
	path string
}

// New returns a store for the INI file at path, creating an empty file if
// none exists. New never fails: if the file cannot be created, the error is
// logged and later operations report failure instead.
func New(ctx context.Context, path string) *Store {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f, err := os.Create(path)
		if err != nil {
			log.Warnf(ctx, "Creating INI file: %v", err)
			return &Store{path: path}
		}
		f.Close() // Close errors irrelevant.
	}
	return &Store{path: path}
}

// Path returns the path the store was created with.
func (s *Store) Path() string {
	return s.path
}

// load parses the whole file from disk.
func (s *Store) load(ctx context.Context) (*ini.File, bool) {
	f, err := os.Open(s.path)
	if err != nil {
		log.Warnf(ctx, "Reading INI file: %v", err)
		return nil, false
	}
	defer f.Close()
	parsed, err := ini.Parse(f)
	if err != nil {
		log.Warnf(ctx, "Reading INI file: %s: %v", s.path, err)
		return nil, false
	}
	return parsed, true
}

// flush serializes f and rewrites the whole file.
func (s *Store) flush(ctx context.Context, f *ini.File) bool {
	text, err := f.MarshalText()
	if err != nil {
		log.Warnf(ctx, "Writing INI file: %s: %v", s.path, err)
		return false
	}
	if err := ioutil.WriteFile(s.path, text, 0666); err != nil {
		log.Warnf(ctx, "Writing INI file: %v", err)
		return false
	}
	return true
}

// ReadSection returns the entries of the named section in file order. ok
// reports whether the file could be read and the section is present; a
// present section with no entries still counts as found.
func (s *Store) ReadSection(ctx context.Context, name string) (entries []ini.Entry, ok bool) {
	f, ok := s.load(ctx)
	if !ok {
		return nil, false
	}
	return f.Section(name)
}

// ReadValue returns the value of the first entry with the given key in the
// named section. If the file cannot be read or the section or key is
// absent, ReadValue returns the empty string; callers cannot distinguish an
// absent key from a key set to the empty string.
func (s *Store) ReadValue(ctx context.Context, section, key string) string {
	f, ok := s.load(ctx)
	if !ok {
		return ""
	}
	return f.Get(section, key)
}

// WriteSection replaces the entries of the named section wholesale,
// appending a new section to the end of the file if none exists, then
// rewrites the whole file. All other sections and their entries keep their
// order. WriteSection reports whether the file could be read and rewritten.
func (s *Store) WriteSection(ctx context.Context, name string, entries []ini.Entry) bool {
	f, ok := s.load(ctx)
	if !ok {
		return false
	}
	f.SetSection(name, entries)
	return s.flush(ctx, f)
}

// WriteValue sets the value of the first entry with the given key in the
// named section, appending the entry if the key is absent and the section
// if it does not exist, then rewrites the whole file. WriteValue reports
// whether the file could be read and rewritten.
//
// WriteValue re-reads the file once to fetch the section and once more
// inside WriteSection. Two full parses per call is acceptable for the small
// files this store targets.
func (s *Store) WriteValue(ctx context.Context, section, key, value string) bool {
	entries, _ := s.ReadSection(ctx, section)
	found := false
	for i := range entries {
		if entries[i].Key == key {
			entries[i].Value = value
			found = true
			break
		}
	}
	if !found {
		entries = append(entries, ini.Entry{Key: key, Value: value})
	}
	return s.WriteSection(ctx, section, entries)
}

// Empty reports whether the file does not exist or has zero bytes.
func (s *Store) Empty() bool {
	info, err := os.Stat(s.path)
	if err != nil {
		return true
	}
	return info.Size() == 0
}
