// Copyright 2026 Daniel McGuire
// SPDX-License-Identifier: MIT

package ini

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// A File is an ordered collection of sections. The zero value is an empty
// file.
//
// Duplicate section names and duplicate keys are preserved in order, never
// merged. Every lookup and edit operates on the first match.
type File struct {
	sections []section
}

type section struct {
	name    string
	entries []Entry
}

// An Entry is a single key/value pair within a section.
type Entry struct {
	Key   string
	Value string
}

// Parse parses an INI file. Malformed lines are dropped, not reported: the
// returned error is non-nil only if reading from r fails.
//
// See the Syntax section in the package documentation for the format
// recognized by Parse.
func Parse(r io.Reader) (*File, error) {
	s := bufio.NewScanner(r)
	f := new(File)
	curr := -1
	for s.Scan() {
		line := s.Text()
		if line == "" {
			continue
		}
		if len(line) >= 2 && line[0] == '[' && line[len(line)-1] == ']' {
			f.sections = append(f.sections, section{name: line[1 : len(line)-1]})
			curr = len(f.sections) - 1
			continue
		}
		i := strings.IndexByte(line, '=')
		if i == -1 || curr == -1 {
			// Not a header, not an entry, or an entry before the first
			// header. Dropped.
			continue
		}
		f.sections[curr].entries = append(f.sections[curr].entries, Entry{
			Key:   line[:i],
			Value: line[i+1:],
		})
	}
	if err := s.Err(); err != nil {
		return f, fmt.Errorf("parse ini file: %w", err)
	}
	return f, nil
}

func (f *File) find(name string) *section {
	if f == nil {
		return nil
	}
	for i := range f.sections {
		if f.sections[i].name == name {
			return &f.sections[i]
		}
	}
	return nil
}

// Get returns the value of the first entry with the given key in the first
// section with the given name. If the section or key is absent, Get returns
// the empty string; a key set to the empty string is indistinguishable from
// an absent one through Get.
func (f *File) Get(sectionName, key string) string {
	v, _ := f.get(sectionName, key)
	return v
}

func (f *File) get(sectionName, key string) (_ string, ok bool) {
	s := f.find(sectionName)
	if s == nil {
		return "", false
	}
	for i := range s.entries {
		if s.entries[i].Key == key {
			return s.entries[i].Value, true
		}
	}
	return "", false
}

// Section returns a copy of the entries of the first section with the given
// name, in their original order. ok reports whether the section is present;
// a section whose header appears in the file counts as present even if it
// has no entries.
func (f *File) Section(name string) (entries []Entry, ok bool) {
	s := f.find(name)
	if s == nil {
		return nil, false
	}
	return append([]Entry(nil), s.entries...), true
}

// Sections returns the names of the sections in the file in order. Sections
// that appear more than once are listed once per appearance.
func (f *File) Sections() []string {
	if f == nil {
		return nil
	}
	names := make([]string, 0, len(f.sections))
	for i := range f.sections {
		names = append(names, f.sections[i].name)
	}
	return names
}

// findOrAppend returns the first section with the given name, appending a
// new one to the end of the file if there is none.
func (f *File) findOrAppend(name string) *section {
	if s := f.find(name); s != nil {
		return s
	}
	f.sections = append(f.sections, section{name: name})
	return &f.sections[len(f.sections)-1]
}

// SetSection replaces the entries of the first section with the given name
// with a copy of entries. If no such section exists, a new section is
// appended to the end of the file. All other sections keep their order and
// contents.
func (f *File) SetSection(name string, entries []Entry) {
	f.findOrAppend(name).entries = append([]Entry(nil), entries...)
}

// Set sets the value of the first entry with the given key in the first
// section with the given name, updating it in place. If there is no such
// entry, one is appended to the section; if there is no such section, one is
// appended to the end of the file. Later entries with the same key are left
// untouched.
func (f *File) Set(sectionName, key, value string) {
	s := f.findOrAppend(sectionName)
	for i := range s.entries {
		if s.entries[i].Key == key {
			s.entries[i].Value = value
			return
		}
	}
	s.entries = append(s.entries, Entry{Key: key, Value: value})
}

// Add appends an entry with the given key to the first section with the
// given name, creating the section at the end of the file if necessary.
// Unlike Set, Add never replaces an existing entry.
func (f *File) Add(sectionName, key, value string) {
	s := f.findOrAppend(sectionName)
	s.entries = append(s.entries, Entry{Key: key, Value: value})
}

// Delete removes every entry with the given key from the first section with
// the given name. The section itself is kept even if it becomes empty, so
// its presence remains observable through Section.
func (f *File) Delete(sectionName, key string) {
	s := f.find(sectionName)
	if s == nil {
		return
	}
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Key != key {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(s.entries); i++ {
		// Zero out truncated elements for garbage collection.
		s.entries[i] = Entry{}
	}
	s.entries = kept
}

// DeleteSection removes the first section with the given name and all of its
// entries. Later sections with the same name are left untouched.
func (f *File) DeleteSection(name string) {
	for i := range f.sections {
		if f.sections[i].name == name {
			f.sections = append(f.sections[:i], f.sections[i+1:]...)
			return
		}
	}
}

// MarshalText serializes the file in INI format: each section as its
// bracketed header followed by its entries, one per line, with a blank
// separator line after every section, including the last.
func (f *File) MarshalText() ([]byte, error) {
	if f == nil {
		return nil, nil
	}
	var buf []byte
	for _, s := range f.sections {
		buf = append(buf, '[')
		buf = append(buf, s.name...)
		buf = append(buf, "]\n"...)
		for _, e := range s.entries {
			buf = append(buf, e.Key...)
			buf = append(buf, '=')
			buf = append(buf, e.Value...)
			buf = append(buf, '\n')
		}
		buf = append(buf, '\n')
	}
	return buf, nil
}

// UnmarshalText parses the INI data, replacing any sections in f.
func (f *File) UnmarshalText(data []byte) error {
	parsed, err := Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*f = *parsed
	return nil
}
