// Copyright 2026 Daniel McGuire
// SPDX-License-Identifier: MIT

/*
Package ini provides a parser and serializer for a minimal INI file format:
named sections, each holding an ordered list of key/value string pairs.

The format is deliberately small. There is no comment syntax, no quoting, no
escaping, and no type system; every key and value is a string, written
exactly as it appears on the line.

Syntax

An INI file is line-oriented text. A section begins with its name written in
square brackets ('[' and ']') on its own line and ends at the next section
header or the end of file:

	[section]
	key=value

An entry is a key and a value on a single line, separated at the first
equals sign ('='). Whitespace is significant: keys and values are never
trimmed, so "key = value" defines the key "key " with the value " value".

Blank lines are skipped. Every other line is silently dropped by the parser
rather than reported: lines that are neither a section header nor contain an
equals sign, and entry lines that appear before the first section header.

Because there is no escaping, section names containing ']' and keys
containing '=' cannot round-trip through serialization. This is a known
limitation of the format, not enforced by this package.

Repeated names

Multiple sections may share a name and multiple entries in a section may
share a key; the parser appends them in order and never merges. All lookups
and edits in this package operate on the first match.

When serialized, each section is written as its bracketed header followed by
its entries, one per line, with a blank separator line after every section,
including the last.
*/
package ini
