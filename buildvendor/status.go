// Copyright (C) 2026 the buildvendor authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package buildvendor

// This file parses 'git status --porcelain=v1' output.

import (
	"strconv"
	"strings"
)

// FileStatus classifies the worktree-visible state of a path reported
// by 'git status'.
type FileStatus int

const (
	// Modified means the working tree copy differs from the index.
	Modified FileStatus = iota

	// Untracked means the path is not known to git.
	Untracked

	// Staged means the index differs from HEAD. The status parser
	// never emits this on its own: fully staged files need no
	// build-time action and are skipped. Staged changes are instead
	// found with GitRepo.StagedFiles.
	Staged

	// Deleted means the path has been removed from the working tree.
	Deleted

	// Renamed means the path has been moved from another path.
	Renamed

	// Copied means the path has been copied from another path.
	Copied
)

var statusNames = map[FileStatus]string{
	Modified:  "modified",
	Untracked: "untracked",
	Staged:    "staged",
	Deleted:   "deleted",
	Renamed:   "renamed",
	Copied:    "copied",
}

func (s FileStatus) String() string {
	name, ok := statusNames[s]
	if !ok {
		return "unknown"
	}
	return name
}

// A StatusEntry is one parsed line of porcelain status output.
type StatusEntry struct {
	Status FileStatus

	// Path is the current path, already unquoted.
	Path string

	// OrigPath is the path the file had before a rename or copy. It
	// is only set when the status line carried a rename arrow, which
	// also happens for a staged rename with further unstaged edits.
	OrigPath string
}

// renameArrow separates the previous path from the current path on
// rename and copy lines. A literal " -> " inside an unquoted filename
// is indistinguishable from it; we split on the first occurrence, as
// git's own scripts do.
const renameArrow = " -> "

// unquotePath removes git's quoting from a path. git wraps paths
// containing spaces or special characters in double quotes, with
// C-style backslash escapes and octal sequences for non-ASCII bytes;
// Go string-literal syntax accepts all of them. The unquoting is
// purely lexical: a '$' in a filename stays literal, quoted or not,
// and an unquoted segment is used verbatim.
func unquotePath(path string) string {
	if !strings.HasPrefix(path, `"`) {
		return path
	}
	unquoted, err := strconv.Unquote(path)
	if err != nil {
		return path
	}
	return unquoted
}

// ParseStatus parses 'git status --porcelain=v1' output into at most
// one StatusEntry per line, in input order.
//
// Each line carries a two-character status code: the first character
// is the index state, the second the working tree state. The working
// tree state dominates: a file that is both staged and further
// modified is reported once, as Modified. Fully staged files (index
// state set, working tree clean) need no build-time action and produce
// no entry.
//
// ParseStatus is total: lines it does not understand, including
// conflict markers, are skipped rather than reported as errors. An
// unfamiliar status code must never break a build; at worst a change
// goes unreported.
func ParseStatus(output string) []StatusEntry {
	var entries []StatusEntry

	for _, line := range strings.Split(output, "\n") {
		// Two status characters, a space, and a path.
		if len(line) < 4 {
			continue
		}

		index := line[0]
		worktree := line[1]
		pathPart := line[3:]

		// Fully staged: nothing to do at build time.
		if index != ' ' && worktree == ' ' {
			continue
		}

		var orig string
		if i := strings.Index(pathPart, renameArrow); i != -1 {
			orig = unquotePath(pathPart[:i])
			pathPart = pathPart[i+len(renameArrow):]
		}
		path := unquotePath(pathPart)

		// Order matters here: the working tree code takes
		// precedence over the index code.
		switch {
		case index == '?' && worktree == '?':
			entries = append(entries, StatusEntry{Status: Untracked, Path: path})
		case worktree == 'M':
			entries = append(entries, StatusEntry{Status: Modified, Path: path, OrigPath: orig})
		case worktree == 'D':
			entries = append(entries, StatusEntry{Status: Deleted, Path: path})
		case worktree == 'R':
			entries = append(entries, StatusEntry{Status: Renamed, Path: path, OrigPath: orig})
		case index == 'R':
			entries = append(entries, StatusEntry{Status: Renamed, Path: path, OrigPath: orig})
		case worktree == 'C':
			entries = append(entries, StatusEntry{Status: Copied, Path: path, OrigPath: orig})
		case index == 'C':
			entries = append(entries, StatusEntry{Status: Copied, Path: path, OrigPath: orig})
		}
	}

	return entries
}
