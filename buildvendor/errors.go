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

import (
	"fmt"
	"strings"
)

// A StatusError reports a failed git query. It carries git's
// diagnostic output and is distinct from an empty result: a failed
// query must never be taken to mean "no changes".
type StatusError struct {
	Output string
	Err    error
}

func (e *StatusError) Error() string {
	output := strings.TrimSpace(e.Output)
	if output == "" {
		return fmt.Sprintf("git query failed: %v", e.Err)
	}
	return fmt.Sprintf("git query failed: %v: %s", e.Err, output)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// An UncommittedChangesError aborts the build when the vendor
// directory holds uncommitted work which the post-build cleanup would
// silently destroy.
type UncommittedChangesError struct {
	Dir       string
	Untracked []string
	Modified  []string
}

func (e *UncommittedChangesError) Error() string {
	d := Decision{Abort: true, Untracked: e.Untracked, Modified: e.Modified}
	return fmt.Sprintf("uncommitted changes in vendor directory %s:\n%s"+
		"commit or stash these changes before building, "+
		"or set abort-on-changed-files to false to ignore",
		e.Dir, d.Diagnostic())
}
