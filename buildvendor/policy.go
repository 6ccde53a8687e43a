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
	"bytes"
	"fmt"
	"text/template"
)

// A Decision is the outcome of evaluating the uncommitted changes
// found in the vendor directory before a build.
type Decision struct {
	// Abort is true when the build must not proceed.
	Abort bool

	Untracked []string
	Modified  []string
}

// UncommittedChanges returns the untracked and modified paths under
// dir. Staged-but-uncommitted changes count as modified: the worktree
// status alone would not report them, but the post-build cleanup
// discards them all the same.
//
// The three underlying queries are not issued atomically; the caller
// must not mutate dir concurrently.
func (g *GitRepo) UncommittedChanges(dir string) (untracked, modified []string, err error) {
	untracked, err = g.UntrackedFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	modified, err = g.UnstagedFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	staged, err := g.StagedFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	modified = append(modified, staged...)
	return untracked, modified, nil
}

// Evaluate decides whether a build may proceed given the uncommitted
// changes detected in the vendor directory. With no changes, or with
// abortOnChange false, the build proceeds; the caller is responsible
// for surfacing a warning in the latter case.
func Evaluate(untracked, modified []string, abortOnChange bool) Decision {
	d := Decision{Untracked: untracked, Modified: modified}
	if len(untracked) == 0 && len(modified) == 0 {
		return d
	}
	d.Abort = abortOnChange
	return d
}

const diagnosticTemplate = `{{if .Untracked}}Untracked files:
{{range .Untracked}}  - {{.}}
{{end}}{{end}}{{if .Modified}}Modified files:
{{range .Modified}}  - {{.}}
{{end}}{{end}}`

// Diagnostic renders every detected path as a multi-line report
// suitable for direct display.
func (d Decision) Diagnostic() string {
	tmpl, err := template.New("diagnostic").Parse(diagnosticTemplate)
	if err != nil {
		return fmt.Sprintf("diagnostic: error creating template: %v", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return fmt.Sprintf("diagnostic: %v", err)
	}
	return buf.String()
}
