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

// This file contains methods specific to working with git.

import (
	"bufio"
	"bytes"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/vcs"
)

// vcsGit describes how to use Git. Only the command name is needed
// here; every git invocation goes through run.
var vcsGit = &vcs.Cmd{
	Name: "Git",
	Cmd:  "git",
}

// execCommand creates an exec.Cmd. It is a variable so tests can
// substitute a fake.
var execCommand = exec.Command

// A GitRepo is the git working tree containing the project being
// built.
type GitRepo struct {
	// Root is the project root directory.
	Root string
}

// NewGitRepo returns a GitRepo for the project rooted at root.
func NewGitRepo(root string) *GitRepo {
	return &GitRepo{Root: root}
}

// run runs git in dir with the provided args and returns a
// bytes.Buffer with the combined output.
func (g *GitRepo) run(dir string, args ...string) (*bytes.Buffer, error) {
	p := execCommand(vcsGit.Cmd, args...)
	var buf bytes.Buffer
	p.Stdout = &buf
	p.Stderr = &buf
	p.Dir = dir
	err := p.Run()
	return &buf, err
}

// IsRepository reports whether the project root is inside a git
// working tree, using 'git rev-parse --is-inside-work-tree'.
func (g *GitRepo) IsRepository() bool {
	_, err := g.run(g.Root, "rev-parse", "--is-inside-work-tree")
	return err == nil
}

// Status returns the parsed working tree status for dir, using 'git
// status --porcelain=v1' run from dir. A failed query returns a
// *StatusError carrying git's diagnostic output: it must never be
// mistaken for a clean status.
func (g *GitRepo) Status(dir string) ([]StatusEntry, error) {
	buf, err := g.run(dir, "status", "--porcelain=v1", dir)
	if err != nil {
		return nil, &StatusError{Output: buf.String(), Err: err}
	}
	return ParseStatus(buf.String()), nil
}

// listFiles runs a git command whose output is one path per line.
func (g *GitRepo) listFiles(args ...string) ([]string, error) {
	buf, err := g.run(g.Root, args...)
	if err != nil {
		return nil, &StatusError{Output: buf.String(), Err: err}
	}
	files := make([]string, 0)
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

// UntrackedFiles returns the paths under dir which are present on disk
// but unknown to git, excluding ignored files, using 'git ls-files
// --others --exclude-standard'.
func (g *GitRepo) UntrackedFiles(dir string) ([]string, error) {
	return g.listFiles("ls-files", "--others", "--exclude-standard", dir)
}

// UnstagedFiles returns the paths under dir whose working tree content
// differs from the index, using 'git diff --name-only'.
func (g *GitRepo) UnstagedFiles(dir string) ([]string, error) {
	return g.listFiles("diff", "--name-only", "--", dir)
}

// StagedFiles returns the paths under dir whose index content differs
// from HEAD, using 'git diff --name-only --cached'. The status parser
// deliberately skips fully staged files, so this is the only way they
// are surfaced.
func (g *GitRepo) StagedFiles(dir string) ([]string, error) {
	return g.listFiles("diff", "--name-only", "--cached", "--", dir)
}

// Reset discards all uncommitted state under dir: untracked files are
// removed with 'git clean -fdx' and tracked files are restored to
// their committed content with 'git checkout'. This is destructive;
// callers are expected to have evaluated the change guard first.
func (g *GitRepo) Reset(dir string) error {
	buf, err := g.run(g.Root, "clean", "-fdx", "--", dir)
	if err != nil {
		return errors.Wrapf(err, "git clean: %s", strings.TrimSpace(buf.String()))
	}
	buf, err = g.run(g.Root, "checkout", "--", dir)
	if err != nil {
		return errors.Wrapf(err, "git checkout: %s", strings.TrimSpace(buf.String()))
	}
	return nil
}
