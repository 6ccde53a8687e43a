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
	"os"
	"path/filepath"
	"strings"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("buildvendor")

// defaultVendorCommand is the external tool invoked to populate the
// vendor directory.
var defaultVendorCommand = []string{"vendoring", "sync"}

// A Hook vendors dependencies into the project tree before artifact
// assembly and resets the vendor directory afterwards.
type Hook struct {
	// Root is the project root directory.
	Root string

	// AbortOnChange makes Initialize fail when the vendor directory
	// holds uncommitted changes. When false those changes are only
	// warned about, and the cleanup will still destroy them.
	AbortOnChange bool

	// VendorCommand overrides the vendoring tool invocation.
	VendorCommand []string

	repo      *GitRepo
	vendorDir string
}

// NewHook returns a Hook for the project rooted at root, aborting on
// uncommitted vendor changes by default.
func NewHook(root string) *Hook {
	return &Hook{
		Root:          root,
		AbortOnChange: true,
		VendorCommand: defaultVendorCommand,
		repo:          NewGitRepo(root),
	}
}

// Initialize runs before artifact assembly. It determines the vendor
// directory from the manifest, refuses to clobber uncommitted work in
// it, and runs the vendoring tool to populate it.
func (h *Hook) Initialize() error {
	config, err := LoadConfig(h.Root)
	if err != nil {
		return err
	}
	if config == nil || config.Destination == "" {
		log.Warning("could not determine vendor directory from vendor manifest")
		log.Warning("vendored files will not be cleaned up after build")
	} else {
		h.vendorDir = config.Destination
		log.Infof("determined vendor directory: %s",
			filepath.Join(h.Root, h.vendorDir))
		if err := h.checkUncommittedChanges(); err != nil {
			return err
		}
	}
	if config != nil && len(config.Requirements) > 0 {
		log.Infof("vendoring %d requirements", len(config.Requirements))
		for _, req := range config.SortedRequirements() {
			log.Debugf("  %s %s", req.Name, req.Version)
		}
	}
	return h.runVendoring()
}

// Finalize runs after artifact assembly. It resets the vendor
// directory to its committed state, removing everything the vendoring
// tool produced.
func (h *Hook) Finalize() error {
	if h.vendorDir == "" {
		config, err := LoadConfig(h.Root)
		if err != nil {
			return err
		}
		if config == nil || config.Destination == "" {
			log.Warning("no vendor directory configured: nothing to clean up")
			return nil
		}
		h.vendorDir = config.Destination
	}
	if !h.repo.IsRepository() {
		log.Warningf("not a git repository: vendored files in %s will remain after build",
			h.vendorDir)
		return nil
	}
	log.Infof("cleaning vendored files from %s using git", h.vendorDir)
	if err := h.repo.Reset(h.vendorDir); err != nil {
		log.Warningf("vendored files in %s may remain after build", h.vendorDir)
		return errors.Wrap(err, "cleaning vendor directory")
	}
	return nil
}

// checkUncommittedChanges guards the vendor directory against data
// loss. Inability to determine the change state is not fatal: the
// build environment may legitimately lack git, so only a positive
// detection can abort the build.
func (h *Hook) checkUncommittedChanges() error {
	if _, err := os.Stat(filepath.Join(h.Root, h.vendorDir)); err != nil {
		// Nothing on disk for the cleanup to destroy.
		return nil
	}
	if !h.repo.IsRepository() {
		log.Warning("not a git repository: cannot check for uncommitted changes")
		return nil
	}
	untracked, modified, err := h.repo.UncommittedChanges(h.vendorDir)
	if err != nil {
		log.Warningf("could not check for uncommitted changes in vendor directory: %v", err)
		return nil
	}
	decision := Evaluate(untracked, modified, h.AbortOnChange)
	if len(decision.Untracked) == 0 && len(decision.Modified) == 0 {
		return nil
	}
	log.Warningf("uncommitted changes detected in vendor directory: %s\n%s",
		h.vendorDir, decision.Diagnostic())
	if decision.Abort {
		return &UncommittedChangesError{
			Dir:       h.vendorDir,
			Untracked: decision.Untracked,
			Modified:  decision.Modified,
		}
	}
	return nil
}

// runVendoring runs the vendoring tool in the project root. Its
// failure is fatal: an artifact must not be assembled from a partially
// populated vendor directory.
func (h *Hook) runVendoring() error {
	args := h.VendorCommand
	if len(args) == 0 {
		args = defaultVendorCommand
	}
	log.Infof("running: %s", strings.Join(args, " "))
	p := execCommand(args[0], args[1:]...)
	p.Dir = h.Root
	p.Stdout = os.Stdout
	p.Stderr = os.Stderr
	if err := p.Run(); err != nil {
		return errors.Wrapf(err, "running %s", args[0])
	}
	return nil
}
