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

// Package buildvendor vendors third-party dependencies into a
// project's source tree for the duration of a build.
//
// A Hook is created for a project root and driven at two points of the
// build lifecycle. Initialize refuses to clobber uncommitted work in
// the vendor directory and then runs the vendoring tool to populate
// it; Finalize resets the vendor directory to its committed state once
// the distributable artifact has been produced, so the working tree
// returns to its pre-build state.
//
//	hook := buildvendor.NewHook(root)
//	ierr := hook.Initialize()
//	// ... assemble the artifact ...
//	ferr := hook.Finalize()
//
// The vendor destination directory is read from the vendor.yml
// manifest at the project root. Without a manifest, or without a
// destination in it, both the uncommitted-change guard and the cleanup
// become no-ops and a warning is logged.
//
// The change detection is built on ParseStatus, which interprets 'git
// status --porcelain=v1' output, and on GitRepo, which issues the git
// queries and performs the destructive Reset of the vendor directory.
package buildvendor
