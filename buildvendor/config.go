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
	"sort"

	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// configFile is the vendor manifest filename, looked up at the project
// root.
const configFile = "vendor.yml"

// A Requirement is one dependency to vendor, pinned to a released
// version.
type Requirement struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Config is the vendor manifest.
type Config struct {
	// Destination is the directory, relative to the project root,
	// that the vendoring tool populates.
	Destination string `yaml:"destination"`

	Requirements []Requirement `yaml:"requirements"`
}

// LoadConfig reads the vendor manifest from the project root. A
// missing manifest is not an error; it returns (nil, nil) and the
// caller disables the change guard and the cleanup. Requirement
// versions must parse as semantic versions.
func LoadConfig(root string) (*Config, error) {
	f, err := os.Open(filepath.Join(root, configFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "opening vendor manifest")
	}
	defer f.Close()

	config := &Config{}
	if err := yaml.NewDecoder(f).Decode(config); err != nil {
		return nil, errors.Wrap(err, "parsing vendor manifest")
	}
	for _, req := range config.Requirements {
		if _, err := semver.NewVersion(req.Version); err != nil {
			return nil, errors.Wrapf(err, "requirement %s: invalid version %q",
				req.Name, req.Version)
		}
	}
	return config, nil
}

// SortedRequirements returns the requirements in descending version
// order.
func (c *Config) SortedRequirements() []Requirement {
	versions := make(semver.Collection, 0, len(c.Requirements))
	byVersion := make(map[*semver.Version]Requirement)
	for _, req := range c.Requirements {
		v, err := semver.NewVersion(req.Version)
		if err != nil {
			// LoadConfig has already validated these.
			continue
		}
		versions = append(versions, v)
		byVersion[v] = req
	}
	sort.Sort(sort.Reverse(versions))
	sorted := make([]Requirement, len(versions))
	for i, v := range versions {
		sorted[i] = byVersion[v]
	}
	return sorted
}
