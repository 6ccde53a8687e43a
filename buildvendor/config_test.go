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
	"reflect"
	"testing"
)

func writeManifest(t *testing.T, contents string) string {
	root := t.TempDir()
	err := os.WriteFile(filepath.Join(root, configFile), []byte(contents), 0644)
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestLoadConfig(t *testing.T) {
	root := writeManifest(t, `destination: internal/vendored
requirements:
  - name: example.com/lib
    version: 1.4.2
  - name: example.com/other
    version: 2.0.0
`)
	config, err := LoadConfig(root)
	if err != nil {
		t.Fatal(err)
	}
	if config.Destination != "internal/vendored" {
		t.Errorf("destination: got %q", config.Destination)
	}
	want := []Requirement{
		{Name: "example.com/lib", Version: "1.4.2"},
		{Name: "example.com/other", Version: "2.0.0"},
	}
	if !reflect.DeepEqual(config.Requirements, want) {
		t.Errorf("requirements: got %v, want %v", config.Requirements, want)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	config, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if config != nil {
		t.Errorf("unexpected config: %v", config)
	}
}

func TestLoadConfigNoDestination(t *testing.T) {
	root := writeManifest(t, "requirements: []\n")
	config, err := LoadConfig(root)
	if err != nil {
		t.Fatal(err)
	}
	if config == nil || config.Destination != "" {
		t.Errorf("unexpected config: %v", config)
	}
}

func TestLoadConfigInvalidVersion(t *testing.T) {
	root := writeManifest(t, `destination: internal/vendored
requirements:
  - name: example.com/lib
    version: not-a-version
`)
	_, err := LoadConfig(root)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	root := writeManifest(t, "destination: [\n")
	_, err := LoadConfig(root)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestSortedRequirements(t *testing.T) {
	config := &Config{
		Requirements: []Requirement{
			{Name: "example.com/old", Version: "0.9.1"},
			{Name: "example.com/new", Version: "2.1.0"},
			{Name: "example.com/mid", Version: "1.4.2"},
		},
	}
	sorted := config.SortedRequirements()
	want := []string{"example.com/new", "example.com/mid", "example.com/old"}
	if len(sorted) != len(want) {
		t.Fatalf("got %d requirements, want %d", len(sorted), len(want))
	}
	for i, name := range want {
		if sorted[i].Name != name {
			t.Errorf("position %d: got %s, want %s", i, sorted[i].Name, name)
		}
	}
}
