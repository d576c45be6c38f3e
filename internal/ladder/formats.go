package ladder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format override files let a user adjust a vendor's block templates or add
// a new platform without rebuilding. The file maps platform names to timer
// and counter templates:
//
//	platforms:
//	  siemens:
//	    timer: "{type} {name} Zeit: {param}"
//
// The format is detected from the file extension: .toml, .yaml or .yml.

type formatsFile struct {
	Platforms map[string]formatsEntry `toml:"platforms" yaml:"platforms"`
}

type formatsEntry struct {
	Timer   string `toml:"timer" yaml:"timer"`
	Counter string `toml:"counter" yaml:"counter"`
}

// LoadTable reads a format override file and merges it over the built-in
// table. An empty template keeps the value the platform already has.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file formatsFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported format file extension %q (want .toml, .yaml or .yml)", ext)
	}

	table := Builtin()
	for name, entry := range file.Platforms {
		key := strings.ToLower(strings.TrimSpace(name))
		f := table.Lookup(key)
		if entry.Timer != "" {
			f.Timer = entry.Timer
		}
		if entry.Counter != "" {
			f.Counter = entry.Counter
		}
		table[key] = f
	}
	return table, nil
}
