// Package preset holds the built-in grading schemes shipped with the binary.
// Each preset is a JSON scheme file under presets/, parsed with the same
// importer used for user-supplied scheme files.
package preset

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/alexanderramin/gradecalc/internal/domain"
	"github.com/alexanderramin/gradecalc/internal/importer"
)

//go:embed presets/*.json
var files embed.FS

// Preset is a named built-in class configuration.
type Preset struct {
	Key    string
	Config domain.ClassConfig
}

// Default is the preset used to prefill the interactive form.
const Default = "mat137"

var registry = mustLoad()

func mustLoad() map[string]domain.ClassConfig {
	presets, err := load()
	if err != nil {
		panic(err)
	}
	return presets
}

func load() (map[string]domain.ClassConfig, error) {
	entries, err := files.ReadDir("presets")
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.ClassConfig, len(entries))
	for _, e := range entries {
		data, err := files.ReadFile(path.Join("presets", e.Name()))
		if err != nil {
			return nil, err
		}
		scheme, err := importer.ParseScheme(data)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", e.Name(), err)
		}
		if errs := importer.ValidateScheme(scheme); len(errs) > 0 {
			return nil, fmt.Errorf("preset %s: %w", e.Name(), errs[0])
		}
		key := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		out[key] = importer.Convert(scheme)
	}
	return out, nil
}

// Names returns the preset keys in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// List returns every preset, sorted by key.
func List() []Preset {
	out := make([]Preset, 0, len(registry))
	for _, k := range Names() {
		out = append(out, Preset{Key: k, Config: Get(k)})
	}
	return out
}

// Lookup finds a preset by key, case-insensitively. The returned config is
// a copy and may be modified by the caller.
func Lookup(key string) (domain.ClassConfig, bool) {
	cfg, ok := registry[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return domain.ClassConfig{}, false
	}
	cfg.Categories = append([]domain.CategoryConfig(nil), cfg.Categories...)
	return cfg, true
}

// Get is Lookup for keys known to exist.
func Get(key string) domain.ClassConfig {
	cfg, _ := Lookup(key)
	return cfg
}
