package data

import (
	"fmt"
	"os"

	"github.com/l1jgo/asteroids/internal/input"
	"gopkg.in/yaml.v3"
)

// KeyBinding binds one action to a list of key names.
type KeyBinding struct {
	Action string   `yaml:"action"`
	Keys   []string `yaml:"keys"`
}

type keymapFile struct {
	Bindings []KeyBinding `yaml:"bindings"`
}

// LoadKeymap loads action bindings from a YAML file. Actions missing from
// the file keep their default keys.
func LoadKeymap(path string) (input.Bindings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap: %w", err)
	}
	return ParseKeymap(data)
}

// ParseKeymap decodes YAML key bindings over the defaults.
func ParseKeymap(data []byte) (input.Bindings, error) {
	var f keymapFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse keymap: %w", err)
	}
	b := input.DefaultBindings()
	known := make(map[input.Action]bool, len(input.Actions))
	for _, a := range input.Actions {
		known[a] = true
	}
	for _, kb := range f.Bindings {
		a := input.Action(kb.Action)
		if !known[a] {
			return nil, fmt.Errorf("parse keymap: unknown action %q", kb.Action)
		}
		keys := make([]input.Key, 0, len(kb.Keys))
		for _, name := range kb.Keys {
			k, err := input.ParseKey(name)
			if err != nil {
				return nil, fmt.Errorf("parse keymap: action %s: %w", a, err)
			}
			keys = append(keys, k)
		}
		b[a] = keys
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("parse keymap: %w", err)
	}
	return b, nil
}
