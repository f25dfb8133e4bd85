package input

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key reported by the input collaborator.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight
	ShiftLeft
	ControlLeft
	Space
	Tab
	Escape
	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown:  "unknown",
	KeyW:        "w",
	KeyA:        "a",
	KeyS:        "s",
	KeyD:        "d",
	KeyQ:        "q",
	ArrowUp:     "up",
	ArrowDown:   "down",
	ArrowLeft:   "left",
	ArrowRight:  "right",
	ShiftLeft:   "shift",
	ControlLeft: "ctrl",
	Space:       "space",
	Tab:         "tab",
	Escape:      "esc",
}

var keyAliases = map[string]Key{
	"arrowup":     ArrowUp,
	"arrowdown":   ArrowDown,
	"arrowleft":   ArrowLeft,
	"arrowright":  ArrowRight,
	"shiftleft":   ShiftLeft,
	"controlleft": ControlLeft,
	"control":     ControlLeft,
	"escape":      Escape,
	"keyw":        KeyW,
	"keya":        KeyA,
	"keys":        KeyS,
	"keyd":        KeyD,
	"keyq":        KeyQ,
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// ParseKey resolves a case-insensitive key name.
func ParseKey(name string) (Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k := KeyW; k < keyCount; k++ {
		if keyNames[k] == n {
			return k, nil
		}
	}
	if k, ok := keyAliases[n]; ok {
		return k, nil
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}

// ParseKeys parses a whitespace separated key list, e.g. "w space".
func ParseKeys(line string) ([]Key, error) {
	fields := strings.Fields(line)
	keys := make([]Key, 0, len(fields))
	for _, f := range fields {
		k, err := ParseKey(f)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
