package scripting

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM holding tunable gameplay formulas.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// formulaNames lists the optional globals scripts may define.
var formulaNames = []string{"asteroid_scale", "asteroid_damage"}

// NewEngine creates a Lua engine and loads every script under dir and its
// asteroid/ subdirectory. Missing directories are skipped.
func NewEngine(dir string, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	e := newEngine(log)

	loaded := 0
	for _, sub := range []string{"", "asteroid"} {
		p := filepath.Join(dir, sub)
		n, err := e.loadDir(p)
		if err != nil {
			e.Close()
			return nil, fmt.Errorf("load %s scripts: %w", p, err)
		}
		loaded += n
	}

	var overridden []string
	for _, name := range formulaNames {
		if e.HasFunction(name) {
			overridden = append(overridden, name)
		}
	}
	log.Info("lua scripts loaded",
		zap.String("dir", dir),
		zap.Int("files", loaded),
		zap.Strings("formulas", overridden),
	)
	return e, nil
}

func newEngine(log *zap.Logger) *Engine {
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	return &Engine{vm: vm, log: log}
}

// loadDir runs the .lua files of dir in name order and returns how many
// were loaded.
func (e *Engine) loadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	n := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return n, fmt.Errorf("run %s: %w", entry.Name(), err)
		}
		n++
	}
	return n, nil
}

// Close releases the VM.
func (e *Engine) Close() {
	e.vm.Close()
}

// HasFunction reports whether a global Lua function named name exists.
func (e *Engine) HasFunction(name string) bool {
	_, ok := e.vm.GetGlobal(name).(*lua.LFunction)
	return ok
}

// AsteroidScale calls asteroid_scale(health). Falls back to h/15+1.
func (e *Engine) AsteroidScale(health float64) float64 {
	return e.callNumber("asteroid_scale", health, health/15+1)
}

// AsteroidDamage calls asteroid_damage(health). Falls back to health.
func (e *Engine) AsteroidDamage(health float64) float64 {
	return e.callNumber("asteroid_damage", health, health)
}

// callNumber calls a one-argument numeric Lua function. Missing functions
// return fallback silently; errors and non-numeric results are logged.
func (e *Engine) callNumber(name string, arg, fallback float64) float64 {
	fn, ok := e.vm.GetGlobal(name).(*lua.LFunction)
	if !ok {
		return fallback
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(arg)); err != nil {
		e.log.Error("lua call failed", zap.String("fn", name), zap.Error(err))
		return fallback
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	n, ok := result.(lua.LNumber)
	if !ok {
		e.log.Error("lua function returned non-number",
			zap.String("fn", name),
			zap.String("type", result.Type().String()),
		)
		return fallback
	}
	return float64(n)
}
