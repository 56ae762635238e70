package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/game/dice"
)

// globalPack is the key for scripts loaded without a pack name.
const globalPack = "__global__"

// Manager owns one sandboxed Lua VM per content pack, plus a global VM for
// shared scripts. Content packs get isolated state so a broken pack cannot
// corrupt another pack's globals. All VMs share the same dice roller, so
// script-driven rolls draw from the single game-wide generator stream.
//
// Manager is safe for concurrent use; each VM is guarded by the manager
// mutex (GopherLua LStates are not goroutine-safe).
type Manager struct {
	mu        sync.Mutex
	states    map[string]*lua.LState
	roller    *dice.Roller
	logger    *zap.Logger
	instLimit int
}

// NewManager creates a Manager whose VMs roll through roller and log to
// logger.
//
// Precondition: roller and logger must be non-nil.
func NewManager(roller *dice.Roller, logger *zap.Logger) *Manager {
	if roller == nil || logger == nil {
		panic("scripting: NewManager called with nil roller or logger")
	}
	return &Manager{
		states: make(map[string]*lua.LState),
		roller: roller,
		logger: logger,
	}
}

// SetInstructionLimit overrides the lifetime opcode limit for VMs created
// after the call. Zero restores DefaultInstructionLimit.
func (m *Manager) SetInstructionLimit(limit int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.instLimit = limit
}

// state returns the VM for pack, creating it on first use.
// Caller must hold m.mu.
func (m *Manager) state(pack string) *lua.LState {
	if L, ok := m.states[pack]; ok {
		return L
	}
	L := NewSandboxedState(m.instLimit)
	RegisterModules(L, m.roller)
	m.states[pack] = L
	return L
}

// Load executes the script file at path in the named pack's VM, creating
// the VM if needed. Functions and globals the script defines remain
// available for later CallHook invocations.
func (m *Manager) Load(pack, path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("scripting: stat %s: %w", path, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	L := m.state(pack)
	if err := L.DoFile(path); err != nil {
		m.logger.Error("script load failed",
			zap.String("pack", pack),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("scripting: load %s: %w", filepath.Base(path), err)
	}
	m.logger.Debug("script loaded",
		zap.String("pack", pack),
		zap.String("path", path),
	)
	return nil
}

// LoadGlobal executes the script file in the shared global VM.
func (m *Manager) LoadGlobal(path string) error {
	return m.Load(globalPack, path)
}

// CallHook invokes the named global function in the pack's VM with the
// given integer arguments and returns the single integer result. Falls
// back to the global VM if the pack has no VM or no such function.
//
// Postcondition: Returns the hook's integer result, or an error if the
// function does not exist in the pack or global VM, or raised a Lua error.
func (m *Manager) CallHook(pack, fn string, args ...int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	L, f := m.lookupHook(pack, fn)
	if f == nil {
		return 0, fmt.Errorf("scripting: hook %s not defined in pack %s or globally", fn, pack)
	}

	lv := make([]lua.LValue, len(args))
	for i, a := range args {
		lv[i] = lua.LNumber(a)
	}
	if err := L.CallByParam(lua.P{Fn: f, NRet: 1, Protect: true}, lv...); err != nil {
		return 0, fmt.Errorf("scripting: hook %s: %w", fn, err)
	}
	ret := L.Get(-1)
	L.Pop(1)

	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("scripting: hook %s returned %s, want number", fn, ret.Type())
	}
	return int(n), nil
}

// lookupHook finds fn in the pack's VM, then the global VM.
// Caller must hold m.mu.
func (m *Manager) lookupHook(pack, fn string) (*lua.LState, *lua.LFunction) {
	if L, ok := m.states[pack]; ok {
		if f, ok := L.GetGlobal(fn).(*lua.LFunction); ok {
			return L, f
		}
	}
	if L, ok := m.states[globalPack]; ok {
		if f, ok := L.GetGlobal(fn).(*lua.LFunction); ok {
			return L, f
		}
	}
	return nil, nil
}

// Close shuts down all VMs. The manager must not be used after Close.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for pack, L := range m.states {
		L.Close()
		delete(m.states, pack)
	}
}
