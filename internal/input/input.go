package input

import "sync"

// Action represents a logical intent, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionSprint
	ActionJump
	ActionPrimary   // remove the targeted block
	ActionSecondary // place a block against the targeted face
	ActionCount     // Sentinel value for array sizing
)

// Snapshot is the input state consumed once per tick. Movement intents are
// levels; jump and clicks are edges that fire on the tick they were pressed.
type Snapshot struct {
	MoveForward    bool
	MoveBackward   bool
	MoveLeft       bool
	MoveRight      bool
	Sprint         bool
	JumpRequested  bool
	PrimaryClick   bool
	SecondaryClick bool
}

// Manager maps named keys to actions and tracks per-tick edges. The windowing
// layer feeds it through HandleKey; the tick loop reads Snapshot and then
// calls PostUpdate.
type Manager struct {
	mu sync.RWMutex

	// Key name to action mapping (one key can map to multiple actions)
	keyToActions map[string][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
}

// NewManager creates a Manager with default WASD bindings.
func NewManager() *Manager {
	m := &Manager{keyToActions: make(map[string][]Action)}
	m.BindKey("w", ActionMoveForward)
	m.BindKey("s", ActionMoveBackward)
	m.BindKey("a", ActionMoveLeft)
	m.BindKey("d", ActionMoveRight)
	m.BindKey("shift", ActionSprint)
	m.BindKey("space", ActionJump)
	m.BindKey("mouse1", ActionPrimary)
	m.BindKey("mouse2", ActionSecondary)
	return m
}

// BindKey binds a key name to a logical action.
// Multiple keys can be bound to the same action.
func (m *Manager) BindKey(key string, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mu.Lock()
	m.keyToActions[key] = append(m.keyToActions[key], action)
	m.mu.Unlock()
}

// UnbindKey removes all action bindings for a key.
func (m *Manager) UnbindKey(key string) {
	m.mu.Lock()
	delete(m.keyToActions, key)
	m.mu.Unlock()
}

// HandleKey records a press or release of a named key.
func (m *Manager) HandleKey(key string, pressed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, act := range m.keyToActions[key] {
		m.setLocked(act, pressed)
	}
}

// SetAction sets an action directly, bypassing key bindings.
func (m *Manager) SetAction(action Action, pressed bool) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mu.Lock()
	m.setLocked(action, pressed)
	m.mu.Unlock()
}

func (m *Manager) setLocked(act Action, pressed bool) {
	if pressed && !m.currentState[act] {
		m.justPressed[act] = true
	}
	m.currentState[act] = pressed
}

// IsActive returns true if the action is currently being held down.
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentState[action]
}

// JustPressed returns true only if the action was pressed during the current tick.
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[action]
}

// Snapshot returns the state for the current tick.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		MoveForward:    m.currentState[ActionMoveForward],
		MoveBackward:   m.currentState[ActionMoveBackward],
		MoveLeft:       m.currentState[ActionMoveLeft],
		MoveRight:      m.currentState[ActionMoveRight],
		Sprint:         m.currentState[ActionSprint],
		JumpRequested:  m.justPressed[ActionJump] || m.currentState[ActionJump],
		PrimaryClick:   m.justPressed[ActionPrimary],
		SecondaryClick: m.justPressed[ActionSecondary],
	}
}

// PostUpdate clears edge flags. Call once at the end of each tick.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range ActionCount {
		m.justPressed[i] = false
	}
}
