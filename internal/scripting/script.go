// Package scripting groups reusable game actions by name. It is an
// alternative to the Director's fixed frame sequence: callers add actions to
// groups such as "input", "update" or "output" and execute a group per frame.
package scripting

import "github.com/vovakirdan/greed/internal/casting"

// Action is one step a script can run against the cast.
type Action interface {
	Execute(cast *casting.Cast, script *Script)
}

// ActionFunc adapts a function to the Action interface.
// Function values are not comparable, so wrap them with NewActionFunc to get
// a pointer the registry can deduplicate.
type ActionFunc struct {
	fn func(cast *casting.Cast, script *Script)
}

// NewActionFunc wraps fn as an Action.
func NewActionFunc(fn func(cast *casting.Cast, script *Script)) *ActionFunc {
	return &ActionFunc{fn: fn}
}

// Execute calls the wrapped function.
func (a *ActionFunc) Execute(cast *casting.Cast, script *Script) {
	a.fn(cast, script)
}

// Script keeps track of actions grouped by name.
type Script struct {
	actions map[string][]Action
}

// NewScript creates an empty script.
func NewScript() *Script {
	return &Script{
		actions: make(map[string][]Action),
	}
}

// AddAction appends action to group unless the group already holds it.
func (s *Script) AddAction(group string, action Action) {
	for _, a := range s.actions[group] {
		if a == action {
			return
		}
	}
	s.actions[group] = append(s.actions[group], action)
}

// Actions returns a copy of the actions in group.
// Returns an empty slice if there aren't any.
func (s *Script) Actions(group string) []Action {
	actions := s.actions[group]
	result := make([]Action, len(actions))
	copy(result, actions)
	return result
}

// RemoveAction removes action from group if present.
func (s *Script) RemoveAction(group string, action Action) {
	actions := s.actions[group]
	for i, a := range actions {
		if a == action {
			s.actions[group] = append(actions[:i:i], actions[i+1:]...)
			return
		}
	}
}

// Execute runs every action of group in order. The group is copied first,
// so actions may add or remove actions while it runs.
func (s *Script) Execute(group string, cast *casting.Cast) {
	for _, a := range s.Actions(group) {
		a.Execute(cast, s)
	}
}
