package dialog

// Set is the registry of dialogs a bot can run. Register every dialog once at
// construction time; beginning an unregistered ID fails with
// domain.ErrUnknownDialog.
type Set struct {
	dialogs map[string]Dialog
}

// NewSet creates an empty dialog registry.
func NewSet() *Set {
	return &Set{dialogs: make(map[string]Dialog)}
}

// Add registers a dialog under its ID, replacing any previous registration.
func (s *Set) Add(d Dialog) *Set {
	s.dialogs[d.id] = d
	return s
}

// CreateContext binds the registry to one turn, returning the handle used to
// begin, continue and end dialogs against the turn's persisted stack.
func (s *Set) CreateContext(tc *TurnContext) *Context {
	return &Context{set: s, turn: tc}
}
