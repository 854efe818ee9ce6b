// Package dialog implements a modal choice menu: a prompt and an ordered
// list of actions cycled with left/right input and confirmed with a single
// accept input. The component holds no rendering concerns; callers present
// it and feed input events in.
package dialog

// Action is one selectable entry in a choice dialog.
type Action struct {
	ID      string
	Caption string
	Icon    string
}

// Dialog tracks the highlighted action and resolves exactly once, either
// with the accepted action or with nil on dismissal.
type Dialog struct {
	prompt   string
	actions  []Action
	index    int
	guarded  bool
	resolved bool
	resolve  func(*Action)
}

// Option configures a Dialog at construction time.
type Option func(*Dialog)

// WithGuard keeps accept and left/right input unbound until Settle is
// called. This stops the key that triggered the dialog from being read as
// its first input while still held down.
func WithGuard() Option {
	return func(d *Dialog) { d.guarded = true }
}

var defaultActions = []Action{
	{ID: "yes", Caption: "Yes"},
	{ID: "no", Caption: "No"},
}

// New returns a dialog over the provided actions. An empty action list
// falls back to Yes/No. The resolve callback receives the accepted action,
// or nil when the dialog is dismissed without a choice.
func New(prompt string, actions []Action, resolve func(*Action), opts ...Option) *Dialog {
	if len(actions) == 0 {
		actions = defaultActions
	}
	owned := make([]Action, len(actions))
	copy(owned, actions)
	d := &Dialog{prompt: prompt, actions: owned, resolve: resolve}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Prompt returns the dialog prompt. May be empty.
func (d *Dialog) Prompt() string { return d.prompt }

// Actions returns the action list in presentation order.
func (d *Dialog) Actions() []Action {
	out := make([]Action, len(d.actions))
	copy(out, d.actions)
	return out
}

// Index returns the highlighted action index.
func (d *Dialog) Index() int { return d.index }

// Current returns the highlighted action.
func (d *Dialog) Current() Action { return d.actions[d.index] }

// Ready reports whether the dialog accepts input.
func (d *Dialog) Ready() bool { return !d.guarded && !d.resolved }

// Settle unblocks a guarded dialog. Calling it again, or on an unguarded
// dialog, is a no-op.
func (d *Dialog) Settle() { d.guarded = false }

// Resolved reports whether the dialog has already resolved.
func (d *Dialog) Resolved() bool { return d.resolved }

// MoveLeft moves the highlight one action left, clamped at the first
// action. Returns false when nothing changed.
func (d *Dialog) MoveLeft() bool {
	if !d.Ready() || d.index == 0 {
		return false
	}
	d.index--
	return true
}

// MoveRight moves the highlight one action right, clamped at the last
// action. Returns false when nothing changed.
func (d *Dialog) MoveRight() bool {
	if !d.Ready() || d.index >= len(d.actions)-1 {
		return false
	}
	d.index++
	return true
}

// Accept resolves the dialog with the highlighted action. Returns false
// when the dialog is guarded or already resolved.
func (d *Dialog) Accept() bool {
	if !d.Ready() {
		return false
	}
	d.resolved = true
	if d.resolve != nil {
		d.resolve(&d.actions[d.index])
	}
	return true
}

// Dismiss resolves the dialog with no action. Callers treat this as
// cancel. Dismissing an already resolved dialog is a no-op.
func (d *Dialog) Dismiss() {
	if d.resolved {
		return
	}
	d.resolved = true
	if d.resolve != nil {
		d.resolve(nil)
	}
}
