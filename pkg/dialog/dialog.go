package dialog

import "context"

// Dialog is a named, ordered sequence of steps. Dialogs are data: the set maps
// IDs to step lists, and the engine drives whichever dialog sits on top of the
// conversation's stack.
type Dialog struct {
	id    string
	steps []Step
}

// New builds a dialog from an ID and its ordered steps.
func New(id string, steps ...Step) Dialog {
	return Dialog{id: id, steps: steps}
}

// ID returns the dialog's registered identifier.
func (d Dialog) ID() string { return d.id }

// Step is one waterfall step. It receives the prior step's result (or the
// begin options for the first step) and must return exactly one action:
// advance, prompt, end, replace or begin. Returning the zero Action is a
// protocol violation surfaced as domain.ErrStepProtocol.
type Step func(ctx context.Context, sc *StepContext) (Action, error)

// Choice is the matched answer fed to the step following a prompt.
type Choice struct {
	Value string
}

// Prompt describes a suspension point: the question, the retry text issued on
// an unmatched answer, and the acceptable choices.
type Prompt struct {
	Text    string
	Retry   string
	Choices []string
}

type actionKind int

const (
	actionNext actionKind = iota + 1
	actionPrompt
	actionEnd
	actionReplace
	actionBegin
)

// Action is the closed variant set a step returns. Construct instances only
// through the StepContext helpers; the zero value means the step violated the
// step protocol.
type Action struct {
	kind    actionKind
	value   any
	prompt  Prompt
	dialog  string
	options any
}

// StepContext carries the per-invocation data for one step: the turn, the
// begin options, and the prior step's result.
type StepContext struct {
	// Turn is the turn context shared by every step that runs this turn.
	Turn *TurnContext

	// Options is the value passed to Begin or Replace for this dialog.
	Options any

	// Result is the prior step's carried value. After a prompt it is a Choice
	// holding the matched answer.
	Result any
}

// Next advances to the following step in this dialog, carrying value forward.
func (sc *StepContext) Next(value any) (Action, error) {
	return Action{kind: actionNext, value: value}, nil
}

// Prompt suspends the dialog: the question is sent, the resumption point is
// recorded, and turn processing stops until the next inbound message.
func (sc *StepContext) Prompt(p Prompt) (Action, error) {
	return Action{kind: actionPrompt, prompt: p}, nil
}

// End pops this dialog, carrying result to the step that began it, if any.
func (sc *StepContext) End(result any) (Action, error) {
	return Action{kind: actionEnd, value: result}, nil
}

// Replace atomically pops this dialog and begins the named one, discarding
// this frame's private state. Used to restart a flow from a clean step.
func (sc *StepContext) Replace(dialogID string, options any) (Action, error) {
	return Action{kind: actionReplace, dialog: dialogID, options: options}, nil
}

// Begin pushes the named dialog on top of this one within the same turn.
func (sc *StepContext) Begin(dialogID string, options any) (Action, error) {
	return Action{kind: actionBegin, dialog: dialogID, options: options}, nil
}
