package dialog

import (
	"context"
	"fmt"
	"strings"

	"github.com/weikanglim/OrderBot/pkg/domain"
)

// Status reports what a turn continuation accomplished.
type Status string

const (
	// StatusEmpty means the stack was empty: nothing to resume.
	StatusEmpty Status = "empty"

	// StatusWaiting means a prompt was issued; the dialog suspended until the
	// next inbound message.
	StatusWaiting Status = "waiting"

	// StatusComplete means the last frame popped; a result is available.
	StatusComplete Status = "complete"
)

// Result is the outcome of a Begin or Continue call.
type Result struct {
	Status Status
	Value  any
}

// maxStepHops bounds step transitions within a single turn. A well-formed
// dialog suspends or completes long before this; hitting the limit means a
// step cycle never reaches a prompt.
const maxStepHops = 32

// Context drives the dialog stack for one turn.
type Context struct {
	set  *Set
	turn *TurnContext
}

// Turn returns the bound turn context.
func (c *Context) Turn() *TurnContext { return c.turn }

// Begin pushes a new frame for the named dialog and invokes its first step
// with options as the initial carried value.
func (c *Context) Begin(ctx context.Context, id string, options any) (Result, error) {
	d, ok := c.set.dialogs[id]
	if !ok {
		return Result{}, fmt.Errorf("begin dialog %q: %w", id, domain.ErrUnknownDialog)
	}
	c.push(domain.Frame{Dialog: id})
	return c.run(ctx, d, 0, options, options)
}

// Continue resumes the top frame with the turn input interpreted as the answer
// to its pending prompt. With an empty stack it returns StatusEmpty. If the
// turn input was already consumed (or is blank) the dialog stays suspended and
// nothing is sent, so resuming a waiting dialog twice is a no-op.
func (c *Context) Continue(ctx context.Context) (Result, error) {
	if len(c.stack()) == 0 {
		return Result{Status: StatusEmpty}, nil
	}

	top := c.top()
	d, ok := c.set.dialogs[top.Dialog]
	if !ok {
		return Result{}, fmt.Errorf("resume dialog %q: %w", top.Dialog, domain.ErrUnknownDialog)
	}
	if top.Prompt == nil {
		return Result{}, fmt.Errorf("dialog %q suspended without a pending prompt: %w", top.Dialog, domain.ErrStepProtocol)
	}

	input, ok := c.turn.takeInput()
	if !ok {
		return Result{Status: StatusWaiting}, nil
	}

	matched, ok := matchChoice(input, top.Prompt.Choices)
	if !ok {
		retry := top.Prompt.Retry
		if retry == "" {
			retry = top.Prompt.Text
		}
		if err := c.turn.Send(ctx, promptReply(retry, top.Prompt.Choices)); err != nil {
			return Result{}, err
		}
		return Result{Status: StatusWaiting}, nil
	}

	// The answer feeds the step immediately after the one that prompted.
	step := top.Step + 1
	top.Step = step
	top.Prompt = nil
	return c.run(ctx, d, step, nil, Choice{Value: matched})
}

// Replace atomically pops the top frame and begins the named dialog.
func (c *Context) Replace(ctx context.Context, id string, options any) (Result, error) {
	if _, ok := c.set.dialogs[id]; !ok {
		return Result{}, fmt.Errorf("replace dialog %q: %w", id, domain.ErrUnknownDialog)
	}
	if len(c.stack()) > 0 {
		c.pop()
	}
	return c.Begin(ctx, id, options)
}

// End pops the top frame, if any.
func (c *Context) End(ctx context.Context) error {
	if len(c.stack()) > 0 {
		c.pop()
	}
	return nil
}

// CancelAll pops every frame unconditionally.
func (c *Context) CancelAll(ctx context.Context) error {
	c.turn.State.Stack = nil
	return nil
}

// run executes steps of d starting at step, following the waterfall until a
// prompt suspends the turn or the stack empties.
func (c *Context) run(ctx context.Context, d Dialog, step int, options, carried any) (Result, error) {
	for hops := 0; hops < maxStepHops; hops++ {
		var act Action
		if step >= len(d.steps) {
			// Walked off the end of the waterfall: implicit end.
			act = Action{kind: actionEnd, value: carried}
		} else {
			sc := &StepContext{Turn: c.turn, Options: options, Result: carried}
			var err error
			act, err = d.steps[step](ctx, sc)
			if err != nil {
				return Result{}, err
			}
		}

		switch act.kind {
		case actionNext:
			step++
			c.top().Step = step
			carried = act.value

		case actionPrompt:
			top := c.top()
			top.Step = step
			top.Prompt = &domain.PromptState{
				Text:    act.prompt.Text,
				Retry:   act.prompt.Retry,
				Choices: append([]string(nil), act.prompt.Choices...),
			}
			if err := c.turn.Send(ctx, promptReply(act.prompt.Text, act.prompt.Choices)); err != nil {
				return Result{}, err
			}
			return Result{Status: StatusWaiting}, nil

		case actionEnd:
			c.pop()
			if len(c.stack()) == 0 {
				return Result{Status: StatusComplete, Value: act.value}, nil
			}
			// Resume the parent at the step after the one that began us.
			parent := c.top()
			pd, ok := c.set.dialogs[parent.Dialog]
			if !ok {
				return Result{}, fmt.Errorf("resume dialog %q: %w", parent.Dialog, domain.ErrUnknownDialog)
			}
			d = pd
			step = parent.Step + 1
			parent.Step = step
			parent.Prompt = nil
			options = nil
			carried = act.value

		case actionReplace:
			nd, ok := c.set.dialogs[act.dialog]
			if !ok {
				return Result{}, fmt.Errorf("replace dialog %q: %w", act.dialog, domain.ErrUnknownDialog)
			}
			c.pop()
			c.push(domain.Frame{Dialog: act.dialog})
			d = nd
			step = 0
			options = act.options
			carried = act.options

		case actionBegin:
			nd, ok := c.set.dialogs[act.dialog]
			if !ok {
				return Result{}, fmt.Errorf("begin dialog %q: %w", act.dialog, domain.ErrUnknownDialog)
			}
			c.push(domain.Frame{Dialog: act.dialog})
			d = nd
			step = 0
			options = act.options
			carried = act.options

		default:
			return Result{}, fmt.Errorf("dialog %q step %d: %w", d.id, step, domain.ErrStepProtocol)
		}
	}
	return Result{}, fmt.Errorf("dialog %q exceeded %d step transitions in one turn: %w", d.id, maxStepHops, domain.ErrStepProtocol)
}

func (c *Context) stack() []domain.Frame { return c.turn.State.Stack }

func (c *Context) top() *domain.Frame {
	s := c.turn.State.Stack
	return &s[len(s)-1]
}

func (c *Context) push(f domain.Frame) {
	c.turn.State.Stack = append(c.turn.State.Stack, f)
}

func (c *Context) pop() {
	s := c.turn.State.Stack
	c.turn.State.Stack = s[:len(s)-1]
}

// matchChoice resolves raw input against the offered choice labels. The input
// matches a label case-insensitively: exact match first, otherwise the first
// label containing the input as a substring. A prompt with no choices accepts
// any input verbatim.
func matchChoice(input string, choices []string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if len(choices) == 0 {
		return trimmed, true
	}
	folded := strings.ToLower(trimmed)
	if folded == "" {
		return "", false
	}
	for _, choice := range choices {
		if strings.ToLower(choice) == folded {
			return choice, true
		}
	}
	for _, choice := range choices {
		if strings.Contains(strings.ToLower(choice), folded) {
			return choice, true
		}
	}
	return "", false
}

func promptReply(text string, choices []string) domain.Reply {
	reply := domain.Reply{Text: text}
	for _, choice := range choices {
		reply.SuggestedActions = append(reply.SuggestedActions, domain.SuggestedAction{
			Title: choice,
			Value: choice,
		})
	}
	return reply
}
