package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/weikanglim/OrderBot/pkg/dialog"
	"github.com/weikanglim/OrderBot/pkg/domain"
)

// interrupts are the reserved commands offered alongside catalog items in the
// order menu.
var interrupts = []string{
	"More info",
	"Process order",
	"Help",
	"Cancel",
}

const orderHelpText = "To make an order, add as many items to your cart as you like. " +
	"Choose the `Process order` to check out. " +
	"Choose `Cancel` to cancel your order and exit."

// orderDialog is the order-taking waterfall: initialize the cart, prompt for
// an item, process the selection, confirm, finalize. Adding an item restarts
// the flow from the top via replace so more items can be added.
func (b *Bot) orderDialog() dialog.Dialog {
	return dialog.New(OrderDialogID,
		b.initializeOrder,
		b.promptForItem,
		b.processItemSelection,
		b.confirmFinalOrder,
		b.processFinalOrder,
	)
}

// initializeOrder lazily creates the cart, seeding it from begin options when
// the caller passed a pre-populated order.
func (b *Bot) initializeOrder(ctx context.Context, sc *dialog.StepContext) (dialog.Action, error) {
	state := sc.Turn.State
	if state.Order == nil {
		if seeded, ok := sc.Options.(*domain.Order); ok && seeded != nil {
			state.Order = seeded
		} else {
			state.Order = domain.NewOrder()
		}
	}
	return sc.Next(nil)
}

// promptForItem asks what to add. When the recognizer already extracted an
// item this turn, it short-circuits to the processing step as if the user had
// answered with it.
func (b *Bot) promptForItem(ctx context.Context, sc *dialog.StepContext) (dialog.Action, error) {
	order := sc.Turn.State.Order

	if item, ok := order.TakePendingItem(); ok {
		return sc.Next(dialog.Choice{Value: item})
	}

	hasItems := order.HasItems()
	promptText := "What would you like to order?"
	if hasItems {
		promptText = "Would you like to add something else?"
	}

	choices := make([]string, 0, len(interrupts))
	for _, p := range b.catalog.ListProducts() {
		choices = append(choices, p.Name)
	}
	choices = append(choices, interrupts...)

	if hasItems {
		// Checking out is the likeliest next action once the cart has items.
		choices = promoteChoice(choices, "process order")
	}

	return sc.Prompt(dialog.Prompt{
		Text:    promptText,
		Retry:   "I'm sorry, I didn't understand that. What would you like to order?",
		Choices: choices,
	})
}

// processItemSelection handles the menu answer: interrupt commands first, then
// anything else is treated as a product selection.
func (b *Bot) processItemSelection(ctx context.Context, sc *dialog.StepContext) (dialog.Action, error) {
	choice, _ := sc.Result.(dialog.Choice)
	response := choice.Value
	order := sc.Turn.State.Order

	switch strings.ToLower(response) {
	case "process order":
		return sc.Next(nil)

	case "more info":
		var lines []string
		for _, p := range b.catalog.ListProducts() {
			lines = append(lines, p.ExtendedDescription())
		}
		if err := sc.Turn.SendText(ctx, "More info: \n"+strings.Join(lines, "\n")); err != nil {
			return dialog.Action{}, err
		}
		return sc.Replace(OrderDialogID, nil)

	case "cancel":
		if err := sc.Turn.SendText(ctx, "Your order has been canceled"); err != nil {
			return dialog.Action{}, err
		}
		sc.Turn.State.Order = nil
		return sc.End(nil)

	case "help":
		if err := sc.Turn.SendText(ctx, orderHelpText); err != nil {
			return dialog.Action{}, err
		}
		return sc.Replace(OrderDialogID, nil)
	}

	// Not an interrupt: treat the text before the first ':' as a product name.
	productName := strings.TrimRight(strings.SplitN(response, ":", 2)[0], " ")
	matches := b.catalog.FindProduct(productName)
	if len(matches) == 0 {
		b.logger.Debug("item not in catalog", "item", productName, "error", domain.ErrProductNotFound)
		if err := sc.Turn.SendText(ctx, "Sorry, that is not a valid item. Please pick one from the menu."); err != nil {
			return dialog.Action{}, err
		}
		return sc.Replace(OrderDialogID, nil)
	}

	order.AddItem(matches[0])
	ack := fmt.Sprintf("Added `%s` to your order; your total is $%.2f.", response, order.Total)
	if err := sc.Turn.SendText(ctx, ack); err != nil {
		return dialog.Action{}, err
	}
	order.ClearPendingItem()
	return sc.Replace(OrderDialogID, nil)
}

// confirmFinalOrder renders the cart and asks to proceed.
func (b *Bot) confirmFinalOrder(ctx context.Context, sc *dialog.StepContext) (dialog.Action, error) {
	order := sc.Turn.State.Order

	var lines []string
	for _, p := range order.Items {
		lines = append(lines, p.String())
	}
	confirmText := "Your final order: \n" +
		strings.Join(lines, "\n") +
		fmt.Sprintf("\n Total: %.2f", order.Total) +
		"\n Would you like to proceed?"

	return sc.Prompt(dialog.Prompt{
		Text:    confirmText,
		Retry:   "I'm sorry, I didn't quite understand that. Would you like to proceed?",
		Choices: []string{"Yes", "No"},
	})
}

// processFinalOrder finalizes on consent. Only an explicit "No" resumes
// shopping; the matched "Yes" choice places the order. This preserves the
// source behavior of treating anything but "No" as consent — unmatched free
// text never reaches this step because the confirmation prompt re-prompts on
// it.
func (b *Bot) processFinalOrder(ctx context.Context, sc *dialog.StepContext) (dialog.Action, error) {
	choice, _ := sc.Result.(dialog.Choice)
	order := sc.Turn.State.Order

	if strings.EqualFold(choice.Value, "No") {
		return sc.Replace(OrderDialogID, nil)
	}

	order.MarkReady(b.now())
	if err := sc.Turn.SendText(ctx, "Your order has been placed."); err != nil {
		return dialog.Action{}, err
	}
	order.MarkProcessed()
	b.metrics.ObserveOrderPlaced(order.Total)

	sc.Turn.State.Order = nil
	return sc.End(nil)
}

// promoteChoice moves the named choice to the front of the list.
func promoteChoice(choices []string, name string) []string {
	for i, c := range choices {
		if strings.EqualFold(c, name) {
			promoted := append([]string{c}, choices[:i]...)
			return append(promoted, choices[i+1:]...)
		}
	}
	return choices
}
