package bot

import (
	"context"
	"fmt"

	"github.com/weikanglim/OrderBot/pkg/dialog"
)

// ProductQuery carries the argument for the product query dialog.
type ProductQuery struct {
	ProductName string `json:"product_name" mapstructure:"product_name"`
}

// productQueryDialog answers "what does X cost" in a single step: look up,
// reply, end. It never prompts.
func (b *Bot) productQueryDialog() dialog.Dialog {
	return dialog.New(ProductQueryDialogID, b.respondToQuery)
}

func (b *Bot) respondToQuery(ctx context.Context, sc *dialog.StepContext) (dialog.Action, error) {
	var query ProductQuery
	if err := dialog.DecodeOptions(sc.Options, &query); err != nil {
		return dialog.Action{}, err
	}

	matches := b.catalog.FindProduct(query.ProductName)
	if len(matches) == 0 {
		msg := fmt.Sprintf("I'm sorry. %s does not match an existing item.", query.ProductName)
		if err := sc.Turn.SendText(ctx, msg); err != nil {
			return dialog.Action{}, err
		}
		return sc.End(nil)
	}

	msg := fmt.Sprintf("The price of %s is $%.2f.", query.ProductName, matches[0].Price)
	if err := sc.Turn.SendText(ctx, msg); err != nil {
		return dialog.Action{}, err
	}
	return sc.End(nil)
}
