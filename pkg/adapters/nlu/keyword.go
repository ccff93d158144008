// Package nlu provides intent recognizers: a local catalog-aware keyword
// matcher and a client for a remote classification service.
package nlu

import (
	"context"
	"strings"

	"github.com/weikanglim/OrderBot/pkg/domain"
	"github.com/weikanglim/OrderBot/pkg/ports"
)

// Keyword is a local recognizer that classifies utterances by keyword and
// catalog-name matching. It is the default when no remote classifier is
// configured, so the bot runs self-contained.
type Keyword struct {
	catalog ports.Catalog
}

// NewKeyword creates a keyword recognizer over the given catalog.
func NewKeyword(catalog ports.Catalog) *Keyword {
	return &Keyword{catalog: catalog}
}

var priceMarkers = []string{"price", "cost", "how much", "what does"}

var orderMarkers = []string{"order", "buy", "add", "want", "i'd like", "give me", "get me"}

// Recognize classifies the utterance. A price question yields Products; order
// phrasing or a bare product mention yields Order; anything else is None.
// Matched catalog names are extracted as the "product" entity with their
// catalog casing.
func (r *Keyword) Recognize(ctx context.Context, text string) (domain.Recognition, error) {
	folded := strings.ToLower(strings.TrimSpace(text))
	if folded == "" {
		return domain.Recognition{TopIntent: domain.IntentNone, Confidence: 1.0}, nil
	}

	product, hasProduct := r.matchProduct(folded)
	var entities map[string][]string
	if hasProduct {
		entities = map[string][]string{domain.EntityProduct: {product}}
	}

	switch {
	case containsAny(folded, priceMarkers):
		return domain.Recognition{TopIntent: domain.IntentProducts, Confidence: 0.85, Entities: entities}, nil
	case containsAny(folded, orderMarkers):
		confidence := 0.75
		if hasProduct {
			confidence = 0.9
		}
		return domain.Recognition{TopIntent: domain.IntentOrder, Confidence: confidence, Entities: entities}, nil
	case hasProduct:
		// A bare product mention reads as wanting to order it.
		return domain.Recognition{TopIntent: domain.IntentOrder, Confidence: 0.6, Entities: entities}, nil
	default:
		return domain.Recognition{TopIntent: domain.IntentNone, Confidence: 0.5}, nil
	}
}

// matchProduct finds the catalog product mentioned in the utterance,
// preferring the longest name when several match.
func (r *Keyword) matchProduct(folded string) (string, bool) {
	var best string
	for _, p := range r.catalog.ListProducts() {
		name := strings.ToLower(p.Name)
		if strings.Contains(folded, name) && len(p.Name) > len(best) {
			best = p.Name
		}
	}
	return best, best != ""
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
