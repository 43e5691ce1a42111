package dialogue

import (
	"fmt"
	"strings"
)

// Intent names the rule that produced a reply.
type Intent string

const (
	IntentOrderTracking Intent = "order_tracking"
	IntentMenu          Intent = "menu"
	IntentOffer         Intent = "offer"
	IntentGreeting      Intent = "greeting"
	IntentFallback      Intent = "fallback"
)

// Canned replies.
const (
	OrderAckReply = "Sure! I've pulled up your orders. Check the Orders panel for live status and ETA."
	MenuReply     = "Today's menu: Margherita Pizza, Paneer Tikka Wrap, Veg Hakka Noodles, Chicken Biryani and Chocolate Lava Cake."
	OfferReply    = "Today's offer: 20% off on orders above $25 with code FOOD20. Free delivery on your first order!"
	FallbackReply = "I can help with the menu, current offers, or tracking your order. Try asking \"show me the menu\" or \"where is my order?\""

	// OrderNotice is the one-shot banner set by order-related messages.
	OrderNotice = "Your orders have been refreshed in the Orders panel."

	greetingFormat = "Hello %s! What would you like to eat today?"
)

// Rule is one row of the reply table. A rule matches when the lower-cased
// utterance contains any of its keywords.
type Rule struct {
	Intent       Intent
	Keywords     []string
	Reply        func(identity string) string
	OrderRelated bool
}

// Matches reports whether lowered contains any keyword of r. lowered must
// already be lower-case.
func (r Rule) Matches(lowered string) bool {
	for _, k := range r.Keywords {
		if strings.Contains(lowered, k) {
			return true
		}
	}
	return false
}

// Classification is the outcome of matching one utterance.
type Classification struct {
	Intent       Intent
	Reply        string
	OrderRelated bool
}

func fixed(s string) func(string) string {
	return func(string) string { return s }
}

// DefaultRules returns the reply table in priority order. Order matters:
// "where is my order on the menu" must hit order tracking, not the menu.
func DefaultRules() []Rule {
	return []Rule{
		{
			Intent:       IntentOrderTracking,
			Keywords:     []string{"track", "status", "where", "order", "eta"},
			Reply:        fixed(OrderAckReply),
			OrderRelated: true,
		},
		{
			Intent:   IntentMenu,
			Keywords: []string{"menu"},
			Reply:    fixed(MenuReply),
		},
		{
			Intent:   IntentOffer,
			Keywords: []string{"offer", "discount"},
			Reply:    fixed(OfferReply),
		},
		{
			Intent:   IntentGreeting,
			Keywords: []string{"hi", "hello", "hey"},
			Reply: func(identity string) string {
				return fmt.Sprintf(greetingFormat, DisplayName(identity))
			},
		},
	}
}

// classify walks rules in order and returns the first match, or the fallback.
func classify(rules []Rule, identity, utterance string) Classification {
	lowered := strings.ToLower(utterance)
	for _, r := range rules {
		if !r.Matches(lowered) {
			continue
		}
		reply := ""
		if r.Reply != nil {
			reply = r.Reply(identity)
		}
		if strings.TrimSpace(reply) == "" {
			break
		}
		return Classification{Intent: r.Intent, Reply: reply, OrderRelated: r.OrderRelated}
	}
	return Classification{Intent: IntentFallback, Reply: FallbackReply}
}
