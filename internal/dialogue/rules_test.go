package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_DefaultTable(t *testing.T) {
	tests := []struct {
		utterance string
		want      Intent
		order     bool
	}{
		{"Track my parcel", IntentOrderTracking, true},
		{"what's the STATUS", IntentOrderTracking, true},
		{"where is it", IntentOrderTracking, true},
		{"I want to order", IntentOrderTracking, true},
		{"eta?", IntentOrderTracking, true},
		{"track my order for the menu item", IntentOrderTracking, true},
		{"Show me the MENU", IntentMenu, false},
		{"menu with a discount", IntentMenu, false},
		{"any offers today", IntentOffer, false},
		{"Discount please", IntentOffer, false},
		{"hey", IntentGreeting, false},
		{"Hello!", IntentGreeting, false},
		{"hi", IntentGreeting, false},
		{"xyzzy", IntentFallback, false},
		{"thanks", IntentFallback, false},
	}

	rules := DefaultRules()
	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			got := classify(rules, "sam@example.com", tt.utterance)
			assert.Equal(t, tt.want, got.Intent)
			assert.Equal(t, tt.order, got.OrderRelated)
			assert.NotEmpty(t, got.Reply)
		})
	}
}

func TestClassify_FixedReplies(t *testing.T) {
	rules := DefaultRules()

	assert.Equal(t, OrderAckReply, classify(rules, "a@b.c", "track").Reply)
	assert.Equal(t, MenuReply, classify(rules, "a@b.c", "menu").Reply)
	assert.Equal(t, OfferReply, classify(rules, "a@b.c", "offer").Reply)
	assert.Equal(t, FallbackReply, classify(rules, "a@b.c", "zzz").Reply)
}

func TestClassify_OrderReplyCarriesNoOrderData(t *testing.T) {
	got := classify(DefaultRules(), "a@b.c", "track my order")
	assert.NotContains(t, got.Reply, "ETA:")
	assert.NotContains(t, got.Reply, "#")
}

func TestClassify_CustomTableOrderDecides(t *testing.T) {
	rules := []Rule{
		{Intent: IntentMenu, Keywords: []string{"menu"}, Reply: fixed("m")},
		{Intent: IntentOrderTracking, Keywords: []string{"order"}, Reply: fixed("o"), OrderRelated: true},
	}

	got := classify(rules, "a@b.c", "order from the menu")
	assert.Equal(t, IntentMenu, got.Intent)
	assert.Equal(t, "m", got.Reply)
	assert.False(t, got.OrderRelated)
}

func TestClassify_EmptyRuleReplyFallsBack(t *testing.T) {
	rules := []Rule{
		{Intent: IntentMenu, Keywords: []string{"menu"}, Reply: fixed("  ")},
		{Intent: IntentOffer, Keywords: []string{"menu"}},
	}

	got := classify(rules, "a@b.c", "menu")
	assert.Equal(t, IntentFallback, got.Intent)
	assert.Equal(t, FallbackReply, got.Reply)
}

func TestRule_Matches(t *testing.T) {
	r := Rule{Keywords: []string{"offer", "discount"}}
	assert.True(t, r.Matches("any discount"))
	assert.False(t, r.Matches("ANY DISCOUNT"), "Matches expects lower-cased input")
	assert.False(t, r.Matches("nothing"))
	assert.False(t, Rule{}.Matches("offer"))
}

func TestSpeaker_Valid(t *testing.T) {
	assert.True(t, SpeakerUser.Valid())
	assert.True(t, SpeakerAssistant.Valid())
	assert.False(t, Speaker("system").Valid())
	assert.False(t, Speaker("").Valid())
}
