package domain

import (
	"fmt"
	"testing"
)

const testUserID = "15551234567"

func newTestCatalog(t *testing.T, n int) *Catalog {
	t.Helper()
	products := make([]Product, n)
	for i := range products {
		products[i] = Product{
			Name:        fmt.Sprintf("Product %d", i),
			Description: fmt.Sprintf("Description %d", i),
		}
	}
	catalog, err := NewCatalog(products)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return catalog
}

func sessionAt(stage Stage, index int) *ConversationSession {
	s := NewConversationSession(testUserID)
	s.Stage = stage
	s.ProductIndex = index
	return s
}

// Scenario A: no session + greeting creates a session at AskName with a welcome template
func TestDecide_GreetingCreatesSession(t *testing.T) {
	catalog := newTestCatalog(t, 5)

	d := Decide(testUserID, TextMessage("hello there"), nil, catalog)

	if d.Action != ActionCreateOrReplace {
		t.Fatalf("expected %s, got %s", ActionCreateOrReplace, d.Action)
	}
	if d.Session == nil || d.Session.Stage != StageAskName {
		t.Fatalf("expected session at %s, got %+v", StageAskName, d.Session)
	}
	if d.Session.Data.PhoneNumber != testUserID {
		t.Errorf("expected phone number %s, got %s", testUserID, d.Session.Data.PhoneNumber)
	}
	if len(d.Effects) != 1 || d.Effects[0].Kind != EffectWelcome {
		t.Fatalf("expected one welcome effect, got %+v", d.Effects)
	}
	if d.Effects[0].To != testUserID {
		t.Errorf("expected welcome to %s, got %s", testUserID, d.Effects[0].To)
	}
	if d.Lead != nil {
		t.Error("expected no lead on greeting")
	}
}

func TestDecide_GreetingIsCaseInsensitiveSubstring(t *testing.T) {
	catalog := newTestCatalog(t, 1)
	for _, text := range []string{"HELLO", "Hello!", "well hello friend", "sayHeLLoNow"} {
		d := Decide(testUserID, TextMessage(text), nil, catalog)
		if d.Action != ActionCreateOrReplace {
			t.Errorf("expected %q to open a conversation, got %s", text, d.Action)
		}
	}
}

func TestDecide_NoSessionIgnoresNonGreeting(t *testing.T) {
	catalog := newTestCatalog(t, 3)
	inputs := []InboundMessage{
		TextMessage("hi"),
		TextMessage("done"),
		TextMessage("stop"),
		TextMessage("helo"),
		ButtonReplyMessage(ButtonNextProduct),
		TextMessage(""),
	}
	for _, msg := range inputs {
		d := Decide(testUserID, msg, nil, catalog)
		if d.Action != ActionNoChange {
			t.Errorf("expected no change for %+v, got %s", msg, d.Action)
		}
		if len(d.Effects) != 0 {
			t.Errorf("expected no effects for %+v, got %+v", msg, d.Effects)
		}
		if d.Lead != nil {
			t.Errorf("expected no lead for %+v", msg)
		}
	}
}

// TestDecide_QuestionFlow walks the full question sequence and checks each
// transition sets exactly one new field
func TestDecide_QuestionFlow(t *testing.T) {
	catalog := newTestCatalog(t, 5)

	steps := []struct {
		answer    string
		nextStage Stage
		reply     string
		check     func(LeadData) string
	}{
		{"Jane Doe", StageAskCountry, TextAskCountry, func(l LeadData) string { return l.FullName }},
		{"N/A", StageAskCompany, TextAskCompany, func(l LeadData) string { return l.Country }},
		{"Acme Ltd", StageAskEmail, TextAskEmail, func(l LeadData) string { return l.CompanyName }},
		{"a@b.com", StageProductMenu, TextInstructions, func(l LeadData) string { return l.Email }},
	}

	session := NewConversationSession(testUserID)
	for _, step := range steps {
		before := session.Data
		d := Decide(testUserID, TextMessage(step.answer), session, catalog)

		if d.Action != ActionCreateOrReplace {
			t.Fatalf("answer %q: expected %s, got %s", step.answer, ActionCreateOrReplace, d.Action)
		}
		if d.Session.Stage != step.nextStage {
			t.Fatalf("answer %q: expected stage %s, got %s", step.answer, step.nextStage, d.Session.Stage)
		}
		if got := step.check(d.Session.Data); got != step.answer {
			t.Errorf("answer %q: expected field to hold the raw answer, got %q", step.answer, got)
		}
		if d.Effects[0].Kind != EffectText || d.Effects[0].Text != step.reply {
			t.Errorf("answer %q: expected reply %q, got %+v", step.answer, step.reply, d.Effects[0])
		}

		// Previously collected fields are untouched
		if before.FullName != "" && d.Session.Data.FullName != before.FullName {
			t.Errorf("FullName overwritten: %q -> %q", before.FullName, d.Session.Data.FullName)
		}
		if before.Country != "" && d.Session.Data.Country != before.Country {
			t.Errorf("Country overwritten: %q -> %q", before.Country, d.Session.Data.Country)
		}
		if before.CompanyName != "" && d.Session.Data.CompanyName != before.CompanyName {
			t.Errorf("CompanyName overwritten: %q -> %q", before.CompanyName, d.Session.Data.CompanyName)
		}

		// Decide must not mutate its input
		if session.Data != before {
			t.Errorf("input session mutated: %+v -> %+v", before, session.Data)
		}

		session = d.Session
	}

	want := LeadData{
		PhoneNumber: testUserID,
		FullName:    "Jane Doe",
		Country:     "N/A",
		CompanyName: "Acme Ltd",
		Email:       "a@b.com",
	}
	if session.Data != want {
		t.Errorf("expected collected data %+v, got %+v", want, session.Data)
	}
}

// Scenario B: AskEmail answer moves to ProductMenu with instructions and the first card
func TestDecide_EmailEntersProductMenu(t *testing.T) {
	catalog := newTestCatalog(t, 5)
	session := sessionAt(StageAskEmail, 0)

	d := Decide(testUserID, TextMessage("a@b.com"), session, catalog)

	if d.Session.Stage != StageProductMenu {
		t.Fatalf("expected %s, got %s", StageProductMenu, d.Session.Stage)
	}
	if d.Session.ProductIndex != 0 {
		t.Errorf("expected ProductIndex 0, got %d", d.Session.ProductIndex)
	}
	if d.Session.Data.Email != "a@b.com" {
		t.Errorf("expected email a@b.com, got %s", d.Session.Data.Email)
	}
	if len(d.Effects) != 2 {
		t.Fatalf("expected 2 effects, got %d", len(d.Effects))
	}
	if d.Effects[0].Kind != EffectText || d.Effects[0].Text != TextInstructions {
		t.Errorf("expected instructions first, got %+v", d.Effects[0])
	}
	if d.Effects[1].Kind != EffectProductCard || d.Effects[1].ProductIndex != 0 {
		t.Errorf("expected product card 0 second, got %+v", d.Effects[1])
	}
	if d.Effects[1].Product.Name != "Product 0" {
		t.Errorf("expected card for Product 0, got %s", d.Effects[1].Product.Name)
	}
}

// Scenario C: next_product advances the cursor and shows one card
func TestDecide_NextProduct(t *testing.T) {
	catalog := newTestCatalog(t, 5)
	session := sessionAt(StageProductMenu, 2)

	d := Decide(testUserID, ButtonReplyMessage(ButtonNextProduct), session, catalog)

	if d.Action != ActionCreateOrReplace {
		t.Fatalf("expected %s, got %s", ActionCreateOrReplace, d.Action)
	}
	if d.Session.ProductIndex != 3 {
		t.Errorf("expected ProductIndex 3, got %d", d.Session.ProductIndex)
	}
	if len(d.Effects) != 1 || d.Effects[0].Kind != EffectProductCard || d.Effects[0].ProductIndex != 3 {
		t.Errorf("expected one card for index 3, got %+v", d.Effects)
	}
}

// Scenario D: prev_product at index 0 wraps to the last item
func TestDecide_PrevProductWraps(t *testing.T) {
	catalog := newTestCatalog(t, 5)
	session := sessionAt(StageProductMenu, 0)

	d := Decide(testUserID, ButtonReplyMessage(ButtonPrevProduct), session, catalog)

	if d.Session.ProductIndex != 4 {
		t.Errorf("expected ProductIndex 4, got %d", d.Session.ProductIndex)
	}
	if len(d.Effects) != 1 || d.Effects[0].Product.Name != "Product 4" {
		t.Errorf("expected card for Product 4, got %+v", d.Effects)
	}
}

func TestDecide_NextProductFullCycle(t *testing.T) {
	const n = 5
	catalog := newTestCatalog(t, n)
	session := sessionAt(StageProductMenu, 3)

	for i := 0; i < n; i++ {
		d := Decide(testUserID, ButtonReplyMessage(ButtonNextProduct), session, catalog)
		session = d.Session
	}

	if session.ProductIndex != 3 {
		t.Errorf("expected to return to index 3 after %d steps, got %d", n, session.ProductIndex)
	}
}

func TestDecide_ProductMenuIgnoresOtherInput(t *testing.T) {
	catalog := newTestCatalog(t, 5)
	session := sessionAt(StageProductMenu, 1)

	for _, msg := range []InboundMessage{TextMessage("what else?"), ButtonReplyMessage("select_product"), TextMessage("")} {
		d := Decide(testUserID, msg, session, catalog)
		if d.Action != ActionNoChange {
			t.Errorf("expected no change for %+v, got %s", msg, d.Action)
		}
		if len(d.Effects) != 0 {
			t.Errorf("expected no effects for %+v, got %+v", msg, d.Effects)
		}
	}
}

// Scenario E: STOP mid-flow deletes the session and records product 0
func TestDecide_StopBeforeProductMenu(t *testing.T) {
	catalog := newTestCatalog(t, 5)
	session := sessionAt(StageAskCompany, 0)
	session.Data.FullName = "Jane Doe"
	session.Data.Country = "Kenya"

	d := Decide(testUserID, TextMessage("STOP"), session, catalog)

	if d.Action != ActionDelete {
		t.Fatalf("expected %s, got %s", ActionDelete, d.Action)
	}
	if d.Session != nil {
		t.Error("expected no session on delete")
	}
	if d.Lead == nil {
		t.Fatal("expected a lead to persist")
	}
	if d.Lead.SelectedProduct != "Product 0" {
		t.Errorf("expected selected product 'Product 0', got %q", d.Lead.SelectedProduct)
	}
	if d.Lead.FullName != "Jane Doe" || d.Lead.Country != "Kenya" || d.Lead.CompanyName != "" {
		t.Errorf("expected lead to contain fields collected so far, got %+v", d.Lead)
	}
	if len(d.Effects) != 1 || d.Effects[0].Kind != EffectText || d.Effects[0].Text != TextConfirmation {
		t.Errorf("expected one confirmation text, got %+v", d.Effects)
	}
	if session.Data.SelectedProduct != "" {
		t.Error("expected input session to stay untouched")
	}
}

func TestDecide_CompletionAtEveryStage(t *testing.T) {
	catalog := newTestCatalog(t, 5)
	stages := []Stage{StageAskName, StageAskCountry, StageAskCompany, StageAskEmail, StageProductMenu}
	commands := []string{"done", "DONE", "Done", "stop", "Stop", "sToP"}

	for _, stage := range stages {
		for _, cmd := range commands {
			session := sessionAt(stage, 2)
			d := Decide(testUserID, TextMessage(cmd), session, catalog)
			if d.Action != ActionDelete {
				t.Errorf("stage %s, %q: expected delete, got %s", stage, cmd, d.Action)
				continue
			}
			if d.Lead == nil || d.Lead.SelectedProduct != "Product 2" {
				t.Errorf("stage %s, %q: expected Product 2 selected, got %+v", stage, cmd, d.Lead)
			}
		}
	}
}

func TestDecide_CompletionRequiresExactMatch(t *testing.T) {
	catalog := newTestCatalog(t, 5)
	session := sessionAt(StageAskName, 0)

	d := Decide(testUserID, TextMessage("I am done"), session, catalog)

	if d.Action != ActionCreateOrReplace {
		t.Fatalf("expected the text to be taken as a name, got %s", d.Action)
	}
	if d.Session.Data.FullName != "I am done" {
		t.Errorf("expected FullName 'I am done', got %q", d.Session.Data.FullName)
	}
}

func TestDecide_CompletionFromProductMenuRecordsCurrentProduct(t *testing.T) {
	catalog := newTestCatalog(t, 5)
	session := sessionAt(StageProductMenu, 0)

	d := Decide(testUserID, ButtonReplyMessage(ButtonPrevProduct), session, catalog)
	d = Decide(testUserID, TextMessage("done"), d.Session, catalog)

	if d.Lead == nil || d.Lead.SelectedProduct != "Product 4" {
		t.Errorf("expected Product 4 selected, got %+v", d.Lead)
	}
}

func TestDecide_UnknownStageIsNoChange(t *testing.T) {
	catalog := newTestCatalog(t, 2)
	session := sessionAt(Stage("retired_stage"), 0)

	d := Decide(testUserID, TextMessage("anything"), session, catalog)

	if d.Action != ActionNoChange {
		t.Errorf("expected no change, got %s", d.Action)
	}
}
