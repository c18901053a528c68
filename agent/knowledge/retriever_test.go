package knowledge

import (
	"context"
	"testing"

	"github.com/semsarlabs/semsar/agent/catalog"
	statex "github.com/semsarlabs/semsar/agent/state"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]statex.Property{
		{Type: "شقة", Location: "المعادي", Price: "1800000", Bedrooms: "3"},
		{Type: "فيلا", Location: "الشيخ زايد", Price: "9500000", Bedrooms: "5"},
		{Type: "شقة", Location: "مدينة نصر", Price: "950000", Bedrooms: "2"},
	})
}

func TestRetrieveReturnsPhaseQuestions(t *testing.T) {
	t.Parallel()

	r := NewRetriever(testCatalog())
	know, err := r.Retrieve(context.Background(), "اهلا", statex.PhaseDiscovery, &statex.Slots{})
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(know.SuggestedQuestions) == 0 {
		t.Fatal("expected embedded discovery questions")
	}
	if len(know.RelevantProperties) != 0 {
		t.Fatal("discovery turns must not fetch inventory")
	}
}

func TestRetrieveFetchesInventoryForSuggestion(t *testing.T) {
	t.Parallel()

	slots := &statex.Slots{}
	slots.SetPropertyType("شقة")

	r := NewRetriever(testCatalog())
	know, err := r.Retrieve(context.Background(), "", statex.PhaseSuggestion, slots)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(know.RelevantProperties) != 2 {
		t.Fatalf("expected 2 matching flats, got %d", len(know.RelevantProperties))
	}
}

func TestRetrieveFetchesInventoryForAlternative(t *testing.T) {
	t.Parallel()

	r := NewRetriever(testCatalog())
	know, err := r.Retrieve(context.Background(), "", statex.PhaseAlternative, &statex.Slots{})
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(know.RelevantProperties) != 3 {
		t.Fatalf("expected full inventory, got %d", len(know.RelevantProperties))
	}
}

func TestBudgetScalingFiltersInventory(t *testing.T) {
	t.Parallel()

	slots := &statex.Slots{}
	slots.SetBudget("2 مليون جنيه")

	r := NewRetriever(testCatalog())
	know, err := r.Retrieve(context.Background(), "", statex.PhaseSuggestion, slots)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	for _, p := range know.RelevantProperties {
		if p.Location == "الشيخ زايد" {
			t.Fatal("property above the scaled budget must be filtered out")
		}
	}
	if len(know.RelevantProperties) != 2 {
		t.Fatalf("expected 2 properties within budget, got %d", len(know.RelevantProperties))
	}
}

func TestBudgetInPounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		budget string
		want   int
		ok     bool
	}{
		{"2 مليون جنيه", 2_000_000, true},
		{"500 ألف جنيه", 500_000, true},
		{"750000 جنيه", 750_000, true},
		{"غير محدد", 0, false},
	}
	for _, tc := range cases {
		got, ok := budgetInPounds(tc.budget)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("budgetInPounds(%q) = (%d, %v), want (%d, %v)", tc.budget, got, ok, tc.want, tc.ok)
		}
	}
}
