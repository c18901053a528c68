package rules

import (
	"reflect"
	"testing"

	statex "github.com/semsarlabs/semsar/agent/state"
)

func testTable() *Table {
	return &Table{
		BudgetAdvice: []BudgetRule{
			{Condition: BudgetHigh, Response: "advice high 1"},
			{Condition: BudgetHigh, Response: "advice high 2"},
			{Condition: BudgetMid, Response: "advice mid"},
			{Condition: BudgetLow, Response: "advice low"},
		},
		PropertyPriority: []PriorityRule{
			{Feature: "حديقة", Response: "garden note"},
			{Feature: "مترو", Response: "metro note"},
		},
	}
}

func TestAdviseBudgetBands(t *testing.T) {
	t.Parallel()

	engine := NewEngine(testTable(), 0)

	cases := []struct {
		name   string
		budget string
		want   []string
	}{
		{"low band", "300 ألف جنيه", []string{"advice low"}},
		{"mid band", "700 ألف جنيه", []string{"advice mid"}},
		{"threshold is mid", "500 ألف جنيه", []string{"advice mid"}},
		{"high band", "2 مليون جنيه", []string{"advice high 1", "advice high 2"}},
		{"arabic-indic low band", "٣٠٠ ألف جنيه", []string{"advice low"}},
		{"plain pounds match nothing", "900000 جنيه", nil},
		{"unset budget", "", nil},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			slots := &statex.Slots{Budget: tc.budget}
			got := engine.Advise(slots, nil)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Advise() = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestAdviseUnparseableBudgetIsSilent(t *testing.T) {
	t.Parallel()

	engine := NewEngine(testTable(), 0)
	slots := &statex.Slots{Budget: "شوية ألف جنيه"}

	if got := engine.Advise(slots, nil); got != nil {
		t.Fatalf("expected no advice, got %#v", got)
	}
}

func TestAdviseCustomThreshold(t *testing.T) {
	t.Parallel()

	engine := NewEngine(testTable(), 800)
	slots := &statex.Slots{Budget: "700 ألف جنيه"}

	got := engine.Advise(slots, nil)
	if !reflect.DeepEqual(got, []string{"advice low"}) {
		t.Fatalf("Advise() = %#v, want low advice under raised threshold", got)
	}
}

func TestAdviseFeaturesFromProperty(t *testing.T) {
	t.Parallel()

	engine := NewEngine(testTable(), 0)
	prop := &statex.Property{Features: "حديقة كبيرة، قريب من المترو"}

	got := engine.Advise(&statex.Slots{}, prop)
	want := []string{"garden note", "metro note"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Advise() = %#v, want %#v", got, want)
	}
}

func TestAdviseFeaturesFromSlotsWhenNoProperty(t *testing.T) {
	t.Parallel()

	engine := NewEngine(testTable(), 0)
	slots := &statex.Slots{Features: []string{"عايز حديقة"}}

	got := engine.Advise(slots, nil)
	if !reflect.DeepEqual(got, []string{"garden note"}) {
		t.Fatalf("Advise() = %#v", got)
	}
}

func TestAdviseDuplicatesPreserved(t *testing.T) {
	t.Parallel()

	engine := NewEngine(testTable(), 0)
	prop := &statex.Property{Features: "حديقة أمامية، حديقة خلفية"}

	got := engine.Advise(&statex.Slots{}, prop)
	want := []string{"garden note", "garden note"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Advise() = %#v, want duplicates preserved", got)
	}
}

func TestAdviseBudgetPrecedesFeatures(t *testing.T) {
	t.Parallel()

	engine := NewEngine(testTable(), 0)
	slots := &statex.Slots{Budget: "300 ألف جنيه"}
	prop := &statex.Property{Features: "قريب من المترو"}

	got := engine.Advise(slots, prop)
	want := []string{"advice low", "metro note"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Advise() = %#v, want %#v", got, want)
	}
}

func TestAdviseEmptyTable(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil, 0)
	slots := &statex.Slots{Budget: "2 مليون جنيه", Features: []string{"حديقة"}}

	if got := engine.Advise(slots, nil); got != nil {
		t.Fatalf("expected no advice from empty table, got %#v", got)
	}
}
