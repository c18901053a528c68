package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCSVMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	c := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	if c.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d rows", c.Len())
	}
}

func TestLoadCSVReadsRows(t *testing.T) {
	t.Parallel()

	raw := "type,location,price,bedrooms,features\n" +
		"شقة,المعادي,2500000,3,تشطيب سوبر لوكس، قريبة من المترو\n" +
		"فيلا,الشيخ زايد,9500000,5,حديقة خاصة\n"
	path := filepath.Join(t.TempDir(), "properties.csv")
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	c := LoadCSV(path)
	if c.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", c.Len())
	}

	got := c.Search(Filters{PropertyType: "فيلا"})
	if len(got) != 1 || got[0].Location != "الشيخ زايد" || got[0].Price != "9500000" {
		t.Fatalf("unexpected row: %#v", got)
	}
}

func TestLoadCSVHeaderOnlyIsEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "properties.csv")
	if err := os.WriteFile(path, []byte("type,location,price,bedrooms,features\n"), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	if c := LoadCSV(path); c.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d rows", c.Len())
	}
}
