package pedigree

import (
	"math"
	"path/filepath"
	"testing"
)

func TestMarginalIndexRoundTrip(t *testing.T) {
	ped := testFamily(t)

	m, err := Infer(ped, DefaultTables())
	if err != nil {
		t.Fatal(err)
	}

	// An in-memory SQLite database is private to one pool connection, so the
	// tests round-trip through a real file.
	idx, err := OpenIndex(filepath.Join(t.TempDir(), "family.idx"))
	if err != nil {
		t.Fatal(err)
	}
	defer idx.Close()

	if err := idx.Store("family.csv", m); err != nil {
		t.Fatal(err)
	}

	if idx.Metadata.Dataset != "family.csv" {
		t.Errorf("Got dataset %q, expected family.csv", idx.Metadata.Dataset)
	}
	if idx.Metadata.NPeople != 3 {
		t.Errorf("Got %d people in metadata, expected 3", idx.Metadata.NPeople)
	}

	loaded, err := idx.LoadMarginals()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != len(m) {
		t.Fatalf("Loaded %d people, expected %d", len(loaded), len(m))
	}

	for _, name := range ped.Names {
		for _, g := range []GeneCount{GeneZero, GeneOne, GeneTwo} {
			a, b := m[name].GeneProbability(g), loaded[name].GeneProbability(g)
			if math.Abs(a-b) > 1e-12 {
				t.Errorf("%s gene[%s]: stored %v, loaded %v", name, g, a, b)
			}
		}
		for _, present := range []bool{true, false} {
			a, b := m[name].TraitProbability(present), loaded[name].TraitProbability(present)
			if math.Abs(a-b) > 1e-12 {
				t.Errorf("%s trait[%t]: stored %v, loaded %v", name, present, a, b)
			}
		}
	}
}

func TestLoadMarginalsRejectsEmptyIndex(t *testing.T) {
	idx, err := OpenIndex(filepath.Join(t.TempDir(), "empty.idx"))
	if err != nil {
		t.Fatal(err)
	}
	defer idx.Close()

	if _, err := idx.DB.Exec(indexSchema); err != nil {
		t.Fatal(err)
	}

	if _, err := idx.LoadMarginals(); err == nil {
		t.Error("Expected an error when the index holds no marginals")
	}
}

func TestWhichSQLiteDriver(t *testing.T) {
	switch WhichSQLiteDriver() {
	case "sqlite", "sqlite3":
	default:
		t.Errorf("Unexpected driver %q", WhichSQLiteDriver())
	}
}
