package pedigree

import (
	"strings"
	"testing"
)

const familyCSV = `name,mother,father,trait
Harry,Lily,James,
James,,,1
Lily,,,0
`

func TestReadPedigree(t *testing.T) {
	ped, err := ReadPedigree(strings.NewReader(familyCSV))
	if err != nil {
		t.Fatal(err)
	}

	if len(ped.Names) != 3 {
		t.Fatalf("Got %d people, expected 3", len(ped.Names))
	}

	harry := ped.People["Harry"]
	if harry.Mother != "Lily" || harry.Father != "James" {
		t.Errorf("Harry's parents are %s and %s; expected Lily and James", harry.Mother, harry.Father)
	}
	if harry.Trait != TraitUnknown {
		t.Errorf("Harry's trait is %s, expected Unknown", harry.Trait)
	}
	if ped.People["James"].Trait != TraitPresent {
		t.Errorf("James's trait is %s, expected Present", ped.People["James"].Trait)
	}
	if ped.People["Lily"].Trait != TraitAbsent {
		t.Errorf("Lily's trait is %s, expected Absent", ped.People["Lily"].Trait)
	}
	if !ped.People["James"].Founder() {
		t.Error("James should be a founder")
	}
}

func TestReadPedigreeColumnOrderIsFree(t *testing.T) {
	shuffled := `trait,father,mother,name
1,,,James
`
	ped, err := ReadPedigree(strings.NewReader(shuffled))
	if err != nil {
		t.Fatal(err)
	}
	if ped.People["James"].Trait != TraitPresent {
		t.Errorf("James's trait is %s, expected Present", ped.People["James"].Trait)
	}
}

func TestReadPedigreeRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		csv  string
	}{
		{"missing column", "name,mother,father\nJames,,\n"},
		{"bad trait value", "name,mother,father,trait\nJames,,,yes\n"},
		{"unknown parent", "name,mother,father,trait\nHarry,Lily,James,\nJames,,,1\n"},
		{"single parent", "name,mother,father,trait\nHarry,,James,\nJames,,,1\n"},
		{"duplicate name", "name,mother,father,trait\nJames,,,1\nJames,,,0\n"},
		{"empty file", "name,mother,father,trait\n"},
	}

	for _, c := range cases {
		if _, err := ReadPedigree(strings.NewReader(c.csv)); err == nil {
			t.Errorf("%s: expected an error", c.name)
		}
	}
}

func TestOpen(t *testing.T) {
	for _, path := range []string{"testdata/family.csv", "testdata/family.csv.gz"} {
		ped, err := Open(path)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if len(ped.Names) != 3 {
			t.Errorf("%s: got %d people, expected 3", path, len(ped.Names))
		}
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open("testdata/no-such-family.csv"); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestDetectCompression(t *testing.T) {
	if got := DetectCompression("family.csv"); got != CompressionDisabled {
		t.Errorf("Got %d, expected CompressionDisabled", got)
	}
	if got := DetectCompression("family.csv.gz"); got != CompressionGZIP {
		t.Errorf("Got %d, expected CompressionGZIP", got)
	}
	if got := DetectCompression("family.csv.zst"); got != CompressionZStandard {
		t.Errorf("Got %d, expected CompressionZStandard", got)
	}
}
