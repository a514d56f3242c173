package pedigree

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Open reads a pedigree dataset located at path. The file is a CSV with the
// columns name, mother, father, and trait; mother and father must both be
// blank or both be names present in the file, and trait is 1, 0, or blank
// when unknown. Files ending in .gz or .zst are decompressed transparently.
func Open(path string) (*Pedigree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	var r io.Reader = f
	switch DetectCompression(path) {
	case CompressionGZIP:
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer gz.Close()
		r = gz
	case CompressionZStandard:
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer zr.Close()
		r = zr
	}

	return ReadPedigree(r)
}

// ReadPedigree parses pedigree CSV data from an already-open stream and
// validates it into a Pedigree.
func ReadPedigree(r io.Reader) (*Pedigree, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("reading the CSV header: %w", err))
	}

	// Columns are located by name so their order in the file does not matter
	columns := map[string]int{"name": -1, "mother": -1, "father": -1, "trait": -1}
	for i, field := range header {
		if _, wanted := columns[field]; wanted {
			columns[field] = i
		}
	}
	for field, i := range columns {
		if i < 0 {
			return nil, pfx.Err(fmt.Errorf("the CSV header is missing the %s column", field))
		}
	}

	var people []Person
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, pfx.Err(err)
		}

		person := Person{
			Name:   record[columns["name"]],
			Mother: record[columns["mother"]],
			Father: record[columns["father"]],
		}

		switch raw := record[columns["trait"]]; raw {
		case "1":
			person.Trait = TraitPresent
		case "0":
			person.Trait = TraitAbsent
		case "":
			person.Trait = TraitUnknown
		default:
			return nil, pfx.Err(fmt.Errorf("the trait value %q for %s is not 1, 0, or blank", raw, person.Name))
		}

		people = append(people, person)
	}

	return NewPedigree(people)
}
