package pedigree

import (
	"fmt"
	"time"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
)

// MarginalIndex is a SQLite database holding the normalized marginals from
// one inference run, so downstream tools can query results with plain SQL
// instead of re-running the exponential enumeration.
type MarginalIndex struct {
	DB       *sqlx.DB
	Metadata *IndexMetadata
}

func (idx *MarginalIndex) Close() error {
	return idx.DB.Close()
}

// MarginalRow conforms to the data found in the rows of the SQLite table
// "Marginal", and can be easily parsed with sqlx.
type MarginalRow struct {
	Person       string
	GeneZero     float64 `db:"gene_zero"`
	GeneOne      float64 `db:"gene_one"`
	GeneTwo      float64 `db:"gene_two"`
	TraitPresent float64 `db:"trait_present"`
	TraitAbsent  float64 `db:"trait_absent"`
}

// Marginal converts the row back into the in-memory accumulator shape.
func (row MarginalRow) Marginal() *PersonMarginal {
	return &PersonMarginal{
		Gene:  [NGeneCounts]float64{GeneZero: row.GeneZero, GeneOne: row.GeneOne, GeneTwo: row.GeneTwo},
		Trait: [2]float64{row.TraitAbsent, row.TraitPresent},
	}
}

// IndexMetadata conforms to the data found in the rows of the SQLite table
// "Metadata".
type IndexMetadata struct {
	Dataset           string
	NPeople           uint `db:"n_people"`
	IndexCreationTime Time `db:"index_creation_time"`
}

const indexSchema = `
CREATE TABLE IF NOT EXISTS Marginal (
	person TEXT PRIMARY KEY,
	gene_zero REAL NOT NULL,
	gene_one REAL NOT NULL,
	gene_two REAL NOT NULL,
	trait_present REAL NOT NULL,
	trait_absent REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS Metadata (
	dataset TEXT,
	n_people INTEGER,
	index_creation_time INTEGER
);`

// Store writes every person's normalized marginals into the index along with
// one Metadata row recording the dataset they came from. Any previous
// contents are replaced.
func (idx *MarginalIndex) Store(dataset string, m Marginals) error {
	if _, err := idx.DB.Exec(indexSchema); err != nil {
		return pfx.Err(err)
	}

	tx, err := idx.DB.Beginx()
	if err != nil {
		return pfx.Err(err)
	}

	if _, err := tx.Exec("DELETE FROM Marginal"); err != nil {
		tx.Rollback()
		return pfx.Err(err)
	}
	if _, err := tx.Exec("DELETE FROM Metadata"); err != nil {
		tx.Rollback()
		return pfx.Err(err)
	}

	for person, pm := range m {
		row := MarginalRow{
			Person:       person,
			GeneZero:     pm.Gene[GeneZero],
			GeneOne:      pm.Gene[GeneOne],
			GeneTwo:      pm.Gene[GeneTwo],
			TraitPresent: pm.Trait[1],
			TraitAbsent:  pm.Trait[0],
		}
		if _, err := tx.NamedExec(`INSERT INTO Marginal
			(person, gene_zero, gene_one, gene_two, trait_present, trait_absent)
			VALUES (:person, :gene_zero, :gene_one, :gene_two, :trait_present, :trait_absent)`, row); err != nil {
			tx.Rollback()
			return pfx.Err(err)
		}
	}

	metadata := IndexMetadata{
		Dataset:           dataset,
		NPeople:           uint(len(m)),
		IndexCreationTime: Time(time.Now()),
	}
	if _, err := tx.NamedExec(`INSERT INTO Metadata
		(dataset, n_people, index_creation_time)
		VALUES (:dataset, :n_people, :index_creation_time)`, metadata); err != nil {
		tx.Rollback()
		return pfx.Err(err)
	}

	if err := tx.Commit(); err != nil {
		return pfx.Err(err)
	}

	idx.Metadata = &metadata

	return nil
}

// LoadMarginals reads every stored person's marginals back out of the index.
func (idx *MarginalIndex) LoadMarginals() (Marginals, error) {
	rows, err := idx.DB.Queryx("SELECT * FROM Marginal ORDER BY person ASC")
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rows.Close()

	m := make(Marginals)
	var row MarginalRow
	for rows.Next() {
		if err := rows.StructScan(&row); err != nil {
			return nil, pfx.Err(err)
		}
		m[row.Person] = row.Marginal()
	}
	if err := rows.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	if len(m) == 0 {
		return nil, pfx.Err(fmt.Errorf("the index holds no marginals"))
	}

	return m, nil
}
