//go:build !cgo

package pedigree

// If cgo is not enabled, we will use the modernc.org/sqlite non-cgo sqlite
// driver. It is slower than the sqlite3 cgo driver.

import (
	"strings"

	"github.com/jmoiron/sqlx"

	_ "modernc.org/sqlite"
)

const whichSQLiteDriver = "sqlite"

func OpenIndex(path string) (*MarginalIndex, error) {
	idx := &MarginalIndex{
		Metadata: &IndexMetadata{},
	}

	// URI filenames have to begin with 'file:'; see
	// https://www.sqlite.org/c3ref/open.html . It seems that sqlite3 permitted
	// URI filenames without the file: prefix, but that is not standard.
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, err
	}
	idx.DB = db

	// A freshly created index has no metadata yet; ignore any error
	_ = idx.DB.Get(idx.Metadata, "SELECT * FROM Metadata LIMIT 1")

	return idx, nil
}
