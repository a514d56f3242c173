package main

import (
	"flag"
	"fmt"
	"log"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/pedigree"
	"github.com/carbocation/pfx"
)

func main() {
	path := flag.String("data", "", "Filename of the pedigree CSV to process")
	idxPath := flag.String("index", "", "Filename of the SQLite index to write (defaults to the data filename + .idx)")
	flag.Parse()

	if *path == "" {
		flag.PrintDefaults()
		log.Fatalln("No pedigree file found")
	}

	if strings.HasPrefix(*path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*path = filepath.Join(usr.HomeDir, (*path)[2:])
	}

	if *idxPath == "" {
		*idxPath = *path + ".idx"
	}

	if strings.HasPrefix(*idxPath, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*idxPath = filepath.Join(usr.HomeDir, (*idxPath)[2:])
	}

	log.Println("Using SQLite driver:", pedigree.WhichSQLiteDriver())

	ped, err := pedigree.Open(*path)
	if err != nil {
		log.Fatalln(err)
	}

	marginals, err := pedigree.Infer(ped, pedigree.DefaultTables())
	if err != nil {
		log.Fatalln(err)
	}

	idx, err := pedigree.OpenIndex(*idxPath)
	if err != nil {
		log.Fatalln(err)
	}
	defer idx.Close()

	if err := idx.Store(filepath.Base(*path), marginals); err != nil {
		log.Fatalln(err)
	}
	log.Printf("Index Metadata: %+v\n", idx.Metadata)

	rows, err := idx.DB.Queryx("SELECT * FROM Marginal ORDER BY person ASC")
	if err != nil {
		log.Fatalln(err)
	}
	defer rows.Close()

	i := 0
	var row pedigree.MarginalRow
	for rows.Next() {
		if err := rows.StructScan(&row); err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("%d) %+v\n", i, row)
		i++
	}
	rows.Close()

	log.Println("Stored marginals for", i, "people in", *idxPath)
}
