package main

import (
	"flag"
	"fmt"
	"log"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/carbocation/pedigree"
	"github.com/carbocation/pfx"
)

func main() {
	path := flag.String("data", "", "Filename of the pedigree CSV to process")
	workers := flag.Int("workers", runtime.NumCPU(), "Number of worker goroutines to shard the hypothesis space across")
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

	ped, err := pedigree.Open(*path)
	if err != nil {
		log.Fatalln(err)
	}

	log.Println("Launching", *workers, "workers over", len(ped.Names), "people")

	start := time.Now()
	marginals, err := pedigree.InferParallel(ped, pedigree.DefaultTables(), *workers)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Inference took", time.Since(start))

	for _, name := range ped.Names {
		pm := marginals[name]
		fmt.Printf("%s: gene={2: %.4f, 1: %.4f, 0: %.4f} trait={True: %.4f, False: %.4f}\n",
			name,
			pm.GeneProbability(pedigree.GeneTwo),
			pm.GeneProbability(pedigree.GeneOne),
			pm.GeneProbability(pedigree.GeneZero),
			pm.TraitProbability(true),
			pm.TraitProbability(false))
	}
}
