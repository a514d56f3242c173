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
	path := flag.String("data", "", "Filename of the pedigree CSV to process (.gz and .zst are understood)")
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

	log.Println("Opening pedigree:", *path)
	ped, err := pedigree.Open(*path)
	if err != nil {
		log.Fatalln(err)
	}

	log.Printf("Loaded %d people; hypothesis space holds up to %d assignments\n",
		len(ped.Names), pedigree.HypothesisSpaceSize(len(ped.Names)))

	marginals, err := pedigree.Infer(ped, pedigree.DefaultTables())
	if err != nil {
		log.Fatalln(err)
	}

	for _, name := range ped.Names {
		pm := marginals[name]
		fmt.Printf("%s:\n", name)
		fmt.Printf("  Gene:\n")
		for _, g := range []pedigree.GeneCount{pedigree.GeneTwo, pedigree.GeneOne, pedigree.GeneZero} {
			fmt.Printf("    %s: %.4f\n", g, pm.GeneProbability(g))
		}
		fmt.Printf("  Trait:\n")
		fmt.Printf("    True: %.4f\n", pm.TraitProbability(true))
		fmt.Printf("    False: %.4f\n", pm.TraitProbability(false))
	}
}
