// Command cachectl is a small demonstration CLI over the ccache
// packages: it resolves a fingerprint to its on-disk path, reports the
// cache's disk usage, and wipes a subtree.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ccachego/ccache/fsutil"
	"github.com/ccachego/ccache/store"
	"github.com/docker/go-units"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("cachectl: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "path":
		runPath(os.Args[2:])
	case "du":
		runDu(os.Args[2:])
	case "wipe":
		runWipe(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: cachectl <path|du|wipe> [flags]")
}

func runPath(args []string) {
	fs := flag.NewFlagSet("path", flag.ExitOnError)
	root := fs.String("root", "", "cache root directory")
	levels := fs.Int("levels", 2, "fan-out level count")
	suffix := fs.String("suffix", "", "filename suffix, e.g. .o")
	if err := fs.Parse(args); err != nil {
		log.Fatal(err)
	}
	if fs.NArg() != 1 {
		log.Fatal("path requires exactly one fingerprint argument")
	}

	p, err := store.PathFor(*root, *levels, fs.Arg(0), *suffix)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(p)
}

func runDu(args []string) {
	fs := flag.NewFlagSet("du", flag.ExitOnError)
	root := fs.String("root", "", "cache root directory")
	if err := fs.Parse(args); err != nil {
		log.Fatal(err)
	}
	if *root == "" {
		log.Fatal("du requires -root")
	}

	var total int64
	var fileCount int
	err := store.ForEachLevel1Subdir(*root, func(subdir string, progress store.ProgressFunc) error {
		files, err := store.GetLevel1Files(subdir, progress)
		if err != nil {
			return err
		}
		for _, f := range files {
			total += f.Size
			fileCount++
		}
		return nil
	}, nil)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s (%d files, %s)\n", *root, fileCount, units.HumanSize(float64(total)))
}

func runWipe(args []string) {
	fs := flag.NewFlagSet("wipe", flag.ExitOnError)
	root := fs.String("root", "", "subtree to remove")
	if err := fs.Parse(args); err != nil {
		log.Fatal(err)
	}
	if *root == "" {
		log.Fatal("wipe requires -root")
	}

	if err := fsutil.WipePath(*root); err != nil {
		log.Fatal(err)
	}
}
