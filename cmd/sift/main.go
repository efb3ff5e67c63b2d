// Command sift scans a file (or stdin) for bytes matching a condition.
//
// Usage:
//
//	sift -match SPEC [-all | -count] [file]
//
// SPEC is a comma-separated list of atoms combined with OR: a-z spans a
// byte range, 0x2c names a byte in hex, any single character names itself,
// and the class names ascii, digit, upper, lower, alpha, alnum, hex, space
// and print expand to the usual sets.
//
// By default sift prints the index of the first matching byte (-1 when
// nothing matches). With -count it prints the number of matching bytes;
// with -all it prints nothing and exits 0 iff every input byte matches.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mhr3/sift/scan"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("sift: ")

	var (
		match    = flag.String("match", "", "condition to scan for (required)")
		all      = flag.Bool("all", false, "exit 0 iff every input byte matches")
		count    = flag.Bool("count", false, "print the number of matching bytes")
		strategy = flag.Bool("strategy", false, "print the active scan strategy and exit")
	)
	flag.Parse()

	if *strategy {
		fmt.Println(scan.ActiveStrategy())
		return
	}
	if *all && *count {
		log.Fatal("-all and -count are mutually exclusive")
	}
	if *match == "" {
		log.Fatal("missing -match (try -match 'a-z,0x20' or -match digit)")
	}

	cond, err := parseCondSpec(*match)
	if err != nil {
		log.Fatal(err)
	}

	data, err := readInput(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	switch {
	case *all:
		if !scan.All(data, cond) {
			os.Exit(1)
		}
	case *count:
		fmt.Println(scan.Count(data, cond))
	default:
		fmt.Println(scan.Index(data, cond))
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
