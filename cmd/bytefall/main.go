// Command bytefall reads falling byte coordinates and reports the shortest
// exit after a number of bytes, then the first byte that seals the exit.
//
// Usage:
//
//	bytefall [--size 70] [--fallen 1024] bytes.txt
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/gridpath/bytefall"
)

var log = logrus.New()

func main() {
	var (
		size    int
		fallen  int
		verbose bool
	)
	pflag.IntVar(&size, "size", 70, "largest coordinate of the memory space")
	pflag.IntVar(&fallen, "fallen", 1024, "bytes fallen before the first walk")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "log every search")
	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: bytefall [flags] bytes.txt")
		pflag.PrintDefaults()
		os.Exit(1)
	}
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	content, err := os.ReadFile(pflag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	bytes, err := bytefall.ParseCoordinates(string(content))
	if err != nil {
		log.Fatal(err)
	}
	mem, err := bytefall.New(size, bytes, bytefall.WithLogger(log))
	if err != nil {
		log.Fatal(err)
	}
	if fallen > len(bytes) {
		log.Warnf("only %d bytes in input, using all of them", len(bytes))
		fallen = len(bytes)
	}

	res, err := mem.ShortestExit(fallen)
	if err != nil {
		log.Fatal(err)
	}
	if res.Found {
		fmt.Printf("Result part 1: %d\n", res.Cost)
	} else {
		fmt.Println("Result part 1: unreachable")
	}

	_, pos, found, err := mem.FirstBlocking()
	if err != nil {
		log.Fatal(err)
	}
	if found {
		fmt.Printf("Result part 2: %d,%d\n", pos.Col, pos.Row)
	} else {
		fmt.Println("Result part 2: never blocked")
	}
}
