// Command racetrack counts single-wall shortcuts that save at least a
// threshold of picoseconds on a race track.
//
// Usage:
//
//	racetrack [--threshold 100] [--workers 1] [--histogram] track.txt
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/gridpath/cost"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/shortcut"
)

var log = logrus.New()

func main() {
	var (
		threshold int64
		workers   int
		histogram bool
		verbose   bool
	)
	pflag.Int64Var(&threshold, "threshold", 100, "minimum saving to count")
	pflag.IntVarP(&workers, "workers", "w", 1, "concurrent trials")
	pflag.BoolVar(&histogram, "histogram", false, "print every saving with its wall count")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "log every trial")
	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: racetrack [flags] track.txt")
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
	g, err := gridmap.Parse(string(content))
	if err != nil {
		log.Fatal(err)
	}
	start, _ := g.Start()
	goal, _ := g.Goal()

	m := cost.Uniform{}
	rep, err := shortcut.Evaluate(g, m, m.Start(start), goal,
		shortcut.WithWorkers(workers),
		shortcut.WithLogger(log),
	)
	if err != nil {
		log.Fatal(err)
	}

	if histogram {
		for _, b := range rep.Histogram() {
			fmt.Printf("%d wall(s) save %d\n", b.Count, b.Saved)
		}
	}
	fmt.Printf("Result part 1: %d\n", rep.CountAtLeast(threshold))
}
