// Command reindeer prints the lowest score through a maze where every turn
// costs extra.
//
// Usage:
//
//	reindeer [--turn 1000] [--step 1] [--verbose] maze.txt
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/cost"
	"github.com/katalvlaran/gridpath/gridmap"
)

var log = logrus.New()

func main() {
	var (
		turn    int64
		step    int64
		verbose bool
	)
	pflag.Int64VarP(&turn, "turn", "t", cost.DefaultTurnCost, "extra cost of a 90° turn")
	pflag.Int64VarP(&step, "step", "s", cost.DefaultStepCost, "cost of one forward step")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "log search statistics")
	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: reindeer [flags] maze.txt")
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

	m := cost.TurnPenalized{Step: step, Turn: turn}
	res, err := astar.Search(g, m, m.Start(start), goal, astar.WithReturnPath())
	if err != nil {
		log.Fatal(err)
	}
	log.WithFields(logrus.Fields{
		"expanded": res.Expanded,
		"path":     len(res.Path),
	}).Debug("search finished")

	if !res.Found {
		fmt.Println("Result part 1: unreachable")
		return
	}
	fmt.Printf("Result part 1: %d\n", res.Cost)
}
