package shortcut_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/cost"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/shortcut"
)

// ExampleEvaluate lists how many walls save at least 20 steps on the race track.
func ExampleEvaluate() {
	g, err := gridmap.Parse(racetrack)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	start, _ := g.Start()
	goal, _ := g.Goal()

	m := cost.Uniform{}
	rep, err := shortcut.Evaluate(g, m, m.Start(start), goal, shortcut.WithWorkers(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("baseline:", rep.Baseline)
	for _, b := range rep.Histogram() {
		if b.Saved >= 20 {
			fmt.Printf("%d wall(s) save %d\n", b.Count, b.Saved)
		}
	}
	// Output:
	// baseline: 84
	// 1 wall(s) save 20
	// 1 wall(s) save 36
	// 1 wall(s) save 38
	// 1 wall(s) save 40
	// 1 wall(s) save 64
}

// ExampleRemovableWalls shows the aisle rule on a tiny grid.
func ExampleRemovableWalls() {
	g, _ := gridmap.Parse("#####\n#S#E#\n#####\n")
	fmt.Println(shortcut.RemovableWalls(g))
	// Output: [(1,2)]
}
