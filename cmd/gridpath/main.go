// Command gridpath loads a grid map, searches it for the cheapest route
// between two cells and prints the outcome.
//
//	gridpath -map maze.txt -from 1,1 -to 5,5 -heatmap
//	gridpath -map maze.json -from 0.5,0.5 -to 40,12 -snap -scale 4 -step 1000
//
// Exit status is 0 when a path is found, 2 when the goal is unreachable and
// 1 on any error.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/pathfind/gridmap"
	"github.com/katalvlaran/pathfind/metrics"
	"github.com/katalvlaran/pathfind/search"
)

const (
	exitOK     = 0
	exitError  = 1
	exitNoPath = 2
)

type config struct {
	mapFile  string
	from, to string
	scale    int
	step     int
	snap     bool
	heatmap  bool
	stats    bool
}

func main() {
	log.SetFlags(log.Ltime)
	os.Exit(run(os.Args[1:], os.Stdout, log.Default()))
}

func run(args []string, stdout io.Writer, logger *log.Logger) int {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	var cfg config
	fs.StringVar(&cfg.mapFile, "map", "", "grid file: text, or JSON when the name ends in .json")
	fs.StringVar(&cfg.from, "from", "", "start cell as row,col (x,y with -snap)")
	fs.StringVar(&cfg.to, "to", "", "goal cell as row,col (x,y with -snap)")
	fs.IntVar(&cfg.scale, "scale", 1, "scale the grid up by this factor before searching")
	fs.IntVar(&cfg.step, "step", 0, "log progress every n steps (0 disables)")
	fs.BoolVar(&cfg.snap, "snap", false, "treat -from/-to as x,y coordinates snapped to the nearest open cell")
	fs.BoolVar(&cfg.heatmap, "heatmap", false, "print the visited cost heat map")
	fs.BoolVar(&cfg.stats, "stats", false, "print search counters")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if cfg.mapFile == "" || cfg.from == "" || cfg.to == "" {
		fmt.Fprintln(fs.Output(), "Usage: gridpath -map <file> -from r,c -to r,c [-scale n] [-step n] [-snap] [-heatmap] [-stats]")
		return exitError
	}

	code, err := runSearch(cfg, stdout, logger)
	if err != nil {
		logger.Printf("gridpath: %v", err)
		return exitError
	}

	return code
}

// runSearch runs one search as configured and reports to stdout.
func runSearch(cfg config, stdout io.Writer, logger *log.Logger) (int, error) {
	g, err := loadGrid(cfg.mapFile)
	if err != nil {
		return exitError, err
	}
	logger.Printf("Loaded %d×%d grid from %s", g.Rows(), g.Columns(), cfg.mapFile)

	if cfg.scale != 1 {
		if err := g.ScaleUp(cfg.scale); err != nil {
			return exitError, err
		}
		logger.Printf("Scaled to %d×%d", g.Rows(), g.Columns())
	}

	start, goal, err := endpoints(g, cfg)
	if err != nil {
		return exitError, err
	}

	reg := prometheus.NewRegistry()
	col, err := metrics.NewCollector(reg)
	if err != nil {
		return exitError, err
	}

	f, err := gridmap.NewFinder(g, start, goal, metrics.Options[gridmap.Point, int](col)...)
	if err != nil {
		return exitError, err
	}

	logger.Printf("Searching %v -> %v", start, goal)
	var st search.State[gridmap.Point, int]
	for steps := 1; ; steps++ {
		st, err = f.Step(g)
		if err != nil {
			return exitError, err
		}
		if st.Done() {
			logger.Printf("Finished after %d steps: %v", steps, st.Status)
			break
		}
		if cfg.step > 0 && steps%cfg.step == 0 {
			logger.Printf("Step %d: frontier %d", steps, f.FrontierLen())
		}
	}

	if cfg.heatmap {
		fmt.Fprint(stdout, f.Visited().String())
	}
	if cfg.stats {
		if err := writeStats(stdout, reg); err != nil {
			return exitError, err
		}
	}

	if st.Status != search.PathFound {
		fmt.Fprintln(stdout, "no path")
		return exitNoPath, nil
	}
	fmt.Fprintf(stdout, "cost %v\n", st.Result.TotalCost)
	for _, p := range st.Result.Path {
		fmt.Fprintln(stdout, p)
	}

	return exitOK, nil
}

// writeStats prints one "name value" line per counter sample.
func writeStats(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name := mf.GetName()
			for _, lp := range m.GetLabel() {
				name += fmt.Sprintf("{%s=%q}", lp.GetName(), lp.GetValue())
			}
			fmt.Fprintf(w, "%s %v\n", name, m.GetCounter().GetValue())
		}
	}

	return nil
}
