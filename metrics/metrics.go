// Package metrics exports Prometheus counters for searches run by the
// search package. A Collector is registered once and then attached to any
// number of finders through the hook options returned by Options.
package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/pathfind/search"
)

// Collector holds the search counters. It is safe for concurrent use by
// finders running on different goroutines.
type Collector struct {
	settled   prometheus.Counter
	pushed    prometheus.Counter
	discarded prometheus.Counter
	searches  *prometheus.CounterVec
}

// NewCollector creates the counters and registers them with reg. A nil reg
// selects prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		settled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pathfind_nodes_settled_total",
			Help: "Nodes settled across all searches",
		}),
		pushed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pathfind_entries_pushed_total",
			Help: "Frontier entries pushed during expansion",
		}),
		discarded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pathfind_entries_discarded_total",
			Help: "Stale frontier entries dropped on pop",
		}),
		// Labels: "path_found", "no_path_found"
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pathfind_searches_total",
			Help: "Finished searches by outcome",
		}, []string{"outcome"}),
	}
	for _, m := range []prometheus.Collector{c.settled, c.pushed, c.discarded, c.searches} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Options returns hook options that feed c. Pass them to search.New or to a
// map's NewFinder alongside any other options.
func Options[R comparable, C search.Cost](c *Collector) []search.Option[R, C] {
	return []search.Option[R, C]{
		search.WithOnPush[R, C](func(R, C) { c.pushed.Inc() }),
		search.WithOnSettle[R, C](func(R, search.VisitedItem[R, C]) { c.settled.Inc() }),
		search.WithOnDiscard[R, C](func(R) { c.discarded.Inc() }),
		search.WithOnFinish[R, C](func(s search.Status) {
			c.searches.WithLabelValues(Outcome(s)).Inc()
		}),
	}
}

// Outcome converts a status to its label value, e.g. "no_path_found".
func Outcome(s search.Status) string {
	return strings.ReplaceAll(s.String(), " ", "_")
}
