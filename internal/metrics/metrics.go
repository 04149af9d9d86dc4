// Package metrics exposes prometheus instruments for the engine. They are fed
// through session hooks and served by the HTTP adapter's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fabula_sessions_started_total",
		Help: "Total number of interactive sessions started.",
	})

	NodesVisited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fabula_nodes_visited_total",
		Help: "Total number of node visits, labelled by node ID.",
	}, []string{"node_id"})

	ChoicesMade = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fabula_choices_made_total",
		Help: "Total number of accepted player choices.",
	})

	InvalidInputs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fabula_invalid_inputs_total",
		Help: "Total number of rejected input lines, labelled by kind.",
	}, []string{"kind"})
)
