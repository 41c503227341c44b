// Package metrics exposes reaxtrace's Prometheus instrumentation: chunks
// processed, frames read, reactions found, and bond-inference time per chunk.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// ChunksProcessed counts completed chunk-pipeline runs.
	ChunksProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "reaxtrace",
		Name:      "chunks_processed_total",
		Help:      "Number of chunks fully processed by the scheduler.",
	})

	// FramesRead counts frames pulled from the FrameSource.
	FramesRead = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "reaxtrace",
		Name:      "frames_read_total",
		Help:      "Number of frames read from the trajectory source.",
	})

	// ReactionsFound counts emitted Reaction records.
	ReactionsFound = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "reaxtrace",
		Name:      "reactions_found_total",
		Help:      "Number of reactions written to the output sink.",
	})

	// BondInferenceSeconds observes wall-clock time of one parallel
	// bond-inference fan-out over a chunk.
	BondInferenceSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "reaxtrace",
		Name:      "bond_inference_seconds",
		Help:      "Time spent inferring bonds for one chunk.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Registry is the reaxtrace-local Prometheus registry; callers expose it via
// promhttp.HandlerFor rather than registering against the global default,
// so multiple runs in one process (tests) don't collide.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(ChunksProcessed, FramesRead, ReactionsFound, BondInferenceSeconds)
}
