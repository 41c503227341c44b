package scheduler

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/reaxtrace/reaxtrace/bond"
	"github.com/reaxtrace/reaxtrace/frame"
	"github.com/reaxtrace/reaxtrace/internal/metrics"
	"github.com/reaxtrace/reaxtrace/internal/writer"
	"github.com/reaxtrace/reaxtrace/moleculargraph"
	"github.com/reaxtrace/reaxtrace/reaction"
	"github.com/reaxtrace/reaxtrace/timeline"
)

// ErrInvalidParameters indicates ChunkSize/NoiseEventLife violate the C > 2L+1 invariant.
var ErrInvalidParameters = errors.New("scheduler: chunk_size must exceed 2*noise_event_life+1")

// ReactionSink receives reactions as they are found and is closed once the
// stream is exhausted. Implementations (see internal/writer) must preserve
// the order in which reactions are written.
type ReactionSink interface {
	Write(r *reaction.Reaction) error
	Close() error
}

// Config holds the sliding-window parameters.
type Config struct {
	// ChunkSize is the window size C.
	ChunkSize int

	// NoiseEventLife is the noise filter life L; also used as the overlap size O = L.
	NoiseEventLife int

	// BondOptions configures bond.Infer for every frame.
	BondOptions []bond.Option

	// WriteReactionSpecies enables the optional fragment/reactive-frame
	// MOL2 output described in §6. SpeciesDir and ReactiveFramesDir default
	// to "reaction-species" and "reactive-frames" when left empty.
	WriteReactionSpecies bool
	SpeciesDir           string
	ReactiveFramesDir    string
}

type windowEntry struct {
	fr    frame.Frame
	graph *moleculargraph.Graph
}

// Scheduler runs the chunked reaction-detection pipeline over a single FrameSource.
type Scheduler struct {
	cfg            Config
	symbols        map[int]string
	writtenSpecies map[string]struct{}
}

// New validates cfg and returns a Scheduler.
func New(cfg Config) (*Scheduler, error) {
	if cfg.ChunkSize <= 2*cfg.NoiseEventLife+1 {
		return nil, fmt.Errorf("%w: got chunk_size=%d noise_event_life=%d", ErrInvalidParameters, cfg.ChunkSize, cfg.NoiseEventLife)
	}
	if cfg.WriteReactionSpecies {
		if cfg.SpeciesDir == "" {
			cfg.SpeciesDir = "reaction-species"
		}
		if cfg.ReactiveFramesDir == "" {
			cfg.ReactiveFramesDir = "reactive-frames"
		}
	}
	return &Scheduler{cfg: cfg, writtenSpecies: make(map[string]struct{})}, nil
}

// Run consumes src to completion, emitting every detected Reaction to sink
// in increasing (chunk_index, local_frame) order, then closes sink. ctx
// cancellation is honoured between chunks, never mid-chunk.
func (s *Scheduler) Run(ctx context.Context, src frame.Source, sink ReactionSink) error {
	defer src.Close()

	var window []windowEntry
	overlap := s.cfg.NoiseEventLife

	for {
		if err := ctx.Err(); err != nil {
			_ = sink.Close()
			return err
		}

		fr, ok, err := src.Next()
		if err != nil {
			_ = sink.Close()
			return err
		}
		if !ok {
			break
		}
		if s.symbols == nil {
			s.symbols = symbolTable(fr)
		}
		metrics.FramesRead.Inc()
		window = append(window, windowEntry{fr: fr})

		if len(window) == s.cfg.ChunkSize {
			if err := s.processChunk(window, sink); err != nil {
				_ = sink.Close()
				return err
			}
			metrics.ChunksProcessed.Inc()
			window = keepOverlap(window, overlap)
		}
	}

	if len(window) > 2*s.cfg.NoiseEventLife+1 {
		if err := s.processChunk(window, sink); err != nil {
			_ = sink.Close()
			return err
		}
		metrics.ChunksProcessed.Inc()
	}

	return sink.Close()
}

func keepOverlap(window []windowEntry, overlap int) []windowEntry {
	if len(window) <= overlap {
		return window
	}
	tail := window[len(window)-overlap:]
	out := make([]windowEntry, overlap)
	copy(out, tail)
	return out
}

func symbolTable(fr frame.Frame) map[int]string {
	m := make(map[int]string, len(fr.Atoms))
	for _, a := range fr.Atoms {
		m[a.ID] = a.Symbol
	}
	return m
}

// processChunk performs the full §4.6 pipeline over one window in place:
// infer missing bonds in parallel, build the timeline, denoise, repair the
// graphs, and extract reactions at every surviving transition.
func (s *Scheduler) processChunk(window []windowEntry, sink ReactionSink) error {
	if err := s.inferMissing(window); err != nil {
		return err
	}

	graphs := make([]*moleculargraph.Graph, len(window))
	for i, w := range window {
		graphs[i] = w.graph
	}

	states := timeline.FromGraphs(graphs)
	states.RemoveInactivePairs()

	type repair struct {
		pair   moleculargraph.Pair
		frames []int
	}
	var repairs []repair
	for _, pair := range states.BondingPairs() {
		flipped := states.RemoveNoiseEvents(pair, s.cfg.NoiseEventLife)
		if len(flipped) > 0 {
			repairs = append(repairs, repair{pair: pair, frames: flipped})
		}
	}
	for _, r := range repairs {
		for _, i := range r.frames {
			graphs[i].ToggleEdge(r.pair[0], r.pair[1])
		}
	}

	reactivePositions := make(map[int]struct{})
	for _, pair := range states.BondingPairs() {
		for _, i := range states.ReactivePositions(pair, s.cfg.NoiseEventLife) {
			reactivePositions[i] = struct{}{}
		}
	}

	for i := range graphs {
		if _, ok := reactivePositions[i]; !ok {
			continue
		}
		if i+1 >= len(graphs) {
			continue
		}
		r, err := reaction.Extract(graphs[i], graphs[i+1], s.symbols)
		if err != nil {
			return err
		}
		if r == nil {
			continue
		}
		r.LocalFrame = i + 1
		r.GlobalFrame = fmt.Sprintf("%d", window[i+1].fr.Index)

		if s.cfg.WriteReactionSpecies {
			if err := s.writeSpecies(r, window[i].fr, window[i+1].fr, graphs[i], graphs[i+1]); err != nil {
				return err
			}
		}

		if err := sink.Write(r); err != nil {
			return err
		}
		metrics.ReactionsFound.Inc()
	}
	return nil
}

// writeSpecies writes every not-yet-seen fragment fingerprint to
// SpeciesDir/<fingerprint>.mol2 and the reactant/product frame pair to
// ReactiveFramesDir/<local_frame>.mol2, per §6's optional fragment output.
func (s *Scheduler) writeSpecies(r *reaction.Reaction, fr1, fr2 frame.Frame, g1, g2 *moleculargraph.Graph) error {
	if err := s.writeFragments(r.Reactants, r.ReactantsFingerprints, fr1, g1); err != nil {
		return err
	}
	if err := s.writeFragments(r.Products, r.ProductsFingerprints, fr2, g2); err != nil {
		return err
	}

	path := filepath.Join(s.cfg.ReactiveFramesDir, fmt.Sprintf("%d.mol2", r.LocalFrame))
	return writer.WriteReactiveFrames(path, fr1, fr2, g1, g2)
}

func (s *Scheduler) writeFragments(atomSets [][]int, fingerprints []string, fr frame.Frame, g *moleculargraph.Graph) error {
	for idx, atoms := range atomSets {
		fp := fingerprints[idx]
		if _, ok := s.writtenSpecies[fp]; ok {
			continue
		}
		path := filepath.Join(s.cfg.SpeciesDir, fp+".mol2")
		if err := writer.WriteFragmentMol2(path, atoms, fr, g); err != nil {
			return err
		}
		s.writtenSpecies[fp] = struct{}{}
	}
	return nil
}

// inferMissing runs bond.Infer in parallel across every window entry that
// does not yet carry a graph (i.e. every frame not reused from the previous
// chunk's overlap region).
func (s *Scheduler) inferMissing(window []windowEntry) error {
	start := time.Now()
	defer func() { metrics.BondInferenceSeconds.Observe(time.Since(start).Seconds()) }()

	g, _ := errgroup.WithContext(context.Background())
	for i := range window {
		if window[i].graph != nil {
			continue
		}
		i := i
		g.Go(func() error {
			window[i].graph = bond.Infer(window[i].fr, s.cfg.BondOptions...)
			return nil
		})
	}
	return g.Wait()
}
