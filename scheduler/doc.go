// Package scheduler drives the sliding-window chunk pipeline: pull frames,
// fan out bond inference across a worker pool, denoise the resulting bonding
// timeline, repair the per-frame graphs, and extract reactions at every
// surviving transition. It is the only component that touches the frame
// window, the timeline, and the writer sink — everything else in this
// module is a pure, stateless function it calls.
package scheduler
