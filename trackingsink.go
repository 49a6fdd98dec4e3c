package rkyv

import "github.com/Miaxos/rkyv/internal/regions"

// TrackingSink wraps another Sink and records every write as a region,
// so tests and debugging tools can assert an archive's writes never
// overlap. This is a correctness aid, not part of the core archival
// protocol: every Sink is append-only by construction, so overlaps can
// only arise from a Resolver bug that recomputes a position wrong.
type TrackingSink struct {
	inner   Sink
	tracker *regions.Tracker
}

// NewTrackingSink wraps inner.
func NewTrackingSink(inner Sink) *TrackingSink {
	return &TrackingSink{inner: inner, tracker: regions.NewTracker()}
}

// Pos delegates to the wrapped sink.
func (t *TrackingSink) Pos() int {
	return t.inner.Pos()
}

// Write delegates to the wrapped sink, then records the written region
// if the write succeeded.
func (t *TrackingSink) Write(p []byte) error {
	pos := t.inner.Pos()
	if err := t.inner.Write(p); err != nil {
		return err
	}
	t.tracker.Record(pos, len(p))
	return nil
}

// Regions returns every region recorded so far, sorted by offset.
func (t *TrackingSink) Regions() []regions.Region {
	return t.tracker.Regions()
}

// ValidateNoOverlaps returns an error if any two recorded regions
// overlap.
func (t *TrackingSink) ValidateNoOverlaps() error {
	return t.tracker.ValidateNoOverlaps()
}

var _ Sink = (*TrackingSink)(nil)
