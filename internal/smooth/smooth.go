// Package smooth stabilizes noisy per-frame classification streams with a
// bounded history per stream and a majority vote over a sliding window.
package smooth

// Capacity is how many classifications a stream retains; Window is how
// many of the most recent ones the vote considers.
const (
	Capacity = 10
	Window   = 5
)

// Entry is one classification pushed into a history.
type Entry struct {
	Label      string
	Confidence float64
}

// History is a bounded FIFO of recent classifications for one stream.
// Pushing past capacity evicts the oldest entry. The zero value is ready
// to use.
type History struct {
	entries []Entry
}

// Push appends a classification, evicting the oldest when full.
func (h *History) Push(e Entry) {
	if len(h.entries) == Capacity {
		copy(h.entries, h.entries[1:])
		h.entries[len(h.entries)-1] = e
		return
	}
	h.entries = append(h.entries, e)
}

// Len reports how many classifications are retained.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns the retained classifications, oldest first.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Smoothed reduces the last few entries to a single stabilized
// classification. The most frequent label in the window wins; on a tie
// the label that reached the winning count first takes it. The output
// confidence is the mean confidence of the winning label's entries,
// capped at 0.95. An empty history reads as low-confidence neutral.
func (h *History) Smoothed() Entry {
	if len(h.entries) == 0 {
		return Entry{Label: "neutral", Confidence: 0.5}
	}

	window := h.entries
	if len(window) > Window {
		window = window[len(window)-Window:]
	}

	counts := make(map[string]int, len(window))
	best := 0
	winner := ""
	for _, e := range window {
		counts[e.Label]++
		if counts[e.Label] > best {
			best = counts[e.Label]
			winner = e.Label
		}
	}

	sum := 0.0
	for _, e := range window {
		if e.Label == winner {
			sum += e.Confidence
		}
	}
	confidence := sum / float64(best)
	if confidence > 0.95 {
		confidence = 0.95
	}

	return Entry{Label: winner, Confidence: confidence}
}

// Smoother bundles the per-stream histories for one analysis session:
// one for the emotion stream and one per enumerated hand. Hands are keyed
// by their detector enumeration order, not re-identified across frames,
// so a departing hand's history mixes with its replacement's until the
// window ages it out.
type Smoother struct {
	emotion  History
	gestures []*History
}

// NewSmoother returns a smoother with no history.
func NewSmoother() *Smoother {
	return &Smoother{}
}

// Emotion returns the history for the primary face's emotion stream.
func (s *Smoother) Emotion() *History {
	return &s.emotion
}

// Gesture returns the history for hand stream i, creating any streams up
// to and including it on first use.
func (s *Smoother) Gesture(i int) *History {
	for len(s.gestures) <= i {
		s.gestures = append(s.gestures, &History{})
	}
	return s.gestures[i]
}

// GestureStreams reports how many hand streams have been seen so far.
func (s *Smoother) GestureStreams() int {
	return len(s.gestures)
}
