// Package queue generates the stream of upcoming pieces a Game draws
// from, using the standard seven-bag randomizer: every kind appears
// exactly once per bag, in a per-bag random order, so no kind is ever
// more than 12 pieces away from its last appearance.
package queue

import (
	"math/rand"

	"github.com/tetris-engine/core/internal/piece"
)

// splitMix64 is a minimal value-type PRNG source. math/rand.Rand wraps
// its source behind a pointer-shaped rand.Source, so a shallow copy of
// *rand.Rand shares state with the original instead of forking it;
// Queue needs true, independent forks (Clone) whenever Lookahead shards
// search across goroutines, so it drives rand.Rand from this
// plain-uint64 source instead, which copies by value like the rest of
// this module's small state types (Board, Piece).
type splitMix64 struct {
	state uint64
}

func (s *splitMix64) Int63() int64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z = z ^ (z >> 31)
	return int64(z >> 1)
}

func (s *splitMix64) Seed(seed int64) {
	s.state = uint64(seed)
}

// Queue is a seeded, infinite seven-bag piece stream. It is not safe
// for concurrent use; callers that shard work across goroutines (see
// internal/lookahead) should Clone it instead of sharing one.
type Queue struct {
	src  splitMix64
	bag  []piece.Kind
	next int
}

// New creates a Queue seeded deterministically from seed: the same
// seed always produces the same infinite piece stream. It pre-fills
// two bags up front, so a fresh queue can PeekAhead up to 13 pieces
// without triggering a refill; later bags are appended as draws and
// peeks reach past the staged ones.
func New(seed int64) *Queue {
	q := &Queue{src: splitMix64{state: uint64(seed)}}
	q.refillInto(&q.bag)
	q.refillInto(&q.bag)
	return q
}

// refillInto appends one freshly shuffled bag of all seven kinds.
func (q *Queue) refillInto(bag *[]piece.Kind) {
	fresh := make([]piece.Kind, piece.NumKinds)
	for i := range fresh {
		fresh[i] = piece.Kind(i)
	}
	rand.New(&q.src).Shuffle(len(fresh), func(i, j int) { fresh[i], fresh[j] = fresh[j], fresh[i] })
	*bag = append(*bag, fresh...)
}

// ensure makes sure draw index next+n is staged, refilling bags as
// needed.
func (q *Queue) ensure(n int) {
	for q.next+n >= len(q.bag) {
		q.refillInto(&q.bag)
	}
}

// Peek returns the next kind to be drawn, without consuming it.
func (q *Queue) Peek() piece.Kind {
	return q.PeekAhead(0)
}

// PeekAhead returns the kind that will be drawn i draws from now
// (PeekAhead(0) == Peek()), without consuming anything.
func (q *Queue) PeekAhead(i int) piece.Kind {
	q.ensure(i)
	return q.bag[q.next+i]
}

// Next consumes and returns the next kind in the stream.
func (q *Queue) Next() piece.Kind {
	q.ensure(0)
	k := q.bag[q.next]
	q.next++
	return k
}

// Clone returns an independent copy of q: its own generator state and
// bag, so draws from the clone never affect q or vice versa, and both
// see the same future sequence until one of them draws further.
func (q *Queue) Clone() *Queue {
	bagCopy := make([]piece.Kind, len(q.bag))
	copy(bagCopy, q.bag)
	return &Queue{src: q.src, bag: bagCopy, next: q.next}
}
