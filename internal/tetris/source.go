package tetris

import (
	"fmt"
	"math/rand"
)

// PieceSource produces the sequence of upcoming shapes.
type PieceSource interface {
	NextShape() Shape
}

// RandomSource picks every shape independently and uniformly.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a uniformly random source.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// NextShape returns a random shape.
func (r *RandomSource) NextShape() Shape {
	return AllShapes[r.rng.Intn(len(AllShapes))]
}

// BagSource deals shapes from shuffled bags of all seven, so every shape
// appears exactly once per seven pieces.
type BagSource struct {
	rng *rand.Rand
	bag []Shape
}

// NewBagSource creates a 7-bag source.
func NewBagSource(seed int64) *BagSource {
	return &BagSource{rng: rand.New(rand.NewSource(seed))}
}

// NextShape returns the next shape from the current bag, refilling it when empty.
func (b *BagSource) NextShape() Shape {
	if len(b.bag) == 0 {
		b.bag = append(b.bag[:0], AllShapes[:]...)
		b.rng.Shuffle(len(b.bag), func(i, j int) {
			b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
		})
	}
	s := b.bag[0]
	b.bag = b.bag[1:]
	return s
}

// QueueSource replays a scripted sequence. Once the queue is exhausted it
// keeps returning Fallback.
type QueueSource struct {
	queue    []Shape
	Fallback Shape
}

// NewQueueSource creates a scripted source.
func NewQueueSource(shapes ...Shape) *QueueSource {
	return &QueueSource{queue: shapes, Fallback: ShapeO}
}

// Push appends shapes to the queue.
func (q *QueueSource) Push(shapes ...Shape) {
	q.queue = append(q.queue, shapes...)
}

// NextShape pops the head of the queue.
func (q *QueueSource) NextShape() Shape {
	if len(q.queue) == 0 {
		return q.Fallback
	}
	s := q.queue[0]
	q.queue = q.queue[1:]
	return s
}

// Randomizer names a PieceSource implementation.
type Randomizer string

const (
	RandomizerBag    Randomizer = "bag"
	RandomizerRandom Randomizer = "random"
)

// NewSource builds the named source.
func NewSource(kind Randomizer, seed int64) (PieceSource, error) {
	switch kind {
	case RandomizerBag, "":
		return NewBagSource(seed), nil
	case RandomizerRandom:
		return NewRandomSource(seed), nil
	default:
		return nil, fmt.Errorf("tetris: unknown randomizer %q", kind)
	}
}
