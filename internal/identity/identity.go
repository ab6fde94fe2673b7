package identity

// Kind names an entity family with its own ID sequence.
type Kind string

const (
	KindProduct   Kind = "product"
	KindCustomer  Kind = "customer"
	KindOrder     Kind = "order"
	KindOrderItem Kind = "order-item"
)

// Allocator hands out monotonically increasing IDs per entity kind, each
// sequence seeded at 1. An ID is never reused within a process lifetime; a
// fresh process starts every sequence over at 1.
//
// The allocator is not safe for concurrent use. Seeding runs before the
// server starts and the coordinator serializes everything after that.
type Allocator struct {
	next map[Kind]int64
}

func NewAllocator() *Allocator {
	return &Allocator{next: map[Kind]int64{
		KindProduct:   1,
		KindCustomer:  1,
		KindOrder:     1,
		KindOrderItem: 1,
	}}
}

// Next returns the next ID for kind and advances the sequence.
func (a *Allocator) Next(kind Kind) int64 {
	id := a.next[kind]
	if id == 0 {
		id = 1
	}
	a.next[kind] = id + 1
	return id
}

// Claim marks id as taken for kind so Next never hands it out again. Callers
// use it when a record arrives with its own ID, e.g. from a seed file.
func (a *Allocator) Claim(kind Kind, id int64) {
	if id >= a.next[kind] {
		a.next[kind] = id + 1
	}
}
