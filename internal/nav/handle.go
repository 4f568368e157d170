package nav

import "fmt"

// ElementID is a weak handle to an Element owned by a Navigator.
// The zero value is the null handle.
type ElementID struct {
	index uint32
	gen   uint32
}

// IsZero reports whether the handle is null.
func (id ElementID) IsZero() bool { return id.gen == 0 }

func (id ElementID) String() string {
	if id.IsZero() {
		return "e<nil>"
	}
	return fmt.Sprintf("e%d#%d", id.index, id.gen)
}

// ContainerID is a weak handle to a Container owned by a Navigator.
// The zero value is the null handle.
type ContainerID struct {
	index uint32
	gen   uint32
}

// IsZero reports whether the handle is null.
func (id ContainerID) IsZero() bool { return id.gen == 0 }

func (id ContainerID) String() string {
	if id.IsZero() {
		return "c<nil>"
	}
	return fmt.Sprintf("c%d#%d", id.index, id.gen)
}

// arena stores items in reusable slots. Each slot carries a generation that
// is bumped on removal, so handles to a removed item go stale instead of
// aliasing whatever reuses the slot.
type arena[T any] struct {
	slots []arenaSlot[T]
	free  []uint32
}

type arenaSlot[T any] struct {
	item *T
	gen  uint32
}

func (a *arena[T]) insert(item *T) (index, gen uint32) {
	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, arenaSlot[T]{})
		index = uint32(len(a.slots) - 1)
	}
	s := &a.slots[index]
	s.gen++
	s.item = item
	return index, s.gen
}

func (a *arena[T]) get(index, gen uint32) *T {
	if gen == 0 || int(index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[index]
	if s.gen != gen {
		return nil
	}
	return s.item
}

func (a *arena[T]) remove(index, gen uint32) bool {
	if a.get(index, gen) == nil {
		return false
	}
	s := &a.slots[index]
	s.item = nil
	s.gen++
	a.free = append(a.free, index)
	return true
}

// live returns every occupied item in slot order.
func (a *arena[T]) live() []*T {
	out := make([]*T, 0, len(a.slots)-len(a.free))
	for i := range a.slots {
		if a.slots[i].item != nil {
			out = append(out, a.slots[i].item)
		}
	}
	return out
}

func (a *arena[T]) len() int {
	return len(a.slots) - len(a.free)
}
