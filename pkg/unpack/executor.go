// SPDX-License-Identifier: MPL-2.0

package unpack

import (
	"iter"
	"slices"
)

type (
	// Binding is the value bound to one slot by a single unpack call.
	Binding[T any] struct {
		slot  Slot
		value T
		// ref points at the storage a mutable scalar binding writes through.
		ref  *T
		rest []T
	}

	// Bindings is the complete result of one unpack call. It is produced
	// atomically: every slot is bound, or the call fails and no Bindings exist.
	Bindings[T any] struct {
		items []Binding[T]
		// byName maps a slot name to its last position (later slots shadow
		// earlier ones with the same name).
		byName map[string]int
	}

	unpackOptions struct {
		ownedRest bool
	}

	// Option configures Unpack.
	Option func(*unpackOptions)
)

// WithOwnedRest makes Unpack copy the rest sub-sequence into new storage so
// the binding stays valid after the source is discarded or modified.
func WithOwnedRest() Option {
	return func(o *unpackOptions) {
		o.ownedRest = true
	}
}

// Unpack binds seq to the slots of p without taking ownership of seq.
//
// Scalar bindings hold copies of their elements; a mutable scalar binding
// additionally aliases its source element through Ref. The rest binding is a
// view of seq whose capacity is clipped to its length, so appending to it
// never overwrites the source's tail. Use WithOwnedRest for an independent copy.
func Unpack[T any](p *Pattern, seq []T, opts ...Option) (*Bindings[T], error) {
	var options unpackOptions
	for _, opt := range opts {
		opt(&options)
	}
	return bind(p, seq, false, options.ownedRest)
}

// Consume binds *src to the slots of p and takes ownership of it. On success
// *src is set to nil and every binding owns independent storage. On failure
// *src is left untouched.
//
// The caller must not access the source concurrently with Consume.
func Consume[T any](p *Pattern, src *[]T) (*Bindings[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	b, err := bind(p, *src, true, true)
	if err != nil {
		return nil, err
	}
	*src = nil
	return b, nil
}

func bind[T any](p *Pattern, seq []T, owned, ownedRest bool) (*Bindings[T], error) {
	layout, err := p.Layout(len(seq))
	if err != nil {
		return nil, err
	}

	items := make([]Binding[T], len(layout))
	byName := make(map[string]int, len(layout))
	for i, a := range layout {
		b := Binding[T]{slot: a.Slot}
		if a.Slot.Role == RoleRest {
			if ownedRest {
				b.rest = slices.Clone(seq[a.Start:a.End])
			} else {
				b.rest = seq[a.Start:a.End:a.End]
			}
			if b.rest == nil {
				b.rest = []T{}
			}
		} else {
			b.value = seq[a.Index]
			if a.Slot.Mutable {
				if owned {
					v := seq[a.Index]
					b.ref = &v
				} else {
					b.ref = &seq[a.Index]
				}
			}
		}
		items[i] = b
		byName[a.Slot.Name] = i
	}

	return &Bindings[T]{items: items, byName: byName}, nil
}

// Slot returns the compiled slot this binding belongs to.
func (b Binding[T]) Slot() Slot { return b.slot }

// Name returns the slot name.
func (b Binding[T]) Name() string { return b.slot.Name }

// IsRest reports whether the binding holds a sub-sequence.
func (b Binding[T]) IsRest() bool { return b.slot.Role == RoleRest }

// Value returns the bound element of a scalar slot, or the zero value for the
// rest slot. For mutable bindings it reflects writes made through Ref.
func (b Binding[T]) Value() T {
	if b.ref != nil {
		return *b.ref
	}
	return b.value
}

// Values returns the bound sub-sequence of the rest slot, or nil for a
// scalar slot. An empty rest is a non-nil empty slice. Callers must not
// write through the result of a non-mutable rest binding; use MutableValues
// to obtain a writable one.
func (b Binding[T]) Values() []T { return b.rest }

// Ref returns a pointer through which a mutable scalar binding can be
// modified.
func (b Binding[T]) Ref() (*T, error) {
	if b.IsRest() {
		return nil, ErrNotScalar
	}
	if !b.slot.Mutable {
		return nil, &ReadOnlyBindingError{Name: b.slot.Name}
	}
	return b.ref, nil
}

// MutableValues returns the writable sub-sequence of a mutable rest binding.
func (b Binding[T]) MutableValues() ([]T, error) {
	if !b.IsRest() {
		return nil, ErrNotRest
	}
	if !b.slot.Mutable {
		return nil, &ReadOnlyBindingError{Name: b.slot.Name}
	}
	return b.rest, nil
}

// Len returns the number of bindings, which equals the pattern's arity.
func (bs *Bindings[T]) Len() int { return len(bs.items) }

// At returns the binding for the slot at position i.
func (bs *Bindings[T]) At(i int) Binding[T] { return bs.items[i] }

// Lookup returns the binding for name. When several slots share the name the
// last one wins.
func (bs *Bindings[T]) Lookup(name string) (Binding[T], bool) {
	i, ok := bs.byName[name]
	if !ok {
		return Binding[T]{}, false
	}
	return bs.items[i], true
}

// Value returns the scalar bound to name, or the zero value if name is
// unknown or names the rest slot.
func (bs *Bindings[T]) Value(name string) T {
	b, _ := bs.Lookup(name)
	return b.Value()
}

// Values returns the sub-sequence bound to name, or nil if name is unknown or
// names a scalar slot.
func (bs *Bindings[T]) Values(name string) []T {
	b, _ := bs.Lookup(name)
	return b.Values()
}

// Names returns the slot names in declaration order, duplicates included.
func (bs *Bindings[T]) Names() []string {
	names := make([]string, len(bs.items))
	for i, b := range bs.items {
		names[i] = b.slot.Name
	}
	return names
}

// All yields every binding in declaration order keyed by slot name.
func (bs *Bindings[T]) All() iter.Seq2[string, Binding[T]] {
	return func(yield func(string, Binding[T]) bool) {
		for _, b := range bs.items {
			if !yield(b.slot.Name, b) {
				return
			}
		}
	}
}

// Flatten concatenates the bindings in slot order. For any successful unpack
// the result equals the source sequence element by element.
func (bs *Bindings[T]) Flatten() []T {
	n := 0
	for _, b := range bs.items {
		if b.IsRest() {
			n += len(b.rest)
		} else {
			n++
		}
	}
	out := make([]T, 0, n)
	for _, b := range bs.items {
		if b.IsRest() {
			out = append(out, b.rest...)
		} else {
			out = append(out, b.Value())
		}
	}
	return out
}
