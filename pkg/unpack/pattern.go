// SPDX-License-Identifier: MPL-2.0

// Package unpack compiles binding patterns such as "a, *rest, z" and applies
// them to sequences of unknown length.
//
// A Pattern is compiled once from an ordered list of SlotSpec values and is
// immutable afterwards, so it can be shared across goroutines the same way a
// compiled regexp can. Each slot is either a Head slot (bound from the front),
// the single optional Rest slot (bound to the contiguous middle), or a Tail
// slot (bound from the back):
//
//	p := unpack.MustCompile([]unpack.SlotSpec{
//	    {Name: "first"},
//	    {Name: "middle", Rest: true},
//	    {Name: "last"},
//	})
//	b, err := unpack.Unpack(p, []int{5, 6, 3, 7})
//	// b.Value("first") == 5, b.Values("middle") == [6 3], b.Value("last") == 7
//
// This package is a leaf dependency: it imports only the standard library and
// never logs. Every failure is returned to the immediate caller.
package unpack

import (
	"fmt"
	"strings"
)

const (
	// RoleHead marks a slot positioned before the rest slot (or any slot of a
	// pattern without a rest slot).
	RoleHead Role = iota
	// RoleRest marks the single slot absorbing all unclaimed elements.
	RoleRest
	// RoleTail marks a slot positioned after the rest slot.
	RoleTail
)

type (
	// Role is the position class of a slot within its pattern.
	Role int

	// SlotSpec is one requested binding as produced by a front-end.
	SlotSpec struct {
		// Name is the binding name. It is opaque to the compiler.
		Name string `json:"name" toml:"name"`
		// Mutable requests a writable binding.
		Mutable bool `json:"mutable,omitempty" toml:"mutable,omitempty"`
		// Rest marks the slot that absorbs the unclaimed middle of the sequence.
		Rest bool `json:"rest,omitempty" toml:"rest,omitempty"`
	}

	// Slot is a compiled SlotSpec with its resolved role and position.
	Slot struct {
		Name     string
		Mutable  bool
		Role     Role
		Position int
	}

	// Pattern is an immutable, validated binding pattern.
	Pattern struct {
		slots []Slot
		// restIndex is the position of the rest slot, or len(slots) when the
		// pattern has none.
		restIndex int
	}

	compileOptions struct {
		uniqueNames bool
	}

	// CompileOption configures Compile.
	CompileOption func(*compileOptions)
)

// String returns the lowercase role name.
func (r Role) String() string {
	switch r {
	case RoleHead:
		return "head"
	case RoleRest:
		return "rest"
	case RoleTail:
		return "tail"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// String renders the slot in pattern syntax (e.g. "mut *rest").
func (s Slot) String() string {
	return formatSlot(s.Name, s.Mutable, s.Role == RoleRest)
}

// String renders s in slot-list syntax.
func (s SlotSpec) String() string {
	return formatSlot(s.Name, s.Mutable, s.Rest)
}

func formatSlot(name string, mutable, rest bool) string {
	var sb strings.Builder
	if mutable {
		sb.WriteString("mut ")
	}
	if rest {
		sb.WriteByte('*')
	}
	sb.WriteString(name)
	return sb.String()
}

// WithUniqueNames makes Compile reject patterns in which two slots share a
// name. By default duplicates are accepted and shadow one another in by-name
// lookups.
func WithUniqueNames() CompileOption {
	return func(o *compileOptions) {
		o.uniqueNames = true
	}
}

// Compile validates specs and builds a Pattern. Without options it fails only
// when two or more specs are marked Rest, returning *MalformedPatternError.
func Compile(specs []SlotSpec, opts ...CompileOption) (*Pattern, error) {
	var options compileOptions
	for _, opt := range opts {
		opt(&options)
	}

	restIndex := len(specs)
	var restPositions []int
	for i, spec := range specs {
		if spec.Rest {
			restPositions = append(restPositions, i)
		}
	}
	switch len(restPositions) {
	case 0:
	case 1:
		restIndex = restPositions[0]
	default:
		return nil, &MalformedPatternError{RestPositions: restPositions}
	}

	if options.uniqueNames {
		seen := make(map[string]int, len(specs))
		for i, spec := range specs {
			if first, ok := seen[spec.Name]; ok {
				return nil, &DuplicateSlotError{Name: spec.Name, First: first, Second: i}
			}
			seen[spec.Name] = i
		}
	}

	slots := make([]Slot, len(specs))
	for i, spec := range specs {
		role := RoleHead
		switch {
		case i == restIndex:
			role = RoleRest
		case i > restIndex:
			role = RoleTail
		}
		slots[i] = Slot{Name: spec.Name, Mutable: spec.Mutable, Role: role, Position: i}
	}

	return &Pattern{slots: slots, restIndex: restIndex}, nil
}

// MustCompile is like Compile but panics on error. It simplifies
// initialization of package-level patterns.
func MustCompile(specs []SlotSpec, opts ...CompileOption) *Pattern {
	p, err := Compile(specs, opts...)
	if err != nil {
		panic("unpack: Compile(" + formatSpecs(specs) + "): " + err.Error())
	}
	return p
}

// Arity returns the number of slots.
func (p *Pattern) Arity() int { return len(p.slots) }

// Slots returns a copy of the compiled slots in declaration order.
func (p *Pattern) Slots() []Slot {
	out := make([]Slot, len(p.slots))
	copy(out, p.slots)
	return out
}

// Slot returns the slot at position i. It panics if i is out of range.
func (p *Pattern) Slot(i int) Slot { return p.slots[i] }

// RestIndex returns the position of the rest slot and true, or (0, false)
// when the pattern has none.
func (p *Pattern) RestIndex() (int, bool) {
	if !p.HasRest() {
		return 0, false
	}
	return p.restIndex, true
}

// HasRest reports whether the pattern contains a rest slot.
func (p *Pattern) HasRest() bool { return p.restIndex < len(p.slots) }

// MinLen returns the shortest sequence length the pattern accepts.
func (p *Pattern) MinLen() int {
	if p.HasRest() {
		return len(p.slots) - 1
	}
	return len(p.slots)
}

// Accepts reports whether a sequence of length n can be unpacked.
func (p *Pattern) Accepts(n int) bool {
	if p.HasRest() {
		return n >= len(p.slots)-1
	}
	return n == len(p.slots)
}

// String renders the pattern in the slot-list syntax accepted by the
// patternsyntax package.
func (p *Pattern) String() string {
	parts := make([]string, len(p.slots))
	for i, s := range p.slots {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

func formatSpecs(specs []SlotSpec) string {
	parts := make([]string, len(specs))
	for i, s := range specs {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
