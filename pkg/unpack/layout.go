// SPDX-License-Identifier: MPL-2.0

package unpack

// Assignment maps one slot onto a sequence of a given length.
// Scalar slots cover exactly [Index, Index+1). The rest slot covers
// [Start, End), which may be empty.
type Assignment struct {
	Slot  Slot
	Index int
	Start int
	End   int
}

// Len returns the number of elements the assignment covers.
func (a Assignment) Len() int { return a.End - a.Start }

// Layout computes where every slot lands in a sequence of length n without
// touching any data. It fails with *ArityMismatchError or
// *InsufficientElementsError when n is not acceptable.
func (p *Pattern) Layout(n int) ([]Assignment, error) {
	if err := p.check(n); err != nil {
		return nil, err
	}

	k := len(p.slots)
	out := make([]Assignment, k)
	for i, s := range p.slots {
		switch s.Role {
		case RoleRest:
			out[i] = Assignment{Slot: s, Index: i, Start: i, End: n - k + i + 1}
		case RoleTail:
			idx := n - k + i
			out[i] = Assignment{Slot: s, Index: idx, Start: idx, End: idx + 1}
		default:
			out[i] = Assignment{Slot: s, Index: i, Start: i, End: i + 1}
		}
	}
	return out, nil
}

func (p *Pattern) check(n int) error {
	k := len(p.slots)
	if p.HasRest() {
		if n < k-1 {
			return &InsufficientElementsError{Minimum: k - 1, Actual: n}
		}
		return nil
	}
	if n != k {
		return &ArityMismatchError{Expected: k, Actual: n}
	}
	return nil
}
