// SPDX-License-Identifier: MIT
//
// File: methods_compare.go
// Role: Ordered and unordered structural equality.

package dll

// Equal reports whether l and other hold equal values at every position.
// A nil list compares equal to an empty one.
//
// Complexity: O(n).
func (l *List[T]) Equal(other *List[T]) bool {
	if l == other {
		return true
	}
	if l.Len() != other.Len() {
		return false
	}
	if l.Len() == 0 {
		return true
	}
	for a, b := l.head, other.head; a != nil; a, b = a.next, b.next {
		if a.value != b.value {
			return false
		}
	}

	return true
}

// UnorderedEqual reports whether l and other hold the same multiset of
// values, regardless of order.
//
// Complexity: O(n²); T need not be ordered.
func (l *List[T]) UnorderedEqual(other *List[T]) bool {
	return l.UnorderedEqualFunc(other, func(a, b T) bool { return a == b })
}

// UnorderedEqualFunc reports whether there is a bijection between the
// elements of l and other under eq.
//
// Implementation:
//   - Stage 1: Reject on length mismatch; two empty lists are equal.
//   - Stage 2: Copy other into a scratch list.
//   - Stage 3: For each element of l, find the first scratch element matching
//     under eq and remove it; fail if none matches.
//
// Notes:
//   - First-fit matching is exact when eq is an equivalence relation: any two
//     candidates for the same element are equivalent to each other, so
//     committing to the first one never blocks a later match.
//
// Complexity:
//   - Time O(n²) calls to eq, Space O(n) for the scratch copy.
func (l *List[T]) UnorderedEqualFunc(other *List[T], eq func(a, b T) bool) bool {
	if l.Len() != other.Len() {
		return false
	}
	if l.Len() == 0 {
		return true
	}

	scratch := other.Clone()
	var c Cursor[T]
	for n := l.head; n != nil; n = n.next {
		for c = scratch.Begin(); c.Valid(); c = c.Next() {
			if eq(n.value, c.Value()) {
				break
			}
		}
		if !c.Valid() {
			return false
		}
		scratch.unlink(c.n)
	}

	return true
}
