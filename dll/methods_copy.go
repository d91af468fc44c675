// SPDX-License-Identifier: MIT
//
// File: methods_copy.go
// Role: Value-preserving copies and concatenation. No operation here moves
// node ownership between lists; values are copied into fresh nodes.

package dll

// Clone returns a deep copy of l. Cloning a nil list yields an empty list.
//
// Complexity: O(n).
func (l *List[T]) Clone() *List[T] {
	out := &List[T]{}
	if l == nil {
		return out
	}
	for n := l.head; n != nil; n = n.next {
		out.PushBack(n.value)
	}

	return out
}

// Assign makes l an element-wise copy of other.
//
// Implementation:
//   - Stage 1: Overwrite the values of l's existing nodes pairwise with other's.
//   - Stage 2: If other is longer, append the remaining values.
//   - Stage 3: If l is longer, unlink the surplus tail nodes.
//
// Behavior highlights:
//   - Cursors to the first min(Len(), other.Len()) elements stay valid and
//     observe the new values.
//   - Self-assignment is a no-op; a nil other empties l.
//
// Complexity:
//   - Time O(max(n, m)), Space O(max(0, m-n)).
func (l *List[T]) Assign(other *List[T]) {
	if l == other {
		return
	}
	if other == nil {
		l.Clear()
		return
	}

	dst, src := l.head, other.head
	for dst != nil && src != nil {
		dst.value = src.value
		dst, src = dst.next, src.next
	}
	for ; src != nil; src = src.next {
		l.PushBack(src.value)
	}
	for dst != nil {
		dst = l.unlink(dst)
	}
}

// Concat returns a new list holding l's elements followed by other's.
// Neither operand is modified.
//
// Complexity: O(n + m).
func (l *List[T]) Concat(other *List[T]) *List[T] {
	out := l.Clone()
	out.Extend(other)

	return out
}

// Extend appends copies of other's elements to l. Extending a list with
// itself doubles it.
//
// Complexity: O(m).
func (l *List[T]) Extend(other *List[T]) {
	if other == nil {
		return
	}
	n := other.head
	for k := other.size; k > 0; k-- {
		l.PushBack(n.value)
		n = n.next
	}
}
