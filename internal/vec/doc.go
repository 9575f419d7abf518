// Package vec provides a generic resizable array with explicit
// capacity control.
//
// [Array] owns a contiguous buffer and grows it by doubling whenever an
// insertion would exceed capacity, so a long run of [Array.Push] calls
// costs amortized constant time per element. Front operations
// ([Array.Unshift], [Array.Shift]) move every live element and cost
// O(n) each.
//
// Capacity is monotonically non-decreasing: removal never frees or
// shrinks the buffer, the slot is simply reused by the next insertion.
//
// An Array is not safe for concurrent use; callers that share one
// across goroutines must synchronize around it.
package vec
