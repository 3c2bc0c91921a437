// Package combinatorics provides the counting primitives used by the
// connector null model.
//
// 🚀 What is inside?
//
//   - Binomial: exact C(n,k) in a uint64 accumulator, 0 on overflow.
//   - Log2FactorialTable: immutable cumulative table of log2(n!), used to
//     evaluate log2 C(n,k) without touching 64-bit integers.
//
// The table is a read-only resource: build one with NewLog2FactorialTable
// and inject it, or share the process-wide instance returned by Default,
// which is created once on first use and never mutated afterwards.
//
// Complexity:
//
//   - Binomial:              O(k)
//   - NewLog2FactorialTable: O(n) time and memory
//   - Log2Binomial:          O(1)
package combinatorics
