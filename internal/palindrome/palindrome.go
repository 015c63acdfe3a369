// internal/palindrome/palindrome.go
// Package palindrome holds the candidate implementations of the "is a permutation of a
// palindrome" predicate that the harness compares.
//
// A byte string can be rearranged into a palindrome when at most one byte value
// occurs an odd number of times.
package palindrome

import "math/bits"

// CountMap tallies bytes in a map, then counts the odd tallies with an early exit.
func CountMap(input []byte) bool {
	counts := make(map[byte]int)
	for _, b := range input {
		counts[b]++
	}

	odd := 0
	for _, c := range counts {
		if c%2 == 1 {
			odd++
			if odd > 1 {
				return false
			}
		}
	}
	return true
}

// CountArray tallies bytes in a fixed 256-entry array of wrapping counters.
// Only parity matters, so overflow of a byte counter is harmless.
func CountArray(input []byte) bool {
	var counts [256]uint8
	for _, b := range input {
		counts[b]++
	}

	odd := 0
	for _, c := range counts {
		odd += int(c & 1)
	}
	return odd < 2
}

// ParityBits flips one bit per byte value in a 256-bit set and counts the survivors.
func ParityBits(input []byte) bool {
	var set [4]uint64
	for _, b := range input {
		set[b>>6] ^= 1 << (b & 63)
	}

	odd := 0
	for _, word := range set {
		odd += bits.OnesCount64(word)
	}
	return odd <= 1
}
