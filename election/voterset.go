// SPDX-License-Identifier: MIT

package election

import "slices"

// VoterSet is a strictly increasing list of voter indices.
type VoterSet []int

// Len returns the number of voters in s.
func (s VoterSet) Len() int { return len(s) }

// Contains reports whether voter v is in s. O(log |s|).
func (s VoterSet) Contains(v int) bool {
	_, found := slices.BinarySearch(s, v)
	return found
}

// Intersect returns s ∩ t as a new set. O(|s|+|t|).
func (s VoterSet) Intersect(t VoterSet) VoterSet {
	out := make(VoterSet, 0, min(len(s), len(t)))
	i, j := 0, 0
	for i < len(s) && j < len(t) {
		switch {
		case s[i] == t[j]:
			out = append(out, s[i])
			i++
			j++
		case s[i] < t[j]:
			i++
		default:
			j++
		}
	}
	return out
}

// Union returns s ∪ t as a new set. O(|s|+|t|).
func (s VoterSet) Union(t VoterSet) VoterSet {
	out := make(VoterSet, 0, len(s)+len(t))
	i, j := 0, 0
	for i < len(s) && j < len(t) {
		switch {
		case s[i] == t[j]:
			out = append(out, s[i])
			i++
			j++
		case s[i] < t[j]:
			out = append(out, s[i])
			i++
		default:
			out = append(out, t[j])
			j++
		}
	}
	out = append(out, s[i:]...)
	return append(out, t[j:]...)
}

// Equal reports whether s and t hold the same voters.
func (s VoterSet) Equal(t VoterSet) bool { return slices.Equal(s, t) }

// SubsetOf reports whether every voter of s is in t.
func (s VoterSet) SubsetOf(t VoterSet) bool {
	if len(s) > len(t) {
		return false
	}
	j := 0
	for _, v := range s {
		for j < len(t) && t[j] < v {
			j++
		}
		if j == len(t) || t[j] != v {
			return false
		}
		j++
	}
	return true
}
