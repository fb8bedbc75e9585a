// Package literal provides fixed-pattern (no metacharacter) searching over
// byte strings.
//
// This is the fast path for the fixed dialect: a direct scan with
// specializations for 1-, 2- and 3-byte needles, which covers single
// characters up to three-byte UTF-8 sequences, and a first-byte-filtered
// comparison for longer needles. Searches accept a starting offset so
// iteration over successive matches needs no re-slicing.
//
// All offsets are byte offsets into the haystack. Matching a valid UTF-8
// needle against a valid UTF-8 haystack can only succeed on character
// boundaries, so byte offsets convert cleanly to character positions.
package literal

import "bytes"

// Find returns the byte offset of the first occurrence of needle in hay at or
// after from, or -1 if there is none. An empty needle matches at from (or -1
// when from is past the end of hay).
func Find(hay, needle []byte, from int) int {
	if from < 0 {
		from = 0
	}
	n, m := len(hay), len(needle)
	if m == 0 {
		if from > n {
			return -1
		}
		return from
	}
	if n-from < m {
		return -1
	}
	switch m {
	case 1:
		c := needle[0]
		for i := from; i < n; i++ {
			if hay[i] == c {
				return i
			}
		}
	case 2:
		for i := from; i <= n-2; i++ {
			if hay[i] == needle[0] && hay[i+1] == needle[1] {
				return i
			}
		}
	case 3:
		for i := from; i <= n-3; i++ {
			if hay[i] == needle[0] && hay[i+1] == needle[1] && hay[i+2] == needle[2] {
				return i
			}
		}
	default:
		for i := from; i <= n-m; i++ {
			if hay[i] == needle[0] && bytes.Equal(hay[i+1:i+m], needle[1:]) {
				return i
			}
		}
	}
	return -1
}

// FindString is Find over strings.
func FindString(hay, needle string, from int) int {
	if from < 0 {
		from = 0
	}
	n, m := len(hay), len(needle)
	if m == 0 {
		if from > n {
			return -1
		}
		return from
	}
	if n-from < m {
		return -1
	}
	if from > 0 {
		idx := Index(hay[from:], needle)
		if idx < 0 {
			return -1
		}
		return from + idx
	}
	return Index(hay, needle)
}

// Index returns the byte offset of the first occurrence of needle in hay,
// or -1. Specialized like Find.
func Index(hay, needle string) int {
	n, m := len(hay), len(needle)
	if m == 0 {
		return 0
	}
	if n < m {
		return -1
	}
	switch m {
	case 1:
		c := needle[0]
		for i := 0; i < n; i++ {
			if hay[i] == c {
				return i
			}
		}
	case 2:
		for i := 0; i <= n-2; i++ {
			if hay[i] == needle[0] && hay[i+1] == needle[1] {
				return i
			}
		}
	case 3:
		for i := 0; i <= n-3; i++ {
			if hay[i] == needle[0] && hay[i+1] == needle[1] && hay[i+2] == needle[2] {
				return i
			}
		}
	default:
		for i := 0; i <= n-m; i++ {
			if hay[i] == needle[0] && hay[i+1:i+m] == needle[1:] {
				return i
			}
		}
	}
	return -1
}

// Count returns the number of non-overlapping occurrences of needle in hay.
// Occurrences of an empty needle are not counted.
func Count(hay, needle string) int {
	if len(needle) == 0 {
		return 0
	}
	n := 0
	for off := 0; ; {
		i := FindString(hay, needle, off)
		if i < 0 {
			break
		}
		n++
		off = i + len(needle)
	}
	return n
}
