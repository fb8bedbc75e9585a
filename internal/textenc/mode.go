package textenc

// Mode is the execution-time encoding choice for one call. It is determined
// exactly once per call, before any per-element work.
type Mode uint8

const (
	// ModeBytes runs the match in raw byte space; positions are byte offsets.
	ModeBytes Mode = iota
	// ModeASCII runs the match in byte space because every input is ASCII.
	// Positions are still reported as character offsets (bytes and characters
	// coincide), and the result is labelled accordingly.
	ModeASCII
	// ModeUTF8 runs the match on validated UTF-8; positions are reported in
	// characters via the position mapper.
	ModeUTF8
	// ModeWide runs the extended dialect in character space for multibyte
	// inputs; positions are natively character offsets.
	ModeWide
)

// ByteIndexed reports whether user-visible positions are byte offsets.
func (m Mode) ByteIndexed() bool { return m == ModeBytes }

// CharSpace reports whether the subject buffer is interpreted as UTF-8 and
// matches advance by whole characters.
func (m Mode) CharSpace() bool { return m == ModeUTF8 || m == ModeWide }

// String returns the mode name used in diagnostics.
func (m Mode) String() string {
	switch m {
	case ModeASCII:
		return "ascii"
	case ModeUTF8:
		return "utf8"
	case ModeWide:
		return "wide"
	default:
		return "bytes"
	}
}

// IndexType returns the value of the index-type label attached to positional
// results produced under this mode.
func (m Mode) IndexType() string {
	if m == ModeBytes {
		return "bytes"
	}
	return "chars"
}
