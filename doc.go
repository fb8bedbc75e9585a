// Package strmatch implements vectorized string pattern matching: searching,
// splitting, extracting and substituting substrings of a text vector
// according to a pattern.
//
// Every operation accepts one of three pattern dialects, selected by flags:
//
//   - fixed: the pattern is a literal byte sequence (fastest path)
//   - extended: POSIX-style extended regular expressions with
//     leftmost-longest semantics
//   - perl: Perl-compatible regular expressions with back-references,
//     lookaround and named capture groups
//
// Inputs carry per-element encoding tags. Before any per-element work a call
// classifies itself into one execution mode - raw bytes, ASCII, UTF-8, or
// the character-space mode used by the extended dialect for multibyte text -
// and every user-visible position is reported in characters unless the call
// ran in byte mode. Missing elements propagate through every operation.
//
// Basic usage:
//
//	x := vector.NewStrings("x1", "y", "xx")
//	res, err := strmatch.Grep(vector.S("^x"), x, strmatch.Options{Value: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Values.Strings()) // [x1 xx]
//
// Substitution with back-references:
//
//	out, _ := strmatch.Gsub(vector.S(`(\w+) (\w+)`), vector.S(`\2 \1`),
//	    vector.NewStrings("hello world"), strmatch.Options{Perl: true})
//	fmt.Println(out.Strings()) // [world hello]
//
// Warnings (encoding problems, engine resource limits, ignored flag
// combinations) do not stop a call; they are delivered to the Options.Sink,
// which defaults to the module's trace facility.
package strmatch
