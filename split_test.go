package strmatch

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vexlang/strmatch/vector"
)

func splitStrings(t *testing.T, x, tok []string, opt Options) [][]string {
	t.Helper()
	res, err := Split(vector.NewStrings(x...), vector.NewStrings(tok...), opt)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	out := make([][]string, len(res.Tokens))
	for i, v := range res.Tokens {
		out[i] = v.Strings()
	}
	return out
}

func TestSplitFixed(t *testing.T) {
	utf8Locale(t)
	tests := []struct {
		name string
		x    string
		tok  string
		want []string
	}{
		{"simple", "a,b,,c", ",", []string{"a", "b", "", "c"}},
		{"empty subject", "", ",", []string{""}},
		{"no delimiter", "abc", ",", []string{"abc"}},
		{"trailing delimiter", "a,b,", ",", []string{"a", "b"}},
		{"leading delimiter", ",a", ",", []string{"", "a"}},
		{"multibyte delimiter", "a::b::c", "::", []string{"a", "b", "c"}},
		{"delimiter only", ",", ",", []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitStrings(t, []string{tt.x}, []string{tt.tok}, Options{Fixed: true})
			if !reflect.DeepEqual(got[0], tt.want) {
				t.Errorf("Split(%q, %q) = %q, want %q", tt.x, tt.tok, got[0], tt.want)
			}
		})
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	utf8Locale(t)
	subjects := []string{"a,b,c", "x", "a,,b", ",lead", "one,two,three"}
	for _, s := range subjects {
		got := splitStrings(t, []string{s}, []string{","}, Options{Fixed: true})
		if joined := strings.Join(got[0], ","); joined != s {
			t.Errorf("join(split(%q)) = %q", s, joined)
		}
	}
}

func TestSplitRegex(t *testing.T) {
	utf8Locale(t)
	tests := []struct {
		name string
		x    string
		tok  string
		opt  Options
		want []string
	}{
		{"extended class", "a1b22c333d", "[0-9]+", Options{}, []string{"a", "b", "c", "d"}},
		{"perl word boundary", "one  two   three", `\s+`, Options{Perl: true}, []string{"one", "two", "three"}},
		{"perl empty matches", "abc", "x*", Options{Perl: true}, []string{"a", "b", "c"}},
		{"anchored", "aXbXa", "^a", Options{}, []string{"", "XbXa"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitStrings(t, []string{tt.x}, []string{tt.tok}, tt.opt)
			if !reflect.DeepEqual(got[0], tt.want) {
				t.Errorf("Split(%q, %q) = %q, want %q", tt.x, tt.tok, got[0], tt.want)
			}
		})
	}
}

func TestSplitEmptyPattern(t *testing.T) {
	utf8Locale(t)
	got := splitStrings(t, []string{"abc"}, []string{""}, Options{})
	if !reflect.DeepEqual(got[0], []string{"a", "b", "c"}) {
		t.Errorf("character split = %q", got[0])
	}

	got = splitStrings(t, []string{"日本語"}, []string{""}, Options{})
	if !reflect.DeepEqual(got[0], []string{"日", "本", "語"}) {
		t.Errorf("code-point split = %q", got[0])
	}

	// In byte mode the characters are single bytes.
	got = splitStrings(t, []string{"日本"}, []string{""}, Options{UseBytes: true})
	if len(got[0]) != 6 {
		t.Errorf("byte split yields %d tokens, want 6", len(got[0]))
	}
}

func TestSplitTokenRecycling(t *testing.T) {
	utf8Locale(t)
	got := splitStrings(t, []string{"a,b", "a;b", "c,d"}, []string{",", ";"}, Options{Fixed: true})
	want := [][]string{{"a", "b"}, {"a", "b"}, {"c", "d"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("recycled split = %q, want %q", got, want)
	}
}

func TestSplitMissing(t *testing.T) {
	utf8Locale(t)

	// Missing input element: a single missing token.
	res, err := Split(vector.New(vector.S("a,b"), vector.NA), vector.NewStrings(","), Options{Fixed: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Tokens[1].Len() != 1 || !res.Tokens[1].At(0).IsNA() {
		t.Errorf("missing element split = %v, want single NA", res.Tokens[1].Strings())
	}

	// Missing token: the element passes through unchanged.
	res, err = Split(vector.NewStrings("a,b"), vector.New(vector.NA), Options{Fixed: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Tokens[0].Strings(); !reflect.DeepEqual(got, []string{"a,b"}) {
		t.Errorf("missing token split = %q, want passthrough", got)
	}
}

func TestSplitNamesPreserved(t *testing.T) {
	utf8Locale(t)
	x := vector.NewStrings("a,b", "c")
	x.SetNames([]string{"first", "second"})
	res, err := Split(x, vector.NewStrings(","), Options{Fixed: true})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Names, []string{"first", "second"}) {
		t.Errorf("Names = %v, want preserved", res.Names)
	}
}

func TestSplitInvalidInput(t *testing.T) {
	utf8Locale(t)
	sink := &recordSink{}
	x := vector.New(vector.NewElement("a\xffb", vector.EncUTF8), vector.S("x,y"))
	res, err := Split(x, vector.NewStrings(","), Options{Fixed: true, Sink: sink})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Tokens[0].At(0).IsNA() {
		t.Error("invalid element did not yield NA")
	}
	if got := res.Tokens[1].Strings(); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Errorf("valid element = %q, want split to continue", got)
	}
	if !sink.contains("invalid UTF-8") {
		t.Errorf("warnings = %v, want invalid-UTF-8 warning", sink.msgs)
	}
}
