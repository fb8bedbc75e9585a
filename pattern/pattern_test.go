package pattern

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/vexlang/strmatch/internal/textenc"
	"github.com/vexlang/strmatch/vector"
)

func TestCompileDialects(t *testing.T) {
	tests := []struct {
		name    string
		pat     string
		dialect Dialect
		wantErr bool
	}{
		{"fixed anything", "a(b", Fixed, false},
		{"extended simple", "a+b", Extended, false},
		{"extended invalid", "(", Extended, true},
		{"perl backref", `(\w+) \1`, Perl, false},
		{"perl lookahead", `foo(?=bar)`, Perl, false},
		{"perl invalid", `(?<`, Perl, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp, err := Compile(tt.pat, tt.dialect, Flags{Mode: textenc.ModeUTF8})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Compile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var ce *CompileError
				if !errors.As(err, &ce) {
					t.Fatalf("Compile() error type %T, want *CompileError", err)
				}
				if !strings.Contains(ce.Error(), "invalid regular expression") {
					t.Errorf("error %q lacks the standard prefix", ce.Error())
				}
				return
			}
			defer cp.Close()
			if cp.Dialect() != tt.dialect {
				t.Errorf("Dialect() = %v, want %v", cp.Dialect(), tt.dialect)
			}
		})
	}
}

func TestFindFixed(t *testing.T) {
	cp, err := Compile("ab", Fixed, Flags{Mode: textenc.ModeBytes})
	if err != nil {
		t.Fatal(err)
	}
	defer cp.Close()
	sub := cp.NewSubject("xxabxxab")

	m, ok, ferr := cp.Find(sub, 0)
	if ferr != nil || !ok {
		t.Fatalf("Find() = %v, %v, %v", m, ok, ferr)
	}
	if m.Start != 2 || m.End != 4 {
		t.Errorf("first match = [%d,%d), want [2,4)", m.Start, m.End)
	}
	m, ok, _ = cp.Find(sub, m.End)
	if !ok || m.Start != 6 {
		t.Errorf("second match = %+v ok=%v, want start 6", m, ok)
	}
	_, ok, _ = cp.Find(sub, m.End)
	if ok {
		t.Error("third match found, want none")
	}
}

func TestFindExtended(t *testing.T) {
	cp, err := Compile("a+", Extended, Flags{Mode: textenc.ModeASCII})
	if err != nil {
		t.Fatal(err)
	}
	defer cp.Close()
	sub := cp.NewSubject("baaabcaad")

	var spans [][2]int
	off := 0
	for {
		m, ok, ferr := cp.Find(sub, off)
		if ferr != nil {
			t.Fatal(ferr)
		}
		if !ok {
			break
		}
		spans = append(spans, [2]int{m.Start, m.End})
		off = m.End
	}
	want := [][2]int{{1, 4}, {6, 8}}
	if len(spans) != len(want) {
		t.Fatalf("spans = %v, want %v", spans, want)
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Errorf("span %d = %v, want %v", i, spans[i], want[i])
		}
	}
}

func TestFindExtendedAnchorNotBOL(t *testing.T) {
	// ^ must not match again once the search position has advanced.
	cp, err := Compile("^a", Extended, Flags{Mode: textenc.ModeASCII})
	if err != nil {
		t.Fatal(err)
	}
	defer cp.Close()
	sub := cp.NewSubject("aaa")
	m, ok, _ := cp.Find(sub, 0)
	if !ok || m.Start != 0 || m.End != 1 {
		t.Fatalf("first match = %+v ok=%v, want [0,1)", m, ok)
	}
	if _, ok, _ = cp.Find(sub, 1); ok {
		t.Error("anchored pattern matched at offset 1")
	}
}

func TestFindPerlPositionsAreBytes(t *testing.T) {
	cp, err := Compile("é", Perl, Flags{Mode: textenc.ModeUTF8})
	if err != nil {
		t.Fatal(err)
	}
	defer cp.Close()
	sub := cp.NewSubject("café étude")
	m, ok, ferr := cp.Find(sub, 0)
	if ferr != nil || !ok {
		t.Fatalf("Find() = %v, %v, %v", m, ok, ferr)
	}
	if m.Start != 3 || m.End != 5 {
		t.Errorf("first match = [%d,%d), want byte span [3,5)", m.Start, m.End)
	}
	m, ok, _ = cp.Find(sub, m.End)
	if !ok || m.Start != 6 || m.End != 8 {
		t.Errorf("second match = %+v ok=%v, want [6,8)", m, ok)
	}
}

func TestFindPerlByteMode(t *testing.T) {
	// In byte mode positions stay byte offsets even for high bytes.
	cp, err := Compile("\xe9t", Perl, Flags{Mode: textenc.ModeBytes})
	if err != nil {
		t.Fatal(err)
	}
	defer cp.Close()
	sub := cp.NewSubject("caf\xe9t\xe9")
	m, ok, ferr := cp.Find(sub, 0)
	if ferr != nil || !ok {
		t.Fatalf("Find() = %v, %v, %v", m, ok, ferr)
	}
	if m.Start != 3 || m.End != 5 {
		t.Errorf("match = [%d,%d), want [3,5)", m.Start, m.End)
	}
}

func TestFindPerlCaptures(t *testing.T) {
	cp, err := Compile(`(\w+)@(\w+)`, Perl, Flags{Mode: textenc.ModeASCII})
	if err != nil {
		t.Fatal(err)
	}
	defer cp.Close()
	if cp.NumCaptures() != 2 {
		t.Fatalf("NumCaptures() = %d, want 2", cp.NumCaptures())
	}
	sub := cp.NewSubject("mail user@host now")
	m, ok, ferr := cp.FindSubmatch(sub, 0)
	if ferr != nil || !ok {
		t.Fatalf("FindSubmatch() = %v, %v, %v", m, ok, ferr)
	}
	if len(m.Caps) != 2 {
		t.Fatalf("len(Caps) = %d, want 2", len(m.Caps))
	}
	if got := sub.String()[m.Caps[0].Start:m.Caps[0].End]; got != "user" {
		t.Errorf("group 1 = %q, want %q", got, "user")
	}
	if got := sub.String()[m.Caps[1].Start:m.Caps[1].End]; got != "host" {
		t.Errorf("group 2 = %q, want %q", got, "host")
	}
}

func TestFindPerlUnsetGroup(t *testing.T) {
	cp, err := Compile(`(a)|(b)`, Perl, Flags{Mode: textenc.ModeASCII})
	if err != nil {
		t.Fatal(err)
	}
	defer cp.Close()
	sub := cp.NewSubject("b")
	m, ok, _ := cp.FindSubmatch(sub, 0)
	if !ok {
		t.Fatal("no match")
	}
	if m.Caps[0].Set {
		t.Error("group 1 reported set, want unset")
	}
	if !m.Caps[1].Set {
		t.Error("group 2 reported unset, want set")
	}
}

func TestCaptureNames(t *testing.T) {
	cp, err := Compile(`(?<year>\d{4})-(?<month>\d{2})`, Perl, Flags{Mode: textenc.ModeASCII})
	if err != nil {
		t.Fatal(err)
	}
	defer cp.Close()
	names := cp.CaptureNames()
	want := []string{"year", "month"}
	if len(names) != len(want) {
		t.Fatalf("CaptureNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("name %d = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestAllMatchesEmptyRule(t *testing.T) {
	// An empty-matching pattern must terminate with one match per character.
	cp, err := Compile("x*", Perl, Flags{Mode: textenc.ModeASCII})
	if err != nil {
		t.Fatal(err)
	}
	defer cp.Close()
	sub := cp.NewSubject("abc")
	matches, engErr := cp.AllMatches(sub, false)
	if engErr != nil {
		t.Fatal(engErr)
	}
	if len(matches) != 3 {
		t.Fatalf("len(matches) = %d, want 3", len(matches))
	}
	for i, m := range matches {
		if !m.Empty() || m.Start != i {
			t.Errorf("match %d = %+v, want empty at %d", i, m, i)
		}
	}
}

func TestAllMatchesEmptySubject(t *testing.T) {
	cp, err := Compile("a*", Perl, Flags{Mode: textenc.ModeASCII})
	if err != nil {
		t.Fatal(err)
	}
	defer cp.Close()
	matches, engErr := cp.AllMatches(cp.NewSubject(""), false)
	if engErr != nil || len(matches) != 0 {
		t.Errorf("AllMatches(\"\") = %v, %v, want no matches", matches, engErr)
	}
}

func TestJITStackSize(t *testing.T) {
	tests := []struct {
		env      string
		want     int
		wantWarn bool
	}{
		{"", 64 * 1024 * 1024, false},
		{"128", 128 * 1024 * 1024, false},
		{"0.5", 512 * 1024, false},
		{"0", 0, false},
		{"1000", 1000 * 1024 * 1024, false},
		{"1001", 64 * 1024 * 1024, true},
		{"-1", 64 * 1024 * 1024, true},
		{"junk", 64 * 1024 * 1024, true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("env=%q", tt.env), func(t *testing.T) {
			t.Setenv("PCRE_JIT_STACK_MAXSIZE", tt.env)
			warned := false
			got := JITStackSize(func(format string, args ...any) { warned = true })
			if got != tt.want {
				t.Errorf("JITStackSize() = %d, want %d", got, tt.want)
			}
			if warned != tt.wantWarn {
				t.Errorf("warned = %v, want %v", warned, tt.wantWarn)
			}
		})
	}
}

func TestEngineConfig(t *testing.T) {
	utf8, props, jit, stack := EngineConfig()
	if !utf8 || !props {
		t.Errorf("EngineConfig() utf8=%v props=%v, want both true", utf8, props)
	}
	if jit || stack {
		t.Errorf("EngineConfig() jit=%v stack=%v, want both false", jit, stack)
	}
}

func TestNeedBudget(t *testing.T) {
	short := vector.NewStrings("abc", "def")
	long := vector.NewStrings("abc", strings.Repeat("x", 1000))
	yes, no := true, false

	if NeedBudget(nil, short) {
		t.Error("NeedBudget(nil, short) = true, want false")
	}
	if !NeedBudget(nil, long) {
		t.Error("NeedBudget(nil, long) = false, want true")
	}
	if !NeedBudget(&yes, short) {
		t.Error("NeedBudget(&yes, short) = false, want true")
	}
	if NeedBudget(&no, long) {
		t.Error("NeedBudget(&no, long) = true, want false")
	}
}

func TestMatchBudgetBounds(t *testing.T) {
	d := MatchBudget()
	if d < budgetFloor || d > budgetCeil {
		t.Errorf("MatchBudget() = %v, outside [%v, %v]", d, budgetFloor, budgetCeil)
	}
}
