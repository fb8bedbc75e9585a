package textenc

import (
	"os"
	"strings"
	"sync"
)

// LocaleInfo describes the character-encoding properties of the process
// locale that matter for mode selection.
type LocaleInfo struct {
	// MultiByte reports a multibyte character encoding (UTF-8, EUC, GB,
	// Big5, Shift_JIS, ...).
	MultiByte bool
	// UTF8 reports a UTF-8 locale.
	UTF8 bool
	// Latin1 reports an ISO 8859-1 locale.
	Latin1 bool
}

var (
	localeOnce sync.Once
	localeInfo LocaleInfo
)

// Locale returns the process locale properties, probed once from the usual
// environment variables (LC_ALL, then LC_CTYPE, then LANG).
func Locale() LocaleInfo {
	localeOnce.Do(func() {
		localeInfo = parseLocale(localeEnv())
	})
	return localeInfo
}

// SetLocaleForTest overrides the probed locale. Tests only.
func SetLocaleForTest(info LocaleInfo) func() {
	localeOnce.Do(func() {})
	prev := localeInfo
	localeInfo = info
	return func() { localeInfo = prev }
}

func localeEnv() string {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func parseLocale(name string) LocaleInfo {
	name = strings.ToLower(name)
	switch name {
	case "", "c", "posix":
		return LocaleInfo{}
	}
	charset := name
	if i := strings.IndexByte(name, '.'); i >= 0 {
		charset = name[i+1:]
	}
	if i := strings.IndexByte(charset, '@'); i >= 0 {
		charset = charset[:i]
	}
	charset = strings.ReplaceAll(charset, "-", "")
	charset = strings.ReplaceAll(charset, "_", "")
	switch {
	case charset == "utf8":
		return LocaleInfo{MultiByte: true, UTF8: true}
	case charset == "iso88591" || charset == "latin1":
		return LocaleInfo{Latin1: true}
	case strings.HasPrefix(charset, "euc"),
		strings.HasPrefix(charset, "gb"),
		charset == "big5", charset == "big5hkscs",
		charset == "sjis", charset == "shiftjis", charset == "cp932":
		return LocaleInfo{MultiByte: true}
	default:
		// Locales without an explicit charset suffix default to UTF-8 on
		// every platform this package targets.
		if !strings.Contains(name, ".") {
			return LocaleInfo{MultiByte: true, UTF8: true}
		}
		return LocaleInfo{}
	}
}
