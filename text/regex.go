package text

import (
	"github.com/dlclark/regexp2"
	"github.com/npillmayer/parsea"
)

// Match is the result of a regular expression match.
type Match struct {
	Groups  []string // Groups[0] is the whole match
	Matched []bool   // whether a group took part in the match
	names   map[string]int
}

// Group returns submatch i and whether it took part in the match.
func (m Match) Group(i int) (string, bool) {
	if i < 0 || i >= len(m.Groups) {
		return "", false
	}
	return m.Groups[i], m.Matched[i]
}

// Named returns the submatch of the named group and whether it took part
// in the match.
func (m Match) Named(name string) (string, bool) {
	i, ok := m.names[name]
	if !ok {
		return "", false
	}
	return m.Group(i)
}

func makeMatch(rm *regexp2.Match) Match {
	groups := rm.Groups()
	m := Match{
		Groups:  make([]string, len(groups)),
		Matched: make([]bool, len(groups)),
		names:   make(map[string]int, len(groups)),
	}
	for i, g := range groups {
		m.Groups[i] = g.String()
		m.Matched[i] = len(g.Captures) > 0
		m.names[g.Name] = i
	}
	return m
}

// anchor compiles expr so that it matches only at the position a search
// starts at. It panics if expr is not a valid regular expression.
func anchor(expr string) *regexp2.Regexp {
	return regexp2.MustCompile(`\G(?:`+expr+`)`, regexp2.Unicode|regexp2.RE2)
}

// RegexGroup matches the regular expression expr at the current position
// and produces all of its submatches. Syntax is the one of package regexp2
// in RE2 compatibility mode. Unnamed groups are numbered before named ones.
//
// RegexGroup panics if expr does not compile.
func RegexGroup(expr string) parsea.Parser[rune, Match] {
	re := anchor(expr)
	return parsea.NewParser(func(ctx *parsea.Context[rune], at int) (parsea.State[Match], bool) {
		src, ok := sourceOf(ctx, at)
		if !ok {
			return parsea.State[Match]{}, false
		}
		rm, err := re.FindRunesMatchStartingAt(src.runes, at)
		if err != nil {
			T().Errorf("regex %s at %d: %v", re.String(), at, err)
		}
		if rm == nil || rm.Index != at {
			ctx.AddError(at)
			return parsea.State[Match]{}, false
		}
		return parsea.Advance(at, rm.Length, makeMatch(rm)), true
	})
}

// Regex matches the regular expression expr at the current position and
// produces the matched text.
//
// Regex panics if expr does not compile.
func Regex(expr string) parsea.Parser[rune, string] {
	return RegexSubmatch(expr, 0, "")
}

// RegexSubmatch matches the regular expression expr at the current position
// and produces submatch i, or def if group i did not take part in the
// match.
func RegexSubmatch(expr string, i int, def string) parsea.Parser[rune, string] {
	return parsea.Map(RegexGroup(expr), func(m Match, _ parsea.Config) string {
		if s, ok := m.Group(i); ok {
			return s
		}
		return def
	})
}

// RegexNamed matches the regular expression expr at the current position
// and produces the submatch of the group called name, or def if that group
// did not take part in the match.
func RegexNamed(expr string, name string, def string) parsea.Parser[rune, string] {
	return parsea.Map(RegexGroup(expr), func(m Match, _ parsea.Config) string {
		if s, ok := m.Named(name); ok {
			return s
		}
		return def
	})
}
