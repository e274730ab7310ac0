package text

import (
	"sync"

	"github.com/npillmayer/parsea"
	"github.com/rivo/uniseg"
)

// Source is a string, indexed by runes. It implements parsea.Source[rune].
// A Source is a read-only data structure and may be shared between parse
// runs.
//
// Grapheme cluster boundaries are found on first demand. This is an
// operation with runtime complexity O(N).
type Source struct {
	content string
	runes   []rune
	offsets []int // byte offset of each rune, plus len(content)
	once    sync.Once
	breaks  []int // length in runes of the cluster starting at a rune; 0 inside a cluster
}

var _ parsea.Source[rune] = (*Source)(nil)

// NewSource creates a source from a Go string. Invalid UTF-8 bytes are
// presented as utf8.RuneError, one per byte.
func NewSource(s string) *Source {
	src := &Source{
		content: s,
		runes:   make([]rune, 0, len(s)),
		offsets: make([]int, 0, len(s)+1),
	}
	for off, r := range s {
		src.runes = append(src.runes, r)
		src.offsets = append(src.offsets, off)
	}
	src.offsets = append(src.offsets, len(s))
	return src
}

// Len returns the number of runes of the source.
func (src *Source) Len() int {
	return len(src.runes)
}

// At returns the rune at rune index i.
func (src *Source) At(i int) rune {
	return src.runes[i]
}

// String returns the underlying Go string.
func (src *Source) String() string {
	return src.content
}

// Slice returns the substring between rune indexes from and to.
func (src *Source) Slice(from, to int) string {
	return src.content[src.offsets[from]:src.offsets[to]]
}

// rest returns the substring starting at rune index at.
func (src *Source) rest(at int) string {
	return src.content[src.offsets[at]:]
}

// cluster returns the length in runes of the grapheme cluster starting at
// rune index at, or 0 if at is not the start of a cluster.
func (src *Source) cluster(at int) int {
	src.once.Do(src.findBreaks)
	if at < 0 || at >= len(src.breaks) {
		return 0
	}
	return src.breaks[at]
}

func (src *Source) findBreaks() {
	src.breaks = make([]int, len(src.runes))
	graphemes := uniseg.NewGraphemes(src.content)
	at := 0
	for graphemes.Next() && at < len(src.breaks) {
		n := len(graphemes.Runes())
		src.breaks[at] = n
		at += n
	}
	T().Debugf("text source: found grapheme breaks in %d runes", len(src.runes))
}
