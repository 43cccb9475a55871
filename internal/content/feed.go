package content

import (
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/sahilm/fuzzy"
)

//go:embed chapters.toml
var builtinTOML []byte

var builtinFeed = mustDecodeBuiltin()

type feedFile struct {
	Chapters []Chapter `toml:"chapters" yaml:"chapters"`
}

// Feed is an ordered, read-only list of chapters.
type Feed struct {
	chapters []Chapter
}

// Builtin returns the tutorial chapters shipped with the binary.
func Builtin() *Feed {
	return builtinFeed
}

func mustDecodeBuiltin() *Feed {
	var file feedFile
	if err := toml.Unmarshal(builtinTOML, &file); err != nil {
		panic(fmt.Sprintf("content: decode built-in chapters: %v", err))
	}
	feed, err := NewFeed(file.Chapters)
	if err != nil {
		panic(fmt.Sprintf("content: built-in chapters: %v", err))
	}
	return feed
}

// NewFeed validates chapters and wraps a copy of them.
func NewFeed(chapters []Chapter) (*Feed, error) {
	if err := validate(chapters); err != nil {
		return nil, err
	}
	out := make([]Chapter, len(chapters))
	for i, ch := range chapters {
		ch.Blocks = append([]Block(nil), ch.Blocks...)
		out[i] = ch
	}
	return &Feed{chapters: out}, nil
}

func (f *Feed) Chapters() []Chapter {
	return append([]Chapter(nil), f.chapters...)
}

func (f *Feed) Len() int { return len(f.chapters) }

// Index returns the position of id, or -1.
func (f *Feed) Index(id string) int {
	for i, ch := range f.chapters {
		if ch.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the chapter with id. Unknown ids fall back to the first
// chapter with ok=false.
func (f *Feed) Find(id string) (Chapter, bool) {
	if i := f.Index(id); i >= 0 {
		return f.chapters[i], true
	}
	return f.chapters[0], false
}

// Next returns the chapter after id. ok is false on the last chapter and for
// unknown ids.
func (f *Feed) Next(id string) (Chapter, bool) {
	i := f.Index(id)
	if i < 0 || i+1 >= len(f.chapters) {
		return Chapter{}, false
	}
	return f.chapters[i+1], true
}

// Search fuzzy-matches query against chapter titles, best match first.
// An empty query returns every chapter in feed order.
func (f *Feed) Search(query string) []Chapter {
	if query == "" {
		return f.Chapters()
	}
	matches := fuzzy.FindFrom(query, titleSource(f.chapters))
	out := make([]Chapter, 0, len(matches))
	for _, m := range matches {
		out = append(out, f.chapters[m.Index])
	}
	return out
}

type titleSource []Chapter

func (s titleSource) String(i int) string { return s[i].Title }
func (s titleSource) Len() int            { return len(s) }
