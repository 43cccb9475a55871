package content

import (
	"strings"
	"unicode"
)

// Kind identifies how a block is presented.
type Kind string

const (
	KindText    Kind = "text"
	KindCode    Kind = "code"
	KindImage   Kind = "image"
	KindTip     Kind = "tip"
	KindWarning Kind = "warning"
)

func (k Kind) Valid() bool {
	switch k {
	case KindText, KindCode, KindImage, KindTip, KindWarning:
		return true
	}
	return false
}

// Block is one unit of chapter content. Language applies to code blocks,
// Alt to images; Content holds the image URL for images.
type Block struct {
	Kind     Kind   `toml:"kind" yaml:"kind"`
	Content  string `toml:"content" yaml:"content"`
	Language string `toml:"language,omitempty" yaml:"language,omitempty"`
	Alt      string `toml:"alt,omitempty" yaml:"alt,omitempty"`
}

type Chapter struct {
	ID     string  `toml:"id" yaml:"id"`
	Title  string  `toml:"title" yaml:"title"`
	Blocks []Block `toml:"blocks" yaml:"blocks"`
}

// ShortTitle drops a leading "N. " ordinal from the title.
func (c Chapter) ShortTitle() string {
	title := strings.TrimSpace(c.Title)
	i := 0
	for i < len(title) && unicode.IsDigit(rune(title[i])) {
		i++
	}
	if i == 0 || !strings.HasPrefix(title[i:], ". ") {
		return title
	}
	return strings.TrimSpace(title[i+2:])
}

// CodeBlocks returns the indexes of code blocks in display order.
func (c Chapter) CodeBlocks() []int {
	var out []int
	for i, b := range c.Blocks {
		if b.Kind == KindCode {
			out = append(out, i)
		}
	}
	return out
}
