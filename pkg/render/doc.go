// Package render defines Doc, the output document produced by portfolio
// commands, and turns it into plain or ANSI-styled text.
package render

import "strings"

// Style is the colour role of a span or block.
type Style int

const (
	StyleText Style = iota
	StyleSecondary
	StyleMuted
	StyleAccent
	StyleGreen
	StyleCyan
	StyleYellow
	StyleLink
)

// Span is a run of text drawn in one style.
type Span struct {
	Text  string
	Style Style
	Bold  bool
	URL   string // target of a StyleLink span
}

// BlockKind identifies what a Block holds.
type BlockKind int

const (
	BlockLine BlockKind = iota
	BlockRule
	BlockPre
	BlockMarkdown
	BlockBlank
)

// Block is one vertical element of a Doc.
type Block struct {
	Kind   BlockKind
	Indent int    // leading spaces for BlockLine
	Spans  []Span // BlockLine
	Text   string // BlockPre and BlockMarkdown
	Style  Style  // BlockRule and BlockPre
}

// Doc is an ordered list of blocks. The zero Doc is empty.
type Doc struct {
	Blocks []Block
}

// IsEmpty reports whether the doc has no blocks.
func (d Doc) IsEmpty() bool {
	return len(d.Blocks) == 0
}

// Append returns a doc with the blocks of other after those of d.
func (d Doc) Append(other Doc) Doc {
	blocks := make([]Block, 0, len(d.Blocks)+len(other.Blocks))
	blocks = append(blocks, d.Blocks...)
	blocks = append(blocks, other.Blocks...)
	return Doc{Blocks: blocks}
}

// Text is a span in the default style.
func Text(s string) Span { return Span{Text: s} }

// Styled is a span in the given style.
func Styled(style Style, s string) Span { return Span{Text: s, Style: style} }

// Bold is a bold span in the given style.
func Bold(style Style, s string) Span { return Span{Text: s, Style: style, Bold: true} }

// Link is a span pointing at url.
func Link(s, url string) Span { return Span{Text: s, Style: StyleLink, URL: url} }

// Builder accumulates blocks into a Doc.
type Builder struct {
	blocks []Block
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Line adds a line made of spans.
func (b *Builder) Line(spans ...Span) *Builder {
	return b.Indented(0, spans...)
}

// Indented adds a line indented by n spaces.
func (b *Builder) Indented(n int, spans ...Span) *Builder {
	b.blocks = append(b.blocks, Block{Kind: BlockLine, Indent: n, Spans: spans})
	return b
}

// Styled adds a single-span line in the given style.
func (b *Builder) Styled(style Style, text string) *Builder {
	return b.Line(Styled(style, text))
}

// Lines adds one styled line per line of text.
func (b *Builder) Lines(style Style, text string) *Builder {
	for _, line := range strings.Split(text, "\n") {
		b.Styled(style, line)
	}
	return b
}

// Rule adds a full-width divider.
func (b *Builder) Rule(style Style) *Builder {
	b.blocks = append(b.blocks, Block{Kind: BlockRule, Style: style})
	return b
}

// Header adds a section title framed by two accent rules.
func (b *Builder) Header(title string) *Builder {
	return b.Rule(StyleAccent).
		Indented(2, Bold(StyleAccent, title)).
		Rule(StyleAccent)
}

// Pre adds pre-formatted text drawn verbatim.
func (b *Builder) Pre(style Style, text string) *Builder {
	b.blocks = append(b.blocks, Block{Kind: BlockPre, Style: style, Text: text})
	return b
}

// Markdown adds text rendered as Markdown by styled painters.
func (b *Builder) Markdown(text string) *Builder {
	b.blocks = append(b.blocks, Block{Kind: BlockMarkdown, Text: text})
	return b
}

// Blank adds an empty line.
func (b *Builder) Blank() *Builder {
	b.blocks = append(b.blocks, Block{Kind: BlockBlank})
	return b
}

// Doc returns the built document.
func (b *Builder) Doc() Doc {
	blocks := make([]Block, len(b.blocks))
	copy(blocks, b.blocks)
	return Doc{Blocks: blocks}
}
