package models

import (
	"encoding/json"
	"fmt"
)

// BlockType defines the semantic variant of a content block.
// The value determines which concrete [BlockContent] shape the block carries
// and which editor form / renderer section consumes it.
type BlockType string

const (
	// BlockHeading is a page or section heading with an optional level.
	BlockHeading BlockType = "heading"

	// BlockText is a free-form paragraph of text.
	BlockText BlockType = "text"

	// BlockImage is a single image referenced by URL.
	BlockImage BlockType = "image"

	// BlockQuote is a pull quote with an author attribution.
	BlockQuote BlockType = "quote"

	// BlockCTA is a call-to-action section with two buttons.
	BlockCTA BlockType = "cta"

	// BlockValue is a list of studio values or offered services,
	// each with an icon, a title, and an optional feature list.
	BlockValue BlockType = "value"

	// BlockProjects is a curated list of project cards.
	BlockProjects BlockType = "projects"
)

// BlockContent is the closed union of per-variant content payloads.
// Exactly one concrete type exists per [BlockType]; payloads of an
// unrecognized type are preserved as [UnknownContent] rather than rejected,
// so that an outdated editor or renderer degrades to a placeholder instead
// of failing.
type BlockContent interface {
	blockContent()
}

// HeadingContent is the payload of a [BlockHeading] block.
type HeadingContent struct {
	// Text is the heading text.
	Text string `json:"text"`

	// Level is the heading level (1-6). Zero means the renderer's default.
	Level int `json:"level,omitempty"`
}

// TextContent is the payload of a [BlockText] block.
type TextContent struct {
	Text string `json:"text"`
}

// ImageContent is the payload of a [BlockImage] block.
type ImageContent struct {
	URL string `json:"url"`
}

// QuoteContent is the payload of a [BlockQuote] block.
type QuoteContent struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// CTAButton is one button of a call-to-action section.
type CTAButton struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

// CTAContent is the payload of a [BlockCTA] block.
type CTAContent struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	PrimaryButton   CTAButton `json:"primaryButton"`
	SecondaryButton CTAButton `json:"secondaryButton"`
}

// ValueItem is one entry of a [ValueContent] list.
type ValueItem struct {
	Icon        string   `json:"icon"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features,omitempty"`
}

// ValueContent is the payload of a [BlockValue] block.
// The Values slice keeps its array order when rendered.
type ValueContent struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Values      []ValueItem `json:"values"`
}

// ProjectCard is one entry of a [ProjectsContent] list.
type ProjectCard struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// ProjectsContent is the payload of a [BlockProjects] block.
// The Projects slice keeps its array order when rendered.
type ProjectsContent struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Projects    []ProjectCard `json:"projects"`
}

// UnknownContent preserves the raw payload of a block whose type is not part
// of the known variant set. Editors show a "not implemented" placeholder for
// it and renderers skip it; the payload survives a save round-trip unchanged.
type UnknownContent struct {
	Raw json.RawMessage
}

func (HeadingContent) blockContent()  {}
func (TextContent) blockContent()     {}
func (ImageContent) blockContent()    {}
func (QuoteContent) blockContent()    {}
func (CTAContent) blockContent()      {}
func (ValueContent) blockContent()    {}
func (ProjectsContent) blockContent() {}
func (UnknownContent) blockContent()  {}

// MarshalJSON writes the preserved raw payload as-is.
func (u UnknownContent) MarshalJSON() ([]byte, error) {
	if len(u.Raw) == 0 {
		return []byte("{}"), nil
	}
	return u.Raw, nil
}

// UnmarshalJSON stores the payload without interpreting it.
func (u *UnknownContent) UnmarshalJSON(data []byte) error {
	u.Raw = append(u.Raw[:0], data...)
	return nil
}

// ContentBlock is one independently editable unit of page content.
// A page document holds an ordered array of these.
type ContentBlock struct {
	// ID is the stable identifier of the block, unique within one page's
	// array (e.g. "hero-title"). Renderers address blocks by ID.
	ID string `json:"id"`

	// Type selects the content variant.
	Type BlockType `json:"type"`

	// Content is the variant-specific payload. Its concrete type is
	// selected by Type when decoding.
	Content BlockContent `json:"content"`

	// Visible controls public rendering. Hidden blocks stay in storage
	// and remain editable.
	Visible bool `json:"visible"`

	// Editable is an advisory flag shown in the admin UI. It is not
	// enforced anywhere: locked blocks still accept content edits.
	Editable bool `json:"editable"`

	// Order is the sort key for display order within a page. Values are
	// not required to be unique; ties keep their array position.
	Order int `json:"order"`
}

// contentBlockJSON mirrors ContentBlock with a raw content payload,
// used as the decoding intermediate.
type contentBlockJSON struct {
	ID       string          `json:"id"`
	Type     BlockType       `json:"type"`
	Content  json.RawMessage `json:"content"`
	Visible  bool            `json:"visible"`
	Editable bool            `json:"editable"`
	Order    int             `json:"order"`
}

// UnmarshalJSON decodes the block and selects the concrete content type by
// the "type" field. Unrecognized types are kept as [UnknownContent]; a
// malformed payload for a known type is a decode error.
func (b *ContentBlock) UnmarshalJSON(data []byte) error {
	var raw contentBlockJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("error decoding content block: %w", err)
	}

	b.ID = raw.ID
	b.Type = raw.Type
	b.Visible = raw.Visible
	b.Editable = raw.Editable
	b.Order = raw.Order

	content, err := decodeBlockContent(raw.Type, raw.Content)
	if err != nil {
		return fmt.Errorf("error decoding %q content of block %q: %w", raw.Type, raw.ID, err)
	}
	b.Content = content

	return nil
}

// DecodeBlockContent decodes a raw content payload into the concrete content
// type declared by blockType. Unrecognized types decode into
// [UnknownContent]; a malformed payload for a known type is a decode error.
func DecodeBlockContent(blockType BlockType, data json.RawMessage) (BlockContent, error) {
	return decodeBlockContent(blockType, data)
}

func decodeBlockContent(blockType BlockType, data json.RawMessage) (BlockContent, error) {
	if len(data) == 0 {
		data = json.RawMessage("{}")
	}

	switch blockType {
	case BlockHeading:
		var c HeadingContent
		return c, json.Unmarshal(data, &c)
	case BlockText:
		var c TextContent
		return c, json.Unmarshal(data, &c)
	case BlockImage:
		var c ImageContent
		return c, json.Unmarshal(data, &c)
	case BlockQuote:
		var c QuoteContent
		return c, json.Unmarshal(data, &c)
	case BlockCTA:
		var c CTAContent
		return c, json.Unmarshal(data, &c)
	case BlockValue:
		var c ValueContent
		return c, json.Unmarshal(data, &c)
	case BlockProjects:
		var c ProjectsContent
		return c, json.Unmarshal(data, &c)
	default:
		var c UnknownContent
		return c, json.Unmarshal(data, &c)
	}
}

// Clone returns a deep copy of the block via a JSON round-trip.
// Used when duplicating blocks so that list payloads (values, project cards)
// do not share backing arrays with the original.
func (b ContentBlock) Clone() (ContentBlock, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return ContentBlock{}, fmt.Errorf("error cloning content block %q: %w", b.ID, err)
	}

	var clone ContentBlock
	if err := json.Unmarshal(data, &clone); err != nil {
		return ContentBlock{}, fmt.Errorf("error cloning content block %q: %w", b.ID, err)
	}

	return clone, nil
}
