// Package publishing renders blog posts into wire formats. Posts only carry
// data; every output format lives here so adding one never touches Post.
package publishing

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/ahrav/go-solid/internal/domain"
)

// Format names an output encoding for a post.
type Format string

const (
	// FormatJSON renders a post as a two-element JSON array [title, content].
	FormatJSON Format = "json"

	// FormatXML renders a post as a <post> element.
	FormatXML Format = "xml"
)

// ErrUnknownFormat indicates that no renderer exists for the requested format.
var ErrUnknownFormat = errors.New("unknown post format")

// PostsConverter renders a single post.
type PostsConverter struct {
	post domain.Post
}

// NewPostsConverter creates a converter for post.
func NewPostsConverter(post domain.Post) *PostsConverter {
	return &PostsConverter{post: post}
}

// ToJSON encodes the post as ["title","content"].
func (c *PostsConverter) ToJSON() (string, error) {
	b, err := json.Marshal([]string{c.post.Title, c.post.Content})
	if err != nil {
		return "", fmt.Errorf("marshal post json: %w", err)
	}
	return string(b), nil
}

type xmlPost struct {
	XMLName xml.Name `xml:"post"`
	Title   string   `xml:"title"`
	Content string   `xml:"content"`
}

// ToXML encodes the post as <post><title/><content/></post> with text escaped.
func (c *PostsConverter) ToXML() (string, error) {
	b, err := xml.Marshal(xmlPost{Title: c.post.Title, Content: c.post.Content})
	if err != nil {
		return "", fmt.Errorf("marshal post xml: %w", err)
	}
	return string(b), nil
}

// Convert renders the post in the given format.
func (c *PostsConverter) Convert(f Format) (string, error) {
	switch f {
	case FormatJSON:
		return c.ToJSON()
	case FormatXML:
		return c.ToXML()
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
