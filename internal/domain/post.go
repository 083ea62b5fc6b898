package domain

// Post is a blog post. It only carries data; rendering lives in the
// publishing package.
type Post struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

// NewPost creates a post with the given title and content.
func NewPost(title, content string) Post { return Post{Title: title, Content: content} }

// Validate checks that the post has a title.
func (p *Post) Validate() error { return validate.Struct(p) }
