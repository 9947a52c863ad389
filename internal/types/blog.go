package types

// BlogPost is the full article record. Slug is the only stable external
// identifier; Date is an ISO-like string and is not parsed as a real date.
type BlogPost struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Category string   `json:"category,omitempty"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Date     string   `json:"date"`
	Tags     []string `json:"tags"`
	ReadTime int      `json:"read_time"`
}

// BlogPostSummary is the list-view variant of BlogPost. It carries the same
// wire shape but its Content is always empty: Summary never copies the body,
// so a list response cannot accidentally include it.
type BlogPostSummary struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Category string   `json:"category,omitempty"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Date     string   `json:"date"`
	Tags     []string `json:"tags"`
	ReadTime int      `json:"read_time"`
}

// Summary returns the list-view projection of the post.
func (p BlogPost) Summary() BlogPostSummary {
	return BlogPostSummary{
		Slug:     p.Slug,
		Title:    p.Title,
		Category: p.Category,
		Excerpt:  p.Excerpt,
		Date:     p.Date,
		Tags:     p.Tags,
		ReadTime: p.ReadTime,
	}
}
