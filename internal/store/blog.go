package store

import (
	"errors"
	"fmt"

	"github.com/anilkumarravuri/portfolio-api/internal/types"
)

// ErrPostNotFound indicates the requested slug does not exist.
var ErrPostNotFound = errors.New("post not found")

// BlogStore serves the blog collection. List views are precomputed summaries
// with the article body stripped; the full body is only reachable through
// Get by slug.
type BlogStore struct {
	posts     []types.BlogPost
	summaries []types.BlogPostSummary
}

func newBlogStore(posts []types.BlogPost) *BlogStore {
	summaries := make([]types.BlogPostSummary, len(posts))
	for i, p := range posts {
		summaries[i] = p.Summary()
	}
	return &BlogStore{posts: posts, summaries: summaries}
}

// List returns every post as a summary, in declaration order.
func (bs *BlogStore) List() []types.BlogPostSummary { return bs.summaries }

// Get returns the full post for slug. The match is exact and case-sensitive;
// unknown slugs yield ErrPostNotFound.
func (bs *BlogStore) Get(slug string) (types.BlogPost, error) {
	for _, p := range bs.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return types.BlogPost{}, ErrPostNotFound
}

func (bs *BlogStore) verify() error {
	seen := make(map[string]bool, len(bs.posts))
	for _, p := range bs.posts {
		if p.Slug == "" {
			return fmt.Errorf("post %q has no slug", p.Title)
		}
		if seen[p.Slug] {
			return fmt.Errorf("duplicate slug %q", p.Slug)
		}
		seen[p.Slug] = true
		if p.Content == "" {
			return fmt.Errorf("post %q has empty content", p.Slug)
		}
		if p.Excerpt == "" {
			return fmt.Errorf("post %q has empty excerpt", p.Slug)
		}
	}
	return nil
}
