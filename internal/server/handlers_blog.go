package server

import (
	"errors"
	"net/http"

	"github.com/anilkumarravuri/portfolio-api/internal/store"
	"github.com/anilkumarravuri/portfolio-api/schemas"
)

// ---------------------------------------------------------------------
// Blog Handlers
// ---------------------------------------------------------------------

// handleListPosts returns every post with the article body stripped.
func (s *Server) handleListPosts(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, schemas.BlogList, s.store.Blog().List())
}

// handleGetPost returns the full post for a slug, 404 for unknown slugs.
// The not-found detail stays generic so valid slugs are not enumerable.
func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	post, err := s.store.Blog().Get(slug)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			s.detailResponse(w, http.StatusNotFound, "Post not found")
			return
		}
		s.internalResponse(w)
		return
	}

	s.jsonResponse(w, http.StatusOK, schemas.BlogPost, post)
}
