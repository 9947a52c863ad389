// Package store holds the process-wide read-only resource collections and
// the projections served over them. Collections are built once at startup
// and never mutated, so concurrent reads need no coordination.
package store

import (
	"fmt"

	"github.com/anilkumarravuri/portfolio-api/internal/types"
)

// Store aggregates the three read-only resources.
type Store struct {
	profile *ProfileStore
	certs   *CertificationStore
	blog    *BlogStore
}

// New builds the stores from the seed data and verifies the data invariants.
// It fails fast: a process serving broken seed data should not start.
func New() (*Store, error) {
	s := &Store{
		profile: newProfileStore(seedProfile()),
		certs:   newCertificationStore(seedCertifications()),
		blog:    newBlogStore(seedBlogPosts()),
	}
	if err := s.Verify(); err != nil {
		return nil, fmt.Errorf("seed data verification failed: %w", err)
	}
	return s, nil
}

// Profile returns the profile resource.
func (s *Store) Profile() *ProfileStore { return s.profile }

// Certifications returns the certification resource.
func (s *Store) Certifications() *CertificationStore { return s.certs }

// Blog returns the blog resource.
func (s *Store) Blog() *BlogStore { return s.blog }

// Verify checks the data invariants the collections are assumed to hold:
// unique non-empty blog slugs, non-empty bodies, and certification optional
// fields that are absent rather than empty.
func (s *Store) Verify() error {
	if err := s.profile.verify(); err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	if err := s.certs.verify(); err != nil {
		return fmt.Errorf("certifications: %w", err)
	}
	if err := s.blog.verify(); err != nil {
		return fmt.Errorf("blog: %w", err)
	}
	return nil
}

func verifyCertification(c types.Certification) error {
	if c.ID == "" || c.Name == "" || c.Issuer == "" || c.Date == "" {
		return fmt.Errorf("certification %q has empty required fields", c.ID)
	}
	if c.CredentialID != nil && *c.CredentialID == "" {
		return fmt.Errorf("certification %q: credential_id must be absent, not empty", c.ID)
	}
	if c.CredentialURL != nil && *c.CredentialURL == "" {
		return fmt.Errorf("certification %q: credential_url must be absent, not empty", c.ID)
	}
	return nil
}
