package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anilkumarravuri/portfolio-api/internal/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := New()
	require.NoError(t, err)
	return st
}

func TestNew_SeedDataVerifies(t *testing.T) {
	_, err := New()
	assert.NoError(t, err)
}

func TestBlogStore_GetKnownSlugs(t *testing.T) {
	st := newTestStore(t)

	for _, sum := range st.Blog().List() {
		post, err := st.Blog().Get(sum.Slug)
		require.NoError(t, err, "slug %q", sum.Slug)
		assert.Equal(t, sum.Slug, post.Slug)
		assert.NotEmpty(t, post.Content, "slug %q", sum.Slug)
	}
}

func TestBlogStore_GetUnknownSlug(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Blog().Get("does-not-exist")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestBlogStore_GetIsCaseSensitive(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Blog().Get("Oauth-Security-Pitfalls")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestBlogStore_ListMatchesCollection(t *testing.T) {
	st := newTestStore(t)

	posts := seedBlogPosts()
	list := st.Blog().List()

	require.Len(t, list, len(posts))
	for i, sum := range list {
		assert.Equal(t, posts[i].Slug, sum.Slug, "order must match declaration order")
		assert.Empty(t, sum.Content)
	}
}

func TestProfileStore_SkillsGrouping(t *testing.T) {
	st := newTestStore(t)

	profile := st.Profile().Profile()
	groups := st.Profile().Skills()

	// Flattened back into (name, category) pairs, the grouping is a
	// permutation of the original skill collection.
	var flattened []types.Skill
	for _, g := range groups {
		for _, name := range g.Names {
			flattened = append(flattened, types.Skill{Name: name, Category: g.Category})
		}
	}
	assert.ElementsMatch(t, profile.Skills, flattened)

	// Category set equals the distinct categories present.
	want := make(map[string]bool)
	for _, s := range profile.Skills {
		want[s.Category] = true
	}
	got := make(map[string]bool)
	for _, g := range groups {
		got[g.Category] = true
	}
	assert.Equal(t, want, got)
}

func TestProfileStore_SkillsRelativeOrder(t *testing.T) {
	st := newTestStore(t)

	profile := st.Profile().Profile()
	groups := st.Profile().Skills()

	var securityNames []string
	for _, s := range profile.Skills {
		if s.Category == "Security & Cryptography" {
			securityNames = append(securityNames, s.Name)
		}
	}
	require.NotEmpty(t, securityNames)

	var group *types.SkillGroup
	for i := range groups {
		if groups[i].Category == "Security & Cryptography" {
			group = &groups[i]
			break
		}
	}
	require.NotNil(t, group)
	assert.Equal(t, securityNames, group.Names)
}

func TestProfileStore_ProfileIsIdempotent(t *testing.T) {
	st := newTestStore(t)

	first, err := json.Marshal(st.Profile().Profile())
	require.NoError(t, err)

	// Exercise the other reads in between; nothing may mutate.
	_ = st.Profile().Summary()
	_ = st.Profile().Skills()
	_, _ = st.Blog().Get("datapower-oauth2-guide")
	_ = st.Certifications().List()

	second, err := json.Marshal(st.Profile().Profile())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestProfileStore_Summary(t *testing.T) {
	st := newTestStore(t)

	sum := st.Profile().Summary()
	profile := st.Profile().Profile()

	assert.Equal(t, profile.Name, sum.Name)
	assert.Equal(t, profile.Title, sum.Title)
	assert.Equal(t, profile.Email, sum.Email)
	assert.Equal(t, profile.Available, sum.Available)
	assert.Equal(t, 7, sum.YearsExperience)
	assert.Equal(t, "v6 – v10", sum.DataPowerVersions)
}

func TestCertificationStore_List(t *testing.T) {
	st := newTestStore(t)

	certs := st.Certifications().List()
	require.Len(t, certs, 3)
	assert.Equal(t, "cert1", certs[0].ID)
	assert.Equal(t, "cert3", certs[2].ID)

	for _, c := range certs {
		// Optional fields default to absent, never empty.
		if c.CredentialID != nil {
			assert.NotEmpty(t, *c.CredentialID)
		}
		if c.CredentialURL != nil {
			assert.NotEmpty(t, *c.CredentialURL)
		}
	}
}

func TestVerify_RejectsDuplicateSlugs(t *testing.T) {
	posts := seedBlogPosts()
	posts = append(posts, posts[0])

	s := &Store{
		profile: newProfileStore(seedProfile()),
		certs:   newCertificationStore(seedCertifications()),
		blog:    newBlogStore(posts),
	}
	err := s.Verify()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate slug")
}

func TestVerify_RejectsEmptyCredentialFields(t *testing.T) {
	empty := ""
	certs := seedCertifications()
	certs[0].CredentialID = &empty

	s := &Store{
		profile: newProfileStore(seedProfile()),
		certs:   newCertificationStore(certs),
		blog:    newBlogStore(seedBlogPosts()),
	}
	err := s.Verify()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credential_id")
}
