package store

import (
	"fmt"

	"github.com/anilkumarravuri/portfolio-api/internal/types"
)

// ProfileStore serves the singleton profile and its projections. The grouped
// skills view is precomputed at startup so iteration order is fixed for the
// life of the process.
type ProfileStore struct {
	profile types.Profile
	summary types.ProfileSummary
	skills  types.SkillGroups
}

func newProfileStore(p types.Profile) *ProfileStore {
	return &ProfileStore{
		profile: p,
		summary: types.ProfileSummary{
			Name:              p.Name,
			Title:             p.Title,
			Tagline:           p.Tagline,
			Email:             p.Email,
			Phone:             p.Phone,
			Location:          p.Location,
			Available:         p.Available,
			YearsExperience:   summaryYearsExperience,
			DataPowerVersions: summaryDataPowerVersions,
		},
		skills: types.GroupSkills(p.Skills),
	}
}

// Profile returns the full profile.
func (ps *ProfileStore) Profile() types.Profile { return ps.profile }

// Summary returns the lightweight summary projection.
func (ps *ProfileStore) Summary() types.ProfileSummary { return ps.summary }

// Skills returns skills grouped by category in first-seen category order.
func (ps *ProfileStore) Skills() types.SkillGroups { return ps.skills }

// Experience returns the work history in declaration order.
func (ps *ProfileStore) Experience() []types.Experience { return ps.profile.Experience }

// Education returns the education entries in declaration order.
func (ps *ProfileStore) Education() []types.Education { return ps.profile.Education }

func (ps *ProfileStore) verify() error {
	if ps.profile.Name == "" || ps.profile.Title == "" || ps.profile.Email == "" {
		return fmt.Errorf("profile is missing required fields")
	}
	seen := make(map[string]bool, len(ps.profile.Experience))
	for _, e := range ps.profile.Experience {
		if e.ID == "" {
			return fmt.Errorf("experience entry %q/%q has no id", e.Role, e.Company)
		}
		if seen[e.ID] {
			return fmt.Errorf("duplicate experience id %q", e.ID)
		}
		seen[e.ID] = true
	}
	return nil
}
