// Package types provides type definitions for the data served by the portfolio API.
package types

import (
	"bytes"
	"encoding/json"
)

// Skill is a single skill entry. Category is a free-text grouping key used
// by the skills projection; no uniqueness is enforced on either field.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Experience is one position in the work history.
type Experience struct {
	ID               string   `json:"id"`
	Role             string   `json:"role"`
	Company          string   `json:"company"`
	Duration         string   `json:"duration"`
	Location         string   `json:"location"`
	Technologies     []string `json:"technologies"`
	Responsibilities []string `json:"responsibilities"`
}

// Education is one degree entry.
type Education struct {
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	Year        int    `json:"year"`
}

// Profile is the full profile record. Exactly one exists per process.
type Profile struct {
	Name       string       `json:"name"`
	Title      string       `json:"title"`
	Tagline    string       `json:"tagline"`
	Bio        []string     `json:"bio"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Location   string       `json:"location"`
	Available  bool         `json:"available"`
	Skills     []Skill      `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
}

// ProfileSummary is the lightweight projection served by /api/profile/summary.
// YearsExperience and DataPowerVersions are static seed configuration, not
// derived from the experience entries.
type ProfileSummary struct {
	Name              string `json:"name"`
	Title             string `json:"title"`
	Tagline           string `json:"tagline"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Location          string `json:"location"`
	Available         bool   `json:"available"`
	YearsExperience   int    `json:"years_experience"`
	DataPowerVersions string `json:"datapower_versions"`
}

// SkillGroup is one category with its skill names in original order.
type SkillGroup struct {
	Category string
	Names    []string
}

// SkillGroups is an order-preserving mapping from category to skill names.
// It serializes as a JSON object whose keys appear in first-seen category
// order, which a plain map cannot guarantee.
type SkillGroups []SkillGroup

// GroupSkills builds the grouped projection, preserving first-seen category
// order and the original relative order of names inside each category.
func GroupSkills(skills []Skill) SkillGroups {
	var groups SkillGroups
	index := make(map[string]int)
	for _, s := range skills {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category})
		}
		groups[i].Names = append(groups[i].Names, s.Name)
	}
	return groups
}

// MarshalJSON writes the groups as a single JSON object in slice order.
func (g SkillGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, grp := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(grp.Category)
		if err != nil {
			return nil, err
		}
		names, err := json.Marshal(grp.Names)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(names)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
