package server

import (
	"net/http"

	"github.com/anilkumarravuri/portfolio-api/schemas"
)

// ---------------------------------------------------------------------
// Profile Handlers
// ---------------------------------------------------------------------

// handleProfile returns the full profile.
func (s *Server) handleProfile(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, schemas.Profile, s.store.Profile().Profile())
}

// handleProfileSummary returns the lightweight profile summary.
func (s *Server) handleProfileSummary(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, schemas.ProfileSummary, s.store.Profile().Summary())
}

// handleProfileSkills returns skills grouped by category.
func (s *Server) handleProfileSkills(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, schemas.SkillGroups, s.store.Profile().Skills())
}

func (s *Server) handleProfileExperience(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, schemas.ExperienceList, s.store.Profile().Experience())
}

func (s *Server) handleProfileEducation(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, schemas.EducationList, s.store.Profile().Education())
}
