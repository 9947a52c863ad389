package server

import (
	"net/http"

	"github.com/anilkumarravuri/portfolio-api/schemas"
)

// handleListCertifications returns the full certification collection in
// declaration order. Every field is included; this resource has no partial
// list projection.
func (s *Server) handleListCertifications(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, schemas.CertificationList, s.store.Certifications().List())
}
