package store

import "github.com/anilkumarravuri/portfolio-api/internal/types"

// CertificationStore serves the certification collection. There is no
// partial-projection variant for this resource; List always returns every
// field of every entry.
type CertificationStore struct {
	certs []types.Certification
}

func newCertificationStore(certs []types.Certification) *CertificationStore {
	return &CertificationStore{certs: certs}
}

// List returns all certifications in declaration order.
func (cs *CertificationStore) List() []types.Certification { return cs.certs }

func (cs *CertificationStore) verify() error {
	for _, c := range cs.certs {
		if err := verifyCertification(c); err != nil {
			return err
		}
	}
	return nil
}
