package types

// Certification is one professional certification. CredentialID and
// CredentialURL are nil when not issued; they are never the empty string.
type Certification struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Issuer        string  `json:"issuer"`
	Date          string  `json:"date"`
	CredentialID  *string `json:"credential_id"`
	CredentialURL *string `json:"credential_url"`
}
