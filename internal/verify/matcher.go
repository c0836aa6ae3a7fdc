// Package verify implements the public lookup flow: matching a
// user-supplied certificate number and verification code against stored
// records, with the CAPTCHA gate applied as a separate, independent
// check after a record has matched.
package verify

import (
	"phytocert/internal/logging"
	"phytocert/internal/registry"
	"phytocert/internal/types"
)

// Matcher runs public lookups against the certificate repository.
type Matcher struct {
	certs *registry.CertificateRepository
}

// NewMatcher wraps a certificate repository.
func NewMatcher(certs *registry.CertificateRepository) *Matcher {
	return &Matcher{certs: certs}
}

// FindByPublicInfo scans the certificate list in storage order and
// returns the first record whose certificate number and verification
// code both match exactly - case-sensitive, no trimming. Returns nil if
// either input is empty or no record matches. Duplicate
// (certNo, verificationCode) pairs are possible since uniqueness is not
// enforced at save time; first-match-in-list-order is the documented
// tie-break. CAPTCHA correctness plays no part here.
func (m *Matcher) FindByPublicInfo(certNo, verifyCode string) *types.CertificateData {
	if certNo == "" || verifyCode == "" {
		return nil
	}
	for _, c := range m.certs.GetAll() {
		if c.CertNo == certNo && c.VerificationCode == verifyCode {
			cert := c
			logging.Get(logging.CategoryVerify).Info("Lookup matched certificate %s", cert.ID)
			return &cert
		}
	}
	logging.Get(logging.CategoryVerify).Info("Lookup found no match for certNo=%q", certNo)
	return nil
}
