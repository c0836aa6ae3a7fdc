// Package registry provides typed CRUD over the record store: the
// certificate repository and the branding repository. Callers hold
// their own draft copies while editing; nothing here keeps ambient
// state beyond the store handle, and a save is always an explicit
// whole-record replace.
package registry

import (
	"phytocert/internal/logging"
	"phytocert/internal/store"
	"phytocert/internal/types"
)

// CertificateRepository performs certificate CRUD against a LocalStore.
type CertificateRepository struct {
	store *store.LocalStore
}

// NewCertificateRepository wraps a LocalStore.
func NewCertificateRepository(s *store.LocalStore) *CertificateRepository {
	return &CertificateRepository{store: s}
}

// GetAll returns every stored certificate in storage order.
func (r *CertificateRepository) GetAll() []types.CertificateData {
	return r.store.ReadCertificates()
}

// GetByID returns the certificate with the given id, or nil when no
// record matches. A dangling id is a normal outcome, not an error.
func (r *CertificateRepository) GetByID(id string) *types.CertificateData {
	for _, c := range r.store.ReadCertificates() {
		if c.ID == id {
			cert := c
			return &cert
		}
	}
	logging.Get(logging.CategoryRegistry).Debug("Certificate %s not found", id)
	return nil
}

// Save upserts a certificate by id: an existing record is replaced in
// place, preserving its position in the list; otherwise the record is
// appended. The whole list is then persisted. Saving an unchanged
// record twice yields the same stored state. Uniqueness of
// (certNo, verificationCode) is deliberately not enforced here; it is a
// data-entry convention, and lookup resolves duplicates by list order.
func (r *CertificateRepository) Save(cert types.CertificateData) error {
	timer := logging.StartTimer(logging.CategoryRegistry, "Save")
	defer timer.Stop()

	certs := r.store.ReadCertificates()
	replaced := false
	for i := range certs {
		if certs[i].ID == cert.ID {
			certs[i] = cert
			replaced = true
			break
		}
	}
	if !replaced {
		certs = append(certs, cert)
	}

	if err := r.store.WriteCertificates(certs); err != nil {
		logging.Get(logging.CategoryRegistry).Warn("Save of %s did not persist: %v", cert.ID, err)
		return err
	}
	logging.Get(logging.CategoryRegistry).Info("Saved certificate %s (certNo=%s, replaced=%v)", cert.ID, cert.CertNo, replaced)
	return nil
}
