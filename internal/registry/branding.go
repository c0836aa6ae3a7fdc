package registry

import (
	"phytocert/internal/logging"
	"phytocert/internal/store"
	"phytocert/internal/types"
)

// BrandingRepository manages the global branding singleton.
type BrandingRepository struct {
	store *store.LocalStore
}

// NewBrandingRepository wraps a LocalStore.
func NewBrandingRepository(s *store.LocalStore) *BrandingRepository {
	return &BrandingRepository{store: s}
}

// Get returns the stored branding record, or the canonical default when
// nothing is stored. The default is returned without being persisted:
// storage stays empty until an explicit Save.
func (r *BrandingRepository) Get() types.GlobalBranding {
	if b, ok := r.store.ReadBranding(); ok {
		return b
	}
	logging.Get(logging.CategoryRegistry).Debug("No branding stored, serving defaults")
	return types.DefaultBranding()
}

// Save replaces the branding singleton.
func (r *BrandingRepository) Save(b types.GlobalBranding) error {
	if err := r.store.WriteBranding(b); err != nil {
		logging.Get(logging.CategoryRegistry).Warn("Branding save did not persist: %v", err)
		return err
	}
	logging.Get(logging.CategoryRegistry).Info("Saved branding (%d partners)", len(b.Partners))
	return nil
}
