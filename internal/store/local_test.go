package store

import (
	"testing"

	"phytocert/internal/types"
)

func TestNewLocalStore(t *testing.T) {
	s, err := NewLocalStore(":memory:")
	if err != nil {
		t.Fatalf("Failed to create local store: %v", err)
	}
	defer s.Close()

	if s.db == nil {
		t.Error("Database connection is nil")
	}

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Failed to get stats: %v", err)
	}
	for _, key := range []string{KeyCertificates, KeyBranding} {
		if _, ok := stats[key]; !ok {
			t.Errorf("Stats missing key: %s", key)
		}
	}
}

func TestReadCertificatesEmpty(t *testing.T) {
	s, err := NewLocalStore(":memory:")
	if err != nil {
		t.Fatalf("Failed to create local store: %v", err)
	}
	defer s.Close()

	certs := s.ReadCertificates()
	if certs == nil {
		t.Fatal("ReadCertificates returned nil for empty store")
	}
	if len(certs) != 0 {
		t.Errorf("Expected empty list, got %d certificates", len(certs))
	}
}

func TestWriteReadCertificates(t *testing.T) {
	s, err := NewLocalStore(":memory:")
	if err != nil {
		t.Fatalf("Failed to create local store: %v", err)
	}
	defer s.Close()

	want := []types.CertificateData{types.NewCertificate(), types.NewCertificate()}
	if err := s.WriteCertificates(want); err != nil {
		t.Fatalf("WriteCertificates failed: %v", err)
	}

	got := s.ReadCertificates()
	if len(got) != 2 {
		t.Fatalf("Expected 2 certificates, got %d", len(got))
	}
	// Storage order preserved
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Errorf("Certificate %d: expected id %s, got %s", i, want[i].ID, got[i].ID)
		}
	}
	// Nested records survive the round trip
	if got[0].Disinfestation != want[0].Disinfestation {
		t.Error("Disinfestation record changed in round trip")
	}
	if len(got[0].Items) != len(want[0].Items) {
		t.Errorf("Item list length changed: %d -> %d", len(want[0].Items), len(got[0].Items))
	}
}

func TestCorruptCertificatesDegradeToEmpty(t *testing.T) {
	s, err := NewLocalStore(":memory:")
	if err != nil {
		t.Fatalf("Failed to create local store: %v", err)
	}
	defer s.Close()

	// Plant unparseable content directly under the certificates key
	if _, err := s.db.Exec("INSERT INTO records (key, value) VALUES (?, ?)",
		KeyCertificates, "not json {{{"); err != nil {
		t.Fatalf("Failed to plant corrupt row: %v", err)
	}

	certs := s.ReadCertificates()
	if len(certs) != 0 {
		t.Errorf("Corrupt content should read as empty, got %d certificates", len(certs))
	}
}

func TestCorruptBrandingDegradesToAbsent(t *testing.T) {
	s, err := NewLocalStore(":memory:")
	if err != nil {
		t.Fatalf("Failed to create local store: %v", err)
	}
	defer s.Close()

	if _, err := s.db.Exec("INSERT INTO records (key, value) VALUES (?, ?)",
		KeyBranding, "]["); err != nil {
		t.Fatalf("Failed to plant corrupt row: %v", err)
	}

	if _, ok := s.ReadBranding(); ok {
		t.Error("Corrupt branding should read as absent")
	}
}

func TestBrandingAbsentThenPresent(t *testing.T) {
	s, err := NewLocalStore(":memory:")
	if err != nil {
		t.Fatalf("Failed to create local store: %v", err)
	}
	defer s.Close()

	if _, ok := s.ReadBranding(); ok {
		t.Error("Fresh store should have no branding")
	}

	want := types.DefaultBranding()
	if err := s.WriteBranding(want); err != nil {
		t.Fatalf("WriteBranding failed: %v", err)
	}

	got, ok := s.ReadBranding()
	if !ok {
		t.Fatal("Branding absent after write")
	}
	if got.PortalEmblem != want.PortalEmblem || len(got.Partners) != len(want.Partners) {
		t.Errorf("Branding changed in round trip: %+v", got)
	}
}

func TestWriteFailureIsNonFatal(t *testing.T) {
	s, err := NewLocalStore(":memory:")
	if err != nil {
		t.Fatalf("Failed to create local store: %v", err)
	}
	s.Close()

	// A write against a closed store must surface an error, not panic.
	if err := s.WriteCertificates([]types.CertificateData{types.NewCertificate()}); err == nil {
		t.Error("Expected an error writing to a closed store")
	}
	if err := s.WriteBranding(types.DefaultBranding()); err == nil {
		t.Error("Expected an error writing branding to a closed store")
	}
}

func TestReadReconcilesOldLabelSchema(t *testing.T) {
	s, err := NewLocalStore(":memory:")
	if err != nil {
		t.Fatalf("Failed to create local store: %v", err)
	}
	defer s.Close()

	// A record persisted under an older label schema: most keys absent.
	old := `[{"id":"old-1","certNo":"X","verificationCode":"Y","labels":{"titleEn":"OLD"}}]`
	if _, err := s.db.Exec("INSERT INTO records (key, value) VALUES (?, ?)", KeyCertificates, old); err != nil {
		t.Fatalf("Failed to plant old-schema row: %v", err)
	}

	certs := s.ReadCertificates()
	if len(certs) != 1 {
		t.Fatalf("Expected 1 certificate, got %d", len(certs))
	}
	if !types.LabelsComplete(certs[0].Labels) {
		t.Error("Loaded labels were not reconciled to the full key set")
	}
	if certs[0].Labels.TitleEn != "OLD" {
		t.Errorf("Reconcile overwrote the stored override: %q", certs[0].Labels.TitleEn)
	}
}

func TestStatsCounts(t *testing.T) {
	s, err := NewLocalStore(":memory:")
	if err != nil {
		t.Fatalf("Failed to create local store: %v", err)
	}
	defer s.Close()

	if err := s.WriteCertificates([]types.CertificateData{types.NewCertificate()}); err != nil {
		t.Fatalf("WriteCertificates failed: %v", err)
	}
	if err := s.WriteBranding(types.DefaultBranding()); err != nil {
		t.Fatalf("WriteBranding failed: %v", err)
	}

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats[KeyCertificates] != 1 {
		t.Errorf("Expected 1 certificate in stats, got %d", stats[KeyCertificates])
	}
	if stats[KeyBranding] != 1 {
		t.Errorf("Expected branding present in stats, got %d", stats[KeyBranding])
	}
}
