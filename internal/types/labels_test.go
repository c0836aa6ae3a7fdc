package types

import (
	"encoding/json"
	"testing"
)

func TestDefaultLabelsComplete(t *testing.T) {
	if !LabelsComplete(DefaultLabels()) {
		t.Error("DefaultLabels leaves at least one slot empty")
	}
}

func TestReconcileLabelsFillsMissing(t *testing.T) {
	// Simulate a record written under an older schema: only a handful
	// of keys present, everything else absent.
	old := []byte(`{"titleEn":"OLD TITLE","certNoLabelEn":"No.:"}`)
	var l CertificateLabels
	if err := json.Unmarshal(old, &l); err != nil {
		t.Fatalf("failed to decode old-schema labels: %v", err)
	}

	got := ReconcileLabels(l)

	if !LabelsComplete(got) {
		t.Error("reconciled labels still have empty slots")
	}
	// Existing values survive
	if got.TitleEn != "OLD TITLE" {
		t.Errorf("reconcile overwrote existing value: %q", got.TitleEn)
	}
	if got.CertNoLabelEn != "No.:" {
		t.Errorf("reconcile overwrote existing value: %q", got.CertNoLabelEn)
	}
	// Missing values come from the defaults
	defaults := DefaultLabels()
	if got.TitleAr != defaults.TitleAr {
		t.Errorf("missing slot not filled from defaults: %q", got.TitleAr)
	}
	if got.PortalSubmitBtnAr != defaults.PortalSubmitBtnAr {
		t.Errorf("missing portal slot not filled from defaults: %q", got.PortalSubmitBtnAr)
	}
}

func TestReconcileLabelsIdempotent(t *testing.T) {
	once := ReconcileLabels(CertificateLabels{})
	twice := ReconcileLabels(once)
	if once != twice {
		t.Error("reconcile is not idempotent")
	}
}

func TestLabelsUnknownKeysIgnored(t *testing.T) {
	// Forward compatibility: a record with keys this build does not
	// know about must still decode.
	data := []byte(`{"titleEn":"T","someFutureKey":"x"}`)
	var l CertificateLabels
	if err := json.Unmarshal(data, &l); err != nil {
		t.Fatalf("unknown key broke decoding: %v", err)
	}
	if l.TitleEn != "T" {
		t.Errorf("known key lost: %q", l.TitleEn)
	}
}
