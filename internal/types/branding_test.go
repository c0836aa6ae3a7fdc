package types

import (
	"encoding/json"
	"testing"
)

func TestDefaultBrandingPopulated(t *testing.T) {
	b := DefaultBranding()

	if b.PortalEmblem == "" || b.PortalRatingBadge == "" {
		t.Error("default branding has empty emblem or badge")
	}
	if b.FooterLogo1 == "" || b.FooterLogo2 == "" || b.FooterLogo3 == "" {
		t.Error("default branding has an empty footer logo")
	}
	if len(b.Partners) != 3 {
		t.Fatalf("expected 3 default partners, got %d", len(b.Partners))
	}
	for i, p := range b.Partners {
		if p.ID == "" || p.Logo == "" || p.Label == "" {
			t.Errorf("partner %d incomplete: %+v", i, p)
		}
	}
}

func TestBrandingDecodeCanonicalShape(t *testing.T) {
	data := []byte(`{
		"portalEmblem": "e.png",
		"portalRatingBadge": "r.png",
		"partners": [{"id": "p1", "logo": "l1.png", "label": "One"}],
		"footerLogo1": "f1.png",
		"footerLogo2": "f2.png",
		"footerLogo3": "f3.png"
	}`)
	var b GlobalBranding
	if err := json.Unmarshal(data, &b); err != nil {
		t.Fatalf("failed to decode canonical branding: %v", err)
	}
	if len(b.Partners) != 1 || b.Partners[0].ID != "p1" {
		t.Errorf("canonical partner list not preserved: %+v", b.Partners)
	}
	if b.PortalEmblem != "e.png" || b.FooterLogo3 != "f3.png" {
		t.Errorf("scalar fields lost: %+v", b)
	}
}

func TestBrandingDecodeLegacyShape(t *testing.T) {
	// The fixed-slot shape predates the partner list; it must map into
	// list form with the historical labels.
	data := []byte(`{
		"portalEmblem": "e.png",
		"portalRatingBadge": "r.png",
		"partnerLogo1": "adp.png",
		"partnerLogo2": "skgep.png",
		"partnerLogo3": "esaad.png",
		"footerLogo1": "f1.png",
		"footerLogo2": "f2.png",
		"footerLogo3": "f3.png"
	}`)
	var b GlobalBranding
	if err := json.Unmarshal(data, &b); err != nil {
		t.Fatalf("failed to decode legacy branding: %v", err)
	}
	if len(b.Partners) != 3 {
		t.Fatalf("expected 3 migrated partners, got %d", len(b.Partners))
	}
	wantLabels := []string{"Abu Dhabi Police", "SKGEP", "Esaad"}
	wantLogos := []string{"adp.png", "skgep.png", "esaad.png"}
	for i, p := range b.Partners {
		if p.Label != wantLabels[i] {
			t.Errorf("partner %d label: expected %q, got %q", i, wantLabels[i], p.Label)
		}
		if p.Logo != wantLogos[i] {
			t.Errorf("partner %d logo: expected %q, got %q", i, wantLogos[i], p.Logo)
		}
		if p.ID == "" {
			t.Errorf("partner %d has no generated id", i)
		}
	}
}

func TestBrandingDecodeLegacyPartialSlots(t *testing.T) {
	// Empty legacy slots are skipped, not materialized as blank partners.
	data := []byte(`{"partnerLogo2": "skgep.png"}`)
	var b GlobalBranding
	if err := json.Unmarshal(data, &b); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if len(b.Partners) != 1 || b.Partners[0].Label != "SKGEP" {
		t.Errorf("expected single SKGEP partner, got %+v", b.Partners)
	}
}

func TestBrandingCloneIndependence(t *testing.T) {
	a := DefaultBranding()
	b := a.Clone()
	b.Partners[0].Label = "changed"
	if a.Partners[0].Label == "changed" {
		t.Error("clone shares partner slice with original")
	}
}

func TestBrandingRoundTrip(t *testing.T) {
	orig := DefaultBranding()
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back GlobalBranding
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back.Partners) != len(orig.Partners) {
		t.Fatalf("partner count changed in round trip: %d -> %d", len(orig.Partners), len(back.Partners))
	}
	for i := range orig.Partners {
		if back.Partners[i] != orig.Partners[i] {
			t.Errorf("partner %d changed in round trip", i)
		}
	}
}
