package qr

import (
	"strings"
	"testing"

	"phytocert/internal/types"
)

func sampleCert() types.CertificateData {
	return types.CertificateData{
		ID:               "id-1",
		CertNo:           "DXB-APH-02415-3286055",
		VerificationCode: "322-7014",
		FromOrg:          "United Arab Emirates",
		ToOrg:            "Kingdom of Saudi Arabia",
		DateOfIssue:      "11-01-2026",
		OfficerName:      "Hassan Saeed Al-Younes",
	}
}

func TestEncodeDeterministic(t *testing.T) {
	c := sampleCert()
	a := EncodePayload(c)
	b := EncodePayload(c)
	if a != b {
		t.Errorf("encoding is not deterministic: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, Version+"|") {
		t.Errorf("payload missing version tag: %q", a)
	}
}

func TestEncodeFieldSensitivity(t *testing.T) {
	base := EncodePayload(sampleCert())

	inSubset := []func(*types.CertificateData){
		func(c *types.CertificateData) { c.CertNo = "X" },
		func(c *types.CertificateData) { c.VerificationCode = "X" },
		func(c *types.CertificateData) { c.FromOrg = "X" },
		func(c *types.CertificateData) { c.ToOrg = "X" },
		func(c *types.CertificateData) { c.DateOfIssue = "X" },
	}
	for i, mutate := range inSubset {
		c := sampleCert()
		mutate(&c)
		if EncodePayload(c) == base {
			t.Errorf("mutation %d inside the encoded subset did not change the payload", i)
		}
	}

	outOfSubset := []func(*types.CertificateData){
		func(c *types.CertificateData) { c.OfficerName = "Someone Else" },
		func(c *types.CertificateData) { c.PlaceOfIssue = "Elsewhere" },
		func(c *types.CertificateData) { c.CaptchaValue = "99999" },
		func(c *types.CertificateData) { c.CreatedAt = 42 },
	}
	for i, mutate := range outOfSubset {
		c := sampleCert()
		mutate(&c)
		if EncodePayload(c) != base {
			t.Errorf("mutation %d outside the encoded subset changed the payload", i)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		cert types.CertificateData
	}{
		{"plain", sampleCert()},
		{"empty fields", types.CertificateData{}},
		{
			"separator in field",
			types.CertificateData{CertNo: "A|B", VerificationCode: "C|D|E"},
		},
		{
			"backslash in field",
			types.CertificateData{CertNo: `A\B`, FromOrg: `C\|D`},
		},
		{
			"arabic text",
			types.CertificateData{ToOrg: "المملكة العربية السعودية"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := EncodePayload(tt.cert)
			got, err := DecodePayload(payload)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			want := Decoded{
				CertNo:           tt.cert.CertNo,
				VerificationCode: tt.cert.VerificationCode,
				FromOrg:          tt.cert.FromOrg,
				ToOrg:            tt.cert.ToOrg,
				DateOfIssue:      tt.cert.DateOfIssue,
			}
			if got != want {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"empty", ""},
		{"wrong version", "PHY2|a|b|c|d|e"},
		{"too few fields", "PHY1|a|b"},
		{"too many fields", "PHY1|a|b|c|d|e|f"},
		{"trailing escape", `PHY1|a|b|c|d|e\`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodePayload(tt.payload); err == nil {
				t.Errorf("expected error for %q", tt.payload)
			}
		})
	}
}

func TestPayloadCompact(t *testing.T) {
	// The payload must stay small enough for a level-H QR code.
	if n := len(EncodePayload(sampleCert())); n > 256 {
		t.Errorf("payload unexpectedly large: %d bytes", n)
	}
}
