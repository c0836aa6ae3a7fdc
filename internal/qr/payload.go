// Package qr encodes the scannable payload embedded in a certificate's
// QR code. The payload is a compact, versioned, pipe-delimited string;
// scanners resolve it as plain text and re-enter the verification flow
// with its fields. The decode side is provided so the format stays a
// documented contract rather than a one-way concatenation.
package qr

import (
	"fmt"
	"strings"

	"phytocert/internal/types"
)

// Version is the payload format tag. It is the first field of every
// payload; any change to the field set or order requires a new tag.
const Version = "PHY1"

const separator = "|"

// Payload field order, after the version tag:
//
//	certNo | verificationCode | fromOrg | toOrg | dateOfIssue
//
// Field values have "\" and "|" escaped with a leading backslash.

// EncodePayload deterministically serializes the public subset of a
// certificate. Identical input always yields an identical string;
// fields outside the subset do not influence the output.
func EncodePayload(cert types.CertificateData) string {
	fields := []string{
		Version,
		escape(cert.CertNo),
		escape(cert.VerificationCode),
		escape(cert.FromOrg),
		escape(cert.ToOrg),
		escape(cert.DateOfIssue),
	}
	return strings.Join(fields, separator)
}

// Decoded is the field subset recovered from a payload.
type Decoded struct {
	CertNo           string
	VerificationCode string
	FromOrg          string
	ToOrg            string
	DateOfIssue      string
}

// DecodePayload parses a payload produced by EncodePayload. It rejects
// unknown version tags and malformed field counts.
func DecodePayload(payload string) (Decoded, error) {
	fields, err := split(payload)
	if err != nil {
		return Decoded{}, err
	}
	if len(fields) != 6 {
		return Decoded{}, fmt.Errorf("malformed payload: expected 6 fields, got %d", len(fields))
	}
	if fields[0] != Version {
		return Decoded{}, fmt.Errorf("unsupported payload version %q", fields[0])
	}
	return Decoded{
		CertNo:           fields[1],
		VerificationCode: fields[2],
		FromOrg:          fields[3],
		ToOrg:            fields[4],
		DateOfIssue:      fields[5],
	}, nil
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, separator, `\`+separator)
}

// split separates on unescaped pipes and unescapes each field.
func split(payload string) ([]string, error) {
	var fields []string
	var cur strings.Builder
	escaped := false
	for _, r := range payload {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '|':
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	if escaped {
		return nil, fmt.Errorf("malformed payload: trailing escape")
	}
	fields = append(fields, cur.String())
	return fields, nil
}
