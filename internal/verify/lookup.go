package verify

import (
	"phytocert/internal/logging"
	"phytocert/internal/types"
)

// Result carries the outcome of a full lookup. Certificate is non-nil
// for StatusFound and StatusCaptchaMismatch: a record that matched on
// number and code was found either way.
type Result struct {
	Status      Status
	Certificate *types.CertificateData
}

// Err returns the typed error for a failed lookup, or nil for
// StatusFound.
func (r Result) Err() error {
	switch r.Status {
	case StatusNotFound:
		return NotFoundError{}
	case StatusCaptchaMismatch:
		return CaptchaMismatchError{}
	default:
		return nil
	}
}

// Lookup runs the complete public verification flow: match first, then
// gate on CAPTCHA. A record with no stored CAPTCHA answer skips the
// gate entirely. A matched record with a wrong answer still reports
// "record found" via StatusCaptchaMismatch - the record-matching and
// CAPTCHA outcomes are observable independently.
func (m *Matcher) Lookup(certNo, verifyCode, captchaAnswer string) Result {
	cert := m.FindByPublicInfo(certNo, verifyCode)
	if cert == nil {
		return Result{Status: StatusNotFound}
	}
	if cert.CaptchaValue != "" && captchaAnswer != cert.CaptchaValue {
		logging.Get(logging.CategoryVerify).Info("CAPTCHA mismatch for certificate %s", cert.ID)
		return Result{Status: StatusCaptchaMismatch, Certificate: cert}
	}
	return Result{Status: StatusFound, Certificate: cert}
}
