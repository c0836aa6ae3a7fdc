package verify

// Status is the outcome of a full public lookup. Not-found and
// CAPTCHA-mismatch are distinct outcomes with distinct user-facing
// messages; they must never be collapsed into a single "invalid" state.
type Status int

const (
	// StatusFound means the record matched and the CAPTCHA gate passed.
	StatusFound Status = iota
	// StatusNotFound means no record matched the number/code pair.
	StatusNotFound
	// StatusCaptchaMismatch means a record matched but the supplied
	// CAPTCHA answer was wrong. The matched record is still attached to
	// the result so the caller can re-render its challenge image.
	StatusCaptchaMismatch
)

// NotFoundError is returned when no stored certificate matches the
// supplied number and verification code.
type NotFoundError struct{}

func (e NotFoundError) Error() string {
	return "no matching certificate was found; check the certificate number and verification code"
}

// CaptchaMismatchError is returned when a certificate matched but the
// CAPTCHA answer did not.
type CaptchaMismatchError struct{}

func (e CaptchaMismatchError) Error() string {
	return "the CAPTCHA answer is incorrect; please try again"
}

// User-facing portal messages, mirroring the two distinct failure
// strings shown by the public lookup page.
const (
	MessageNotFoundAr        = "عذراً، لم يتم العثور على بيانات مطابقة. يرجى التأكد من صحة رقم الشهادة ورمز التحقق."
	MessageCaptchaMismatchAr = "عذراً، كود التحقق غير صحيح. يرجى إعادة المحاولة."
)
