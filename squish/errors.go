package squish

import "errors"

// ErrorCode is a codec-level error classification, mirroring the teacher's
// astcenc_error-style typed error code (astc/errors.go).
type ErrorCode uint32

const (
	// Success indicates no error.
	Success ErrorCode = 0

	// ErrInvalidFormat means the (cb, ab, sb, ib) combination is not in
	// the enumerated support table (spec.md §7, InvalidFormatParameters).
	ErrInvalidFormat ErrorCode = 1

	// ErrBadChannelMetric means the supplied channel-weight vector is
	// degenerate (all zero, or negative).
	ErrBadChannelMetric ErrorCode = 2

	// ErrBadMask means the supplied pixel validity mask has bits set
	// outside the 16-pixel block range.
	ErrBadMask ErrorCode = 3

	// ErrShortBuffer means the destination/source byte slice is smaller
	// than the format's block size.
	ErrShortBuffer ErrorCode = 4

	// ErrBadBlock means a decode was attempted on bytes that cannot be a
	// valid block of the given format (e.g. an out-of-range index field).
	ErrBadBlock ErrorCode = 5
)

// ErrorString returns a short machine-stable name for code, or "" if code
// is not recognized (mirrors astc.ErrorString's nullptr-on-unknown
// contract).
func ErrorString(code ErrorCode) string {
	switch code {
	case Success:
		return "SUCCESS"
	case ErrInvalidFormat:
		return "ERR_INVALID_FORMAT"
	case ErrBadChannelMetric:
		return "ERR_BAD_CHANNEL_METRIC"
	case ErrBadMask:
		return "ERR_BAD_MASK"
	case ErrShortBuffer:
		return "ERR_SHORT_BUFFER"
	case ErrBadBlock:
		return "ERR_BAD_BLOCK"
	default:
		return ""
	}
}

// Error is a typed error carrying a codec-level ErrorCode.
type Error struct {
	Code ErrorCode
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg != "" {
		return e.Msg
	}
	if s := ErrorString(e.Code); s != "" {
		return "squish: " + s
	}
	return "squish: error"
}

// ErrorCodeOf returns the ErrorCode carried by err, Success for nil, or
// ErrBadBlock as a conservative fallback for an unrelated error.
func ErrorCodeOf(err error) ErrorCode {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrBadBlock
}

func newError(code ErrorCode, msg string) error {
	return &Error{Code: code, Msg: msg}
}
