package pdf

import (
	"fmt"
	"strings"
)

// ParseError reports a page spec token that is neither a valid integer nor
// a valid integer-integer range.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid page spec token %q: %s", e.Token, e.Reason)
}

// DecodeError reports input bytes that could not be parsed as a PDF.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("not a valid PDF document: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncryptedDocumentError reports a document that stays locked after the
// empty-password unlock attempt.
type EncryptedDocumentError struct {
	Err error
}

func (e *EncryptedDocumentError) Error() string {
	return fmt.Sprintf("PDF is encrypted and cannot be opened without a password: %v", e.Err)
}

func (e *EncryptedDocumentError) Unwrap() error { return e.Err }

// OutOfRangeError lists every requested page outside [1, TotalPages], in
// request order.
type OutOfRangeError struct {
	Pages      []int
	TotalPages int
}

func (e *OutOfRangeError) Error() string {
	nums := make([]string, len(e.Pages))
	for i, p := range e.Pages {
		nums[i] = fmt.Sprintf("%d", p)
	}
	if len(nums) == 1 {
		return fmt.Sprintf("page %s is out of range (valid range is 1..%d)", nums[0], e.TotalPages)
	}
	return fmt.Sprintf("pages %s are out of range (valid range is 1..%d)", strings.Join(nums, ", "), e.TotalPages)
}
