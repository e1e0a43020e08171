package httperr

import "errors"

// Kind classifies a business rejection. Every guard in the engine fails with
// exactly one of these.
type Kind int

const (
	KindNotFound Kind = iota
	KindForbidden
	KindInvalidState
	KindScheduleConflict
	KindValidation
	KindPolicyViolation
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func NotFoundErr(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func ForbiddenErr(code, message string) error {
	return BusinessError{Kind: KindForbidden, Code: code, Message: message}
}

func InvalidStateErr(code, message string) error {
	return BusinessError{Kind: KindInvalidState, Code: code, Message: message}
}

func ConflictErr(code, message string) error {
	return BusinessError{Kind: KindScheduleConflict, Code: code, Message: message}
}

func ValidationErr(code, message string) error {
	return BusinessError{Kind: KindValidation, Code: code, Message: message}
}

func PolicyErr(code, message string) error {
	return BusinessError{Kind: KindPolicyViolation, Code: code, Message: message}
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}

func IsBusiness(err error, code string) bool {
	be, ok := AsBusiness(err)
	return ok && be.Code == code
}
