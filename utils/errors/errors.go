package errors

import "github.com/muhammadheryan/inventory-management/constant"

type CustomError struct {
	errType constant.ErrorType
	message string
}

func (c CustomError) Error() string {
	if c.message != "" {
		return c.message
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorWithMessage overrides the default message of errorType, e.g. to
// tell the caller why a search came back empty.
func SetCustomErrorWithMessage(errorType constant.ErrorType, message string) CustomError {
	return CustomError{
		errType: errorType,
		message: message,
	}
}

// Is reports whether err is a CustomError of the given type.
func Is(err error, errorType constant.ErrorType) bool {
	ce, ok := err.(CustomError)
	return ok && ce.errType == errorType
}
