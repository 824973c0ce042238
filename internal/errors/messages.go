// file: internal/errors/messages.go

package errors

// ErrorMessage pairs a numeric code with the message shown to the user.
type ErrorMessage struct {
	Code    int
	Message string
}

var (
	ErrSourceUnavailable    = ErrorMessage{Code: 1001, Message: "Unable to open file"}
	ErrMalformedRecord      = ErrorMessage{Code: 1002, Message: "Line has less than 2 parameters"}
	ErrDanglingPrerequisite = ErrorMessage{Code: 1003, Message: "Prerequisite does not exist as a course"}
	ErrCourseNotFound       = ErrorMessage{Code: 1004, Message: "Course not found"}
	ErrInvalidChoice        = ErrorMessage{Code: 1005, Message: "Invalid choice"}
	ErrSourceRead           = ErrorMessage{Code: 1006, Message: "Error reading file"}
	ErrLineTooLong          = ErrorMessage{Code: 1007, Message: "Line is too long"}
)

// GetErrorMessage returns the message registered for code.
func GetErrorMessage(code int) string {
	switch code {
	case ErrSourceUnavailable.Code:
		return ErrSourceUnavailable.Message
	case ErrMalformedRecord.Code:
		return ErrMalformedRecord.Message
	case ErrDanglingPrerequisite.Code:
		return ErrDanglingPrerequisite.Message
	case ErrCourseNotFound.Code:
		return ErrCourseNotFound.Message
	case ErrInvalidChoice.Code:
		return ErrInvalidChoice.Message
	case ErrSourceRead.Code:
		return ErrSourceRead.Message
	case ErrLineTooLong.Code:
		return ErrLineTooLong.Message
	default:
		return "Unknown error"
	}
}
