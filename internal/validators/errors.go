package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	ErrToneOutOfRange        = errors.New("tone must be between 0 and 100")
	ErrReplyLengthOutOfRange = errors.New("max reply length must be between 80 and 800")
	ErrInvalidMemberRole     = errors.New("member role must be Owner, Admin or Editor")
	ErrInvalidMemberEmail    = errors.New("invalid member email address")
)
