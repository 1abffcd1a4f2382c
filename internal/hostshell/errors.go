package hostshell

import "errors"

// ErrInvalidInitData signals that the init data could not be parsed
var ErrInvalidInitData = errors.New("invalid init data")

// ErrSignatureMismatch signals that the init data hash does not match the bot token
var ErrSignatureMismatch = errors.New("init data signature mismatch")

// ErrInitDataExpired signals that auth_date is older than the allowed age
var ErrInitDataExpired = errors.New("init data expired")
