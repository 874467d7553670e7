package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrNilAdapter          = errors.New("translation adapter is nil")
	ErrNoTranslations      = errors.New("no translations loaded")
	ErrFailedToParseYAML   = errors.New("failed to parse YAML content")
	ErrFailedToReadFile    = errors.New("failed to read translation file")
	ErrInvalidLanguageCode = errors.New("invalid language code")
)

// ErrLanguageNotSupported indicates that the requested language is not available.
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}
