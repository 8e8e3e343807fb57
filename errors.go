package i18n

import "errors"

var (
	ErrKeyNotFound   = errors.New("i18n: translation key not found")
	ErrEmptyLocale   = errors.New("i18n: locale cannot be empty")
	ErrNilSource     = errors.New("i18n: source cannot be nil")
	ErrNilPluralRule = errors.New("i18n: plural rule cannot be nil")
	ErrInvalidSource = errors.New("i18n: invalid translation source")

	ErrInvalidMissingFormat = errors.New("i18n: missing-key format must contain a %s verb")
)
