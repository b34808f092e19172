package i18n

import "errors"

var (
	ErrMalformedCatalogEntry = errors.New("i18n: malformed catalog entry")
	ErrDuplicateKey          = errors.New("i18n: duplicate catalog key")
	ErrEmptyLocale           = errors.New("i18n: locale cannot be empty")
	ErrUnknownLocale         = errors.New("i18n: unknown locale")
	ErrInvalidFile           = errors.New("i18n: invalid translation file")
)
