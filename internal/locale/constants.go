package locale

import "time"

// Translation key formats
const (
	KeyFormatName     = "%s Name"
	KeyFormatNickname = "%s Nickname"
)

// DefaultLocale is used when no locale is configured
const DefaultLocale = "en"

// Name cache sizing
const (
	NameCacheSize = 512
	NameCacheTTL  = 30 * time.Minute
)

// Error messages
const (
	ErrMsgInvalidLocaleTag = "invalid locale tag %q: %w"
	ErrMsgDecodeLocales    = "failed to decode locales: %w"
)
