package constants

const (
	ServiceName    = "QuickTask API"
	ServiceVersion = "1.0.0"
)

const (
	DefaultSkip  = 0
	DefaultLimit = 100
	MaxLimit     = 500

	TitleMaxLength = 255
)
