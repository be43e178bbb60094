package config

const (
	DefaultCity           = "Raleigh"
	DefaultWeatherBaseURL = "https://api.openweathermap.org"
	DefaultQuoteBaseURL   = "https://api.quotable.io"
	DefaultQuoteMaxLength = 100
	DefaultQuotePolicy    = "fallback"
	DefaultHTTPTimeoutMS  = 10000

	DefaultClockTickMS       = 1000
	DefaultHeadingSimulateMS = 100
	DefaultHeadingPollMS     = 100
	DefaultLogLevel          = "info"
	DefaultStorageBaseDir    = "~/.dashboard"
	DefaultLogFileName       = "dashboard.log"
	DefaultHistoryFileName   = "repl.history"
	ProjectConfigDirName     = ".dashboard"
	ProjectConfigFileName    = "config.json"
)
