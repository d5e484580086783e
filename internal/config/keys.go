package config

const (
	KeyAPIToken         = "api_token"
	KeyTokenFile        = "token_file"
	KeyAPIURL           = "api_url"
	KeyConcurrency      = "concurrency"
	KeyMaxPages         = "max_pages"
	KeyMaxSecondaryWait = "max_secondary_wait"
	KeyVerbose          = "verbose"
	KeyConfigFile       = "config"
)

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"token-file":         KeyTokenFile,
	"api-url":            KeyAPIURL,
	"concurrency":        KeyConcurrency,
	"max-pages":          KeyMaxPages,
	"max-secondary-wait": KeyMaxSecondaryWait,
	"verbose":            KeyVerbose,
	"config":             KeyConfigFile,
}
