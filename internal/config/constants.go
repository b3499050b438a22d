package config

const (
	// DefaultBadgerAPIURL is the public Badger API endpoint
	DefaultBadgerAPIURL = "https://api.usebadger.com"

	// DefaultSessionTTL is how long an idle badge session survives
	DefaultSessionTTL = "30m"
)
