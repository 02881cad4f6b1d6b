package config

// ServiceConfig holds service identity and environment settings.
type ServiceConfig struct {
	Name        string   `yaml:"name"`
	Environment string   `yaml:"environment"`
	ClientURLs  []string `yaml:"client_urls"`
}

// LogConfig holds log output settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// JWTConfig holds bearer token settings.
type JWTConfig struct {
	Secret string `yaml:"secret"`
	// ExpiryHours is the access token lifetime in hours.
	ExpiryHours int `yaml:"expiry_hours"`
}
