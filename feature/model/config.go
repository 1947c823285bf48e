package model

// Config holds defaults for locating model artifacts in the bucket.
type Config struct {
	// Dir is the key prefix under which model artifacts are stored.
	Dir string `mapstructure:"dir" default:"model"`
	// Name is the default model artifact name.
	Name string `mapstructure:"name" default:"model.keras"`
}
