// Package config provides configuration management for the sentiment
// storage tooling.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Storage: S3/MinIO credentials and bucket settings
//   - Database: MySQL connection details for the artifact registry
//   - Model: default bucket and directory for model artifacts
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
