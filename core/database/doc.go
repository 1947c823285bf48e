// Package database handles the optional MySQL connection used by the
// artifact registry.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to
// properly configure MySQL connections based on the application's
// configuration. The connection is optional: commands that cannot reach the
// database log a warning and run without the registry.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Registry database unavailable", zap.Error(err))
//	}
package database
