// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for FamilyServe.
//
// Values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers
// framework-level settings (ports, TLS, logging level, timeouts); this
// struct holds everything specific to this application.
//
// The name-search collation settings are NOT here: they are
// re-read from the environment on every lookup call (see
// internal/app/system/collation) so operators can change them without a
// restart.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // connection string (e.g. mongodb://localhost:27017)
	MongoDatabase    string // database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Audit logging mode: "all" (db+log), "db", "log", or "off"
	AuditLog string
}
