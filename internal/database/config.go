package database

import (
	"fmt"
	"strings"
)

// DefaultSQLitePath is used when the sqlite driver is selected without a path
const DefaultSQLitePath = "restaurants.sqlite"

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// PostgreSQL-specific configuration
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// URL is a full PostgreSQL connection URL; when set it takes precedence
	// over the individual fields
	URL string

	// SQLite-specific configuration
	Path string
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// SQLite writers wait this long for a lock before failing with "database is locked"
const sqliteBusyTimeoutMillis = 5000

// DSN builds a Data Source Name string based on the driver.
// SQLite connections always enable foreign key enforcement, which is off by default.
// File databases also wait on a busy lock and take the write lock when a
// transaction begins, so concurrent writers queue instead of failing.
func (c *DatabaseConfig) DSN() string {
	switch strings.ToLower(c.Driver) {
	case "postgres", "postgresql":
		if c.URL != "" {
			return c.URL
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite", "":
		path := c.Path
		if path == "" {
			path = DefaultSQLitePath
		}
		var params []string
		if !hasParam(path, "_foreign_keys", "_fk") {
			params = append(params, "_foreign_keys=on")
		}
		if !c.InMemory() {
			if !hasParam(path, "_busy_timeout", "_timeout") {
				params = append(params, fmt.Sprintf("_busy_timeout=%d", sqliteBusyTimeoutMillis))
			}
			if !hasParam(path, "_txlock") {
				params = append(params, "_txlock=immediate")
			}
		}
		if len(params) == 0 {
			return path
		}
		separator := "?"
		if strings.Contains(path, "?") {
			separator = "&"
		}
		return path + separator + strings.Join(params, "&")
	default:
		return ""
	}
}

// InMemory reports whether the config points at a private in-memory SQLite database
func (c *DatabaseConfig) InMemory() bool {
	driver := strings.ToLower(c.Driver)
	if driver != "sqlite" && driver != "" {
		return false
	}
	return strings.HasPrefix(c.Path, ":memory:") || strings.Contains(c.Path, "mode=memory")
}

// hasParam reports whether the DSN query already sets one of the given keys
func hasParam(dsn string, keys ...string) bool {
	for _, key := range keys {
		if strings.Contains(dsn, key+"=") {
			return true
		}
	}
	return false
}
