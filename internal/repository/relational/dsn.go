package relational

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/mamadbah2/simcc/internal/config"
)

var (
	kvPairRegex   = regexp.MustCompile(`(?i)\b(host|user|password|dbname|port|sslmode)=`)
	kvSecretRegex = regexp.MustCompile(`(?i)(password=)(\S+)`)
	kvUserRegex   = regexp.MustCompile(`(?i)\b(user|password)=\S+`)
)

// BuildDSN merges the credential triple into a driver specific data source name.
// Postgres accepts either URL form (postgres://host/db) or a key=value list;
// credentials embedded in DB_DSN are replaced by DB_USER and DB_PASSWORD.
// For sqlite the DSN is the database file path and credentials are unused.
func BuildDSN(cfg config.DatabaseConfig) string {
	raw := strings.Trim(strings.TrimSpace(cfg.DSN), "\"'")
	if cfg.Driver == config.DriverSQLite || raw == "" {
		return raw
	}

	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		u, err := url.Parse(raw)
		if err != nil {
			// leave it for the driver to reject
			return raw
		}
		u.User = url.UserPassword(cfg.User, cfg.Password)
		return u.String()
	}

	if !kvPairRegex.MatchString(raw) {
		return raw
	}

	cleaned := strings.Join(strings.Fields(kvUserRegex.ReplaceAllString(raw, "")), " ")
	cleaned += " user=" + quoteKV(cfg.User) + " password=" + quoteKV(cfg.Password)
	if !strings.Contains(strings.ToLower(cleaned), "sslmode=") {
		cleaned += " sslmode=disable"
	}
	return cleaned
}

// MaskDSN hides the password of a DSN for diagnostics.
func MaskDSN(dsn string) string {
	if u, err := url.Parse(dsn); err == nil && u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), "xxxxx")
			return u.String()
		}
	}
	return kvSecretRegex.ReplaceAllString(dsn, `${1}***`)
}

func quoteKV(value string) string {
	if value == "" || strings.ContainsAny(value, ` '\`) {
		escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value)
		return "'" + escaped + "'"
	}
	return value
}
