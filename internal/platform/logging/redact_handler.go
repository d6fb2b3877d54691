package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase HTTP header names whose values are never
// logged. The HTTP middleware redacts them from request attributes and the
// handler below drops them again if they reach a log call by field name.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

var (
	// bearerPattern matches "Bearer <token>" values.
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// dsnPasswordPattern matches the password pair of a key/value
	// PostgreSQL DSN ("host=db user=tasks password=s3cret").
	dsnPasswordPattern = regexp.MustCompile(`(?i)password=\S+`)

	// dsnUserinfoPattern matches "user:password@" in URL-style and MySQL
	// DSNs ("postgres://u:p@db/tasks", "u:p@tcp(db:3306)/tasks").
	dsnUserinfoPattern = regexp.MustCompile(`[^\s/:@]+:[^\s/@]+@(tcp\(|unix\(|[a-zA-Z0-9.\-]+)`)
)

// newRedactAttr returns a masq ReplaceAttr for slog.HandlerOptions. Fields are
// redacted by name (credentials, DSNs) and string values by pattern, so a
// connection string logged under an unexpected key is still masked.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+8)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("dsn"),
		masq.WithFieldPrefix("secret_"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(dsnPasswordPattern),
		masq.WithRegex(dsnUserinfoPattern),
	)

	return masq.New(opts...)
}
