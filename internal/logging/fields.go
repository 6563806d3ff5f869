package logging

import "log/slog"

// Structured log keys shared across packages.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldSpecies    = "species"
	FieldMove       = "move"
	FieldKind       = "kind"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)

// WithCommon adds the service and version attributes, skipping empty values.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	for _, a := range []slog.Attr{slog.String(FieldService, service), slog.String(FieldVersion, version)} {
		if a.Value.String() != "" {
			attrs = append(attrs, a)
		}
	}
	return attrs
}
