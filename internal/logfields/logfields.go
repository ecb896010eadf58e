package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeySource     = "source"
	KeyEncoding   = "encoding"
	KeyOrdering   = "ordering"
	KeyLocale     = "locale"
	KeyLines      = "lines"
	KeySources    = "sources"
	KeyOutput     = "output"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Source(name string) slog.Attr    { return slog.String(KeySource, name) }
func Encoding(name string) slog.Attr  { return slog.String(KeyEncoding, name) }
func Ordering(kind string) slog.Attr  { return slog.String(KeyOrdering, kind) }
func Locale(tag string) slog.Attr     { return slog.String(KeyLocale, tag) }
func Lines(n int) slog.Attr           { return slog.Int(KeyLines, n) }
func Sources(n int) slog.Attr         { return slog.Int(KeySources, n) }
func Output(name string) slog.Attr    { return slog.String(KeyOutput, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
