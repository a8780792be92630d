package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyFile       = "file"
	KeyDir        = "directory"
	KeyDocset     = "docset"
	KeyLanguage   = "language"
	KeyCopied     = "copied"
	KeySkipped    = "skipped"
	KeyBuildID    = "build_id"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func File(f string) slog.Attr          { return slog.String(KeyFile, f) }
func Dir(d string) slog.Attr           { return slog.String(KeyDir, d) }
func Docset(d string) slog.Attr        { return slog.String(KeyDocset, d) }
func Language(l string) slog.Attr      { return slog.String(KeyLanguage, l) }
func Copied(n int) slog.Attr           { return slog.Int(KeyCopied, n) }
func Skipped(n int) slog.Attr          { return slog.Int(KeySkipped, n) }
func BuildID(id string) slog.Attr      { return slog.String(KeyBuildID, id) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
