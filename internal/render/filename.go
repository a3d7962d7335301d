package render

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxSlugLength = 60

// stripMarks folds accented letters (including Vietnamese) to ASCII.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug lowercases s and collapses every run of characters outside [a-z0-9]
// into a single underscore. An empty result becomes "all".
func Slug(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}
	folded = strings.NewReplacer("đ", "d", "Đ", "d").Replace(folded)

	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}

	out := b.String()
	if len(out) > maxSlugLength {
		out = strings.TrimRight(out[:maxSlugLength], "_")
	}
	if out == "" {
		return "all"
	}
	return out
}

// AttachmentFilename is "<kind>_<recipient-or-subject>_<YYYYMMDD>.<ext>".
func AttachmentFilename(kind, subject string, date time.Time, ext string) string {
	return Slug(kind) + "_" + Slug(subject) + "_" + date.Format("20060102") + "." + strings.TrimPrefix(ext, ".")
}

// ExportFilename is "<report-kind>_<period>_<YYYYMMDD>.csv".
func ExportFilename(report, period string, date time.Time) string {
	return AttachmentFilename(report, period, date, "csv")
}
