package mimetypes

import (
	"mime"

	"github.com/gabriel-vasile/mimetype"
)

type MIME string

const (
	Unknown   MIME = "unknown"
	TextPlain MIME = "text/plain"
	TextCSV   MIME = "text/csv"
	TextTSV   MIME = "text/tab-separated-values"
)

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// IsTabular reports whether detected content can be read as a delimited table,
// i.e. it is plain text or one of its descendants (csv, tsv...).
func IsTabular(detected *mimetype.MIME) bool {
	for m := detected; m != nil; m = m.Parent() {
		if _, ok := Matches(m.String(), TextPlain); ok {
			return true
		}
	}
	return false
}
