package mime

import (
	"path/filepath"
	"strings"
)

type MIME = string

const (
	OctetStream MIME = "application/octet-stream"
	Plain       MIME = "text/plain"
	HTML        MIME = "text/html"
	XML         MIME = "text/xml"
	CSS         MIME = "text/css"
	JS          MIME = "text/javascript"
	JSON        MIME = "application/json"
	PDF         MIME = "application/pdf"
	WASM        MIME = "application/wasm"
	ZIP         MIME = "application/zip"
	GIF         MIME = "image/gif"
	JPEG        MIME = "image/jpeg"
	PNG         MIME = "image/png"
	SVG         MIME = "image/svg+xml"
	ICO         MIME = "image/vnd.microsoft.icon"
	WEBP        MIME = "image/webp"
)

type Charset = string

const UTF8 Charset = "utf-8"

var Extension = map[string]MIME{
	".css":  CSS,
	".gif":  GIF,
	".htm":  HTML,
	".html": HTML,
	".ico":  ICO,
	".jpeg": JPEG,
	".jpg":  JPEG,
	".js":   JS,
	".mjs":  JS,
	".json": JSON,
	".pdf":  PDF,
	".png":  PNG,
	".svg":  SVG,
	".txt":  Plain,
	".wasm": WASM,
	".webp": WEBP,
	".xml":  XML,
	".zip":  ZIP,
}

// DefaultCharset defines charsets, used by default for MIMEs unless explicitly set.
var DefaultCharset = map[MIME]Charset{
	CSS:   UTF8,
	HTML:  UTF8,
	JS:    UTF8,
	JSON:  UTF8,
	Plain: UTF8,
	XML:   UTF8,
}

// ByPath guesses a Content-Type value by the file extension, including the charset
// parameter for textual types. Unknown extensions yield an empty string, so no
// Content-Type is sent at all.
func ByPath(path string) string {
	m, found := Extension[strings.ToLower(filepath.Ext(path))]
	if !found {
		return ""
	}

	return WithCharset(m)
}

// WithCharset appends the default charset parameter, if the MIME has one.
func WithCharset(m MIME) string {
	if charset, ok := DefaultCharset[m]; ok {
		return m + "; charset=" + charset
	}

	return m
}
