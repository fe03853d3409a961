package edit

import (
	"mime"
	"path/filepath"
	"strings"
)

const defaultContentType = "application/octet-stream"

// webContentTypes covers the assets a page usually references. The system
// mime table differs between hosts and often lacks fonts and icons, so it is
// only consulted for extensions missing here.
var webContentTypes = map[string]string{
	".css":   "text/css",
	".js":    "text/javascript",
	".mjs":   "text/javascript",
	".json":  "application/json",
	".html":  "text/html",
	".htm":   "text/html",
	".txt":   "text/plain",
	".xml":   "text/xml",
	".svg":   "image/svg+xml",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".webp":  "image/webp",
	".avif":  "image/avif",
	".ico":   "image/x-icon",
	".bmp":   "image/bmp",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".otf":   "font/otf",
	".eot":   "application/vnd.ms-fontobject",
	".mp4":   "video/mp4",
	".webm":  "video/webm",
	".mp3":   "audio/mpeg",
	".ogg":   "audio/ogg",
	".wav":   "audio/wav",
	".pdf":   "application/pdf",
	".wasm":  "application/wasm",
}

// contentType maps the file extension to a media type without parameters.
func contentType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ct, ok := webContentTypes[ext]; ok {
		return ct
	}

	ct := mime.TypeByExtension(ext)
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct == "" {
		return defaultContentType
	}
	return ct
}
