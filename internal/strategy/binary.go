package strategy

import (
	"bytes"
	"path/filepath"
	"strings"
)

// binaryScanWindow is how many leading bytes the null-byte heuristic
// inspects, matching the detection window version-control systems use.
const binaryScanWindow = 8000

// binaryExtensions is the extension allow-list for content that is
// always treated as binary regardless of its bytes.
var binaryExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
	".ico": true, ".bmp": true, ".pdf": true, ".zip": true, ".gz": true,
	".tar": true, ".tgz": true, ".woff": true, ".woff2": true, ".ttf": true,
	".eot": true, ".otf": true, ".so": true, ".dylib": true, ".dll": true,
	".exe": true, ".bin": true, ".wasm": true, ".mp3": true, ".mp4": true,
	".mov": true, ".sqlite": true, ".db": true, ".pyc": true,
}

// HasBinaryExtension reports whether the path's extension is on the
// binary allow-list.
func HasBinaryExtension(path string) bool {
	return binaryExtensions[strings.ToLower(filepath.Ext(path))]
}

// HasNullByte reports whether the first 8000 bytes contain a NUL.
func HasNullByte(content []byte) bool {
	window := content
	if len(window) > binaryScanWindow {
		window = window[:binaryScanWindow]
	}
	return bytes.IndexByte(window, 0) != -1
}

// IsBinary combines the two independent signals; either alone is
// sufficient.
func IsBinary(path string, content []byte) bool {
	return HasBinaryExtension(path) || HasNullByte(content)
}
