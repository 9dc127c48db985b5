package filestorage

import (
	"path"
	"strings"

	"github.com/gosimple/slug"
)

// SanitizeFilename reduces an uploaded file name to a safe storage key:
// directory components are dropped, the stem and extension are transliterated
// to lowercase ASCII slugs. An empty result means the name is unusable.
func SanitizeFilename(name string) string {
	base := path.Base(strings.ReplaceAll(name, `\`, "/"))
	if base == "." || base == "/" || base == ".." {
		return ""
	}

	ext := path.Ext(base)
	stem := slug.Make(strings.TrimSuffix(base, ext))
	cleanExt := slug.Make(strings.TrimPrefix(ext, "."))

	switch {
	case stem == "":
		// dotfiles such as ".profile" keep their only component
		return cleanExt
	case cleanExt == "":
		return stem
	default:
		return stem + "." + cleanExt
	}
}
