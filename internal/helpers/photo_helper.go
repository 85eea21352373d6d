package helpers

import (
	"path/filepath"
	"strings"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".heic": true,
}

// PhotoExtension returns the lowercase extension to store an upload under,
// falling back to .jpg for anything unrecognized.
func PhotoExtension(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if imageExtensions[ext] {
		return ext
	}
	return ".jpg"
}

func IsImageFileName(fileName string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(fileName))]
}
