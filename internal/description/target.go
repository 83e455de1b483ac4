// Package description resolves image paths and writes model responses as
// description files next to the images they describe.
package description

import (
	"os"
	"path/filepath"
	"strings"
)

// ImagesDir is the directory, relative to the working directory, that holds
// input images and their description files.
const ImagesDir = "images"

// Target pairs an input image with the file its description is written to.
type Target struct {
	ImagePath  string
	OutputPath string
}

// Resolve builds the Target for fileName under cwd/images.
func Resolve(cwd, fileName string) Target {
	dir := filepath.Join(cwd, ImagesDir)
	return Target{
		ImagePath:  filepath.Join(dir, fileName),
		OutputPath: filepath.Join(dir, "description_"+Stem(fileName)+".txt"),
	}
}

// Exists reports whether the image path names a regular file.
// Symlinks are followed.
func (t Target) Exists() bool {
	info, err := os.Stat(t.ImagePath)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Stem returns name with its final extension removed. Leading dots do not
// start an extension, so ".hidden" is its own stem.
func Stem(name string) string {
	base := filepath.Base(name)
	if !strings.Contains(strings.TrimLeft(base, "."), ".") {
		return name
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}
