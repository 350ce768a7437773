// Package archive finds stylesheets packed in zip containers (EPUB books and
// plain zip archives) on top of "archive/zip".
package archive

import (
	"archive/zip"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. The archive argument contains path to archive passed to
// Walk, file is the entry which satisfies match condition. If an error is
// returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// Walk walks all files in the archive whose names start with prefix and end
// with ext (case insensitive, any file when ext is empty), calling walkFn for
// each item. Entries with an absolute path or ".." component are skipped.
func Walk(archive, prefix, ext string, walkFn WalkFunc) error {

	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) || f.FileInfo().IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}
		if len(ext) > 0 && !strings.EqualFold(path.Ext(name), ext) {
			continue
		}
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}

// IsArchive reports whether the file is a zip container. Only ".zip" and
// ".epub" files are looked at, their content must have zip signature.
func IsArchive(fname string) (bool, error) {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".zip", ".epub":
	default:
		return false, nil
	}

	f, err := os.Open(fname)
	if err != nil {
		return false, err
	}
	defer f.Close()

	// enough for any matcher filetype has
	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}

	kind, err := filetype.Match(head[:n])
	if err != nil || kind == filetype.Unknown {
		return false, nil
	}
	return kind.Extension == "zip" || kind.Extension == "epub", nil
}
