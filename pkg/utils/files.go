package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/ulikunitz/xz"
)

// ErrEmptyArchive is returned when an archive holds no files.
var ErrEmptyArchive = errors.New("utils: archive contains no files")

// LoadFile loads the given file and performs decompression if
// necessary, choosing the decoder from the file extension.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Decompress(filepath.Ext(filename), data)
}

// Decompress decodes data according to ext (".gz", ".xz", ".zip"
// or ".7z"). Archives yield their first regular file. Any other
// extension returns data as is.
func Decompress(ext string, data []byte) ([]byte, error) {
	r := bytes.NewReader(data)

	var decoder io.Reader
	switch strings.ToLower(ext) {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		decoder = gz
	case ".xz":
		x, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		decoder = x
	case ".zip":
		zipReader, err := zip.NewReader(r, int64(len(data)))
		if err != nil {
			return nil, err
		}
		for _, f := range zipReader.File {
			if f.FileInfo().IsDir() {
				continue
			}
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			decoder = rc
			break
		}
	case ".7z":
		archive, err := sevenzip.NewReader(r, int64(len(data)))
		if err != nil {
			return nil, err
		}
		for _, f := range archive.File {
			if f.FileInfo().IsDir() {
				continue
			}
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			decoder = rc
			break
		}
	default:
		return data, nil
	}

	if decoder == nil {
		return nil, ErrEmptyArchive
	}
	return io.ReadAll(decoder)
}
