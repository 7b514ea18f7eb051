package utils

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// UploadsDir is the storage root for submitted files. Set once by
// InitUploadsDir at startup and never torn down within the process.
var UploadsDir string

func InitUploadsDir() error {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "./uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	UploadsDir = dir
	return nil
}

// StorageKey builds a collision-resistant file name for an upload:
// <unix ms>-<random 9 digits>-<original base name>. Two uploads with the
// same original name in the same millisecond still get distinct keys.
// The original name is reduced to its base so a crafted filename cannot
// escape the uploads directory.
func StorageKey(originalName string) string {
	return fmt.Sprintf("%d-%d-%s",
		time.Now().UnixMilli(),
		rand.Int63n(1_000_000_000),
		filepath.Base(originalName),
	)
}

// SaveUploadedFile writes a multipart file under UploadsDir with the given
// storage key and returns the key.
func SaveUploadedFile(fileHeader *multipart.FileHeader, key string) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(UploadsDir, key))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return key, nil
}
