package utils

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"

	storage "github.com/supabase-community/storage-go"
)

// RemoteStorageEnabled reports whether uploads should go to Supabase
// Storage instead of local disk.
func RemoteStorageEnabled() bool {
	return os.Getenv("SUPABASE_URL") != "" && os.Getenv("SUPABASE_KEY") != ""
}

// UploadFileToSupabase uploads a submission to Supabase Storage under
// bucket 'uploads', path submissions/<key>, and returns the public URL.
func UploadFileToSupabase(fileHeader *multipart.FileHeader, key string) (string, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")

	storageClient := storage.NewClient(supabaseURL+"/storage/v1", supabaseKey, nil)

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	objectPath := fmt.Sprintf("submissions/%s", key)

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return "", err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	options := storage.FileOptions{
		ContentType: &contentType,
	}

	_, err = storageClient.UploadFile("uploads", objectPath, &buf, options)
	if err != nil {
		return "", err
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/uploads/%s", supabaseURL, objectPath)
	return publicURL, nil
}
