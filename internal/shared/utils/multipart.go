package utils

import (
	"fmt"
	"io"
	"mime/multipart"

	"midnightsoldiers-backend/internal/infrastructure/storage"
)

// ReadFormFile reads the first file under field into memory, or nil when the
// field is absent. Submission forms treat most files as optional.
func ReadFormFile(form *multipart.Form, field string) (*storage.File, error) {
	headers := form.File[field]
	if len(headers) == 0 {
		return nil, nil
	}
	files, err := ReadFormFiles(headers[:1])
	if err != nil {
		return nil, err
	}
	return &files[0], nil
}

// ReadFormFiles reads every header into memory, preserving order.
func ReadFormFiles(headers []*multipart.FileHeader) ([]storage.File, error) {
	files := make([]storage.File, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s", header.Filename)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s", header.Filename)
		}
		files = append(files, storage.File{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return files, nil
}
