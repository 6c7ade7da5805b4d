package helper

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const imageFolder = "sewaku"

// NormalizeImageValue menormalkan nilai image dari body JSON: URL http(s)
// diteruskan apa adanya, data:<mime>;base64,... diunggah ke Cloudinary dan
// diganti URL hasil hosting.
func NormalizeImageValue(ctx context.Context, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed, nil
	}
	if strings.HasPrefix(trimmed, "data:") {
		cld := InitCloudinary()
		resp, err := cld.Upload.Upload(ctx, trimmed, uploader.UploadParams{Folder: imageFolder})
		if err != nil {
			return "", err
		}
		return resp.SecureURL, nil
	}
	return "", errors.New("format image tidak dikenal, harus URL atau data URI")
}

// UploadImageFile mengunggah file part dari multipart form (jalur legacy upload)
func UploadImageFile(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	cld := InitCloudinary()
	resp, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: imageFolder})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
