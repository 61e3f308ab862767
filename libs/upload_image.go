package libs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var (
	ErrFileTooLarge   = errors.New("file too large")
	ErrInvalidImage   = errors.New("invalid file type. Only jpg, jpeg, png, gif, webp allowed")
	ErrUploaderAbsent = errors.New("avatar upload is not configured")
)

// ValidateImageFile checks the size and extension of an avatar upload.
func ValidateImageFile(header *multipart.FileHeader, maxSize int64) error {
	if maxSize > 0 && header.Size > maxSize {
		return fmt.Errorf("%w (max %d bytes)", ErrFileTooLarge, maxSize)
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExtensions[ext] {
		return ErrInvalidImage
	}
	return nil
}

// LocalUploader writes avatars under dir and serves them from publicPrefix.
type LocalUploader struct {
	dir          string
	publicPrefix string
}

func NewLocalUploader(dir, publicPrefix string) (*LocalUploader, error) {
	if err := os.MkdirAll(filepath.Join(dir, avatarFolder), os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalUploader{dir: dir, publicPrefix: strings.TrimRight(publicPrefix, "/")}, nil
}

func (u *LocalUploader) UploadAvatar(_ context.Context, userID int, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	name := fmt.Sprintf("user_%d_%d%s", userID, time.Now().UnixNano(), ext)

	dst, err := os.Create(filepath.Join(u.dir, avatarFolder, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	return path.Join(u.publicPrefix, avatarFolder, name), nil
}
