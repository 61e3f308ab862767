package libs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const avatarFolder = "avatars"

type CloudinaryCredentials struct {
	URL       string
	CloudName string
	APIKey    string
	APISecret string
}

// CloudinaryUploader stores customer avatars on Cloudinary.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(creds CloudinaryCredentials) (*CloudinaryUploader, error) {
	if creds.CloudName != "" && creds.APIKey != "" && creds.APISecret != "" {
		cld, err := cloudinary.NewFromParams(creds.CloudName, creds.APIKey, creds.APISecret)
		if err != nil {
			return nil, fmt.Errorf("cloudinary init from params: %w", err)
		}
		return &CloudinaryUploader{cld: cld}, nil
	}

	if creds.URL == "" {
		return nil, errors.New("cloudinary credentials not configured")
	}

	cld, err := cloudinary.NewFromURL(creds.URL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init from URL: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) UploadAvatar(ctx context.Context, userID int, file io.Reader, filename string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       avatarPublicID(userID, filename, time.Now()),
		Folder:         avatarFolder,
		ResourceType:   "image",
		Transformation: "q_auto,f_auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if resp == nil {
		return "", errors.New("cloudinary response is nil")
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}

	if resp.SecureURL != "" {
		return resp.SecureURL, nil
	}
	if resp.URL != "" {
		return resp.URL, nil
	}
	return "", errors.New("both SecureURL and URL are empty")
}

func avatarPublicID(userID int, filename string, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("user_%d_%d_%s", userID, now.Unix(), base)
}
