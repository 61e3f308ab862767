package services

import (
	"context"
	"customer-portal/models"
	"fmt"
	"net/http"
	"time"
)

type ProfileService struct {
	client *restClient
}

func NewProfileService(baseURL string, timeout time.Duration) *ProfileService {
	return &ProfileService{client: newRESTClient("profiles", baseURL, timeout)}
}

// GetByUserID returns the profile of the user the token belongs to.
func (s *ProfileService) GetByUserID(ctx context.Context, token string) (*models.UserProfile, error) {
	var resp models.ItemResponse[models.UserProfile]
	if err := s.client.get(ctx, token, "/api/profiles/current", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

func (s *ProfileService) Create(ctx context.Context, token string, req models.CreateProfileRequest) (*models.UserProfile, error) {
	var resp models.ItemResponse[models.UserProfile]
	if err := s.client.send(ctx, token, http.MethodPost, "/api/profiles", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

func (s *ProfileService) UpdateAvatar(ctx context.Context, token string, profileID int, avatarURL string) error {
	path := fmt.Sprintf("/api/profiles/%d/avatar", profileID)
	return s.client.send(ctx, token, http.MethodPut, path, models.UserAvatar{AvatarURL: avatarURL}, nil)
}
