package api

import (
	"context"
	"fmt"

	"github.com/sonicboom719/comment-umpire/domain"
)

// videoService implements app.VideoService against the backend.
type videoService struct {
	client *Client
}

// NewVideoService creates a VideoService backed by the Comment Umpire API.
func NewVideoService(client *Client) *videoService {
	return &videoService{client: client}
}

type extractRequest struct {
	URL string `json:"url"`
}

type videoInfoDTO struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	ChannelName  string `json:"channel_name"`
	ThumbnailURL string `json:"thumbnail_url"`
	PublishedAt  string `json:"published_at"`
}

func (s *videoService) Extract(ctx context.Context, url string) (domain.VideoInfo, error) {
	var dto videoInfoDTO
	if err := s.client.Post(ctx, "/videos/extract", extractRequest{URL: url}, &dto); err != nil {
		return domain.VideoInfo{}, fmt.Errorf("extracting video: %w", err)
	}
	return domain.VideoInfo{
		VideoID:      dto.VideoID,
		Title:        dto.Title,
		ChannelName:  dto.ChannelName,
		ThumbnailURL: dto.ThumbnailURL,
		PublishedAt:  dto.PublishedAt,
	}, nil
}
