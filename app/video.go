package app

import (
	"context"

	"github.com/sonicboom719/comment-umpire/domain"
)

// VideoService resolves a video URL into video metadata.
type VideoService interface {
	// Extract resolves a YouTube URL to the video it points at.
	Extract(ctx context.Context, url string) (domain.VideoInfo, error)
}
