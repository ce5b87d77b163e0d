package assets

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

// FallbackImage is served from the storefront itself when the remote placeholder is unreachable
const FallbackImage = "/static/placeholder.svg"

// ResolvePlaceholder returns imageURL when it answers successfully, otherwise FallbackImage
func ResolvePlaceholder(ctx context.Context, imageURL string, timeout time.Duration) string {
	if imageURL == "" {
		return FallbackImage
	}

	log.Infof("🔄 Checking placeholder image %s", imageURL)

	if isImageReachable(ctx, imageURL, timeout) {
		log.Infof("✅ Placeholder image is reachable")
		return imageURL
	}

	log.Warnf("⚠️ Placeholder image unreachable, using %s", FallbackImage)
	return FallbackImage
}

// isImageReachable tests if the image URL can be fetched
func isImageReachable(ctx context.Context, imageURL string, timeout time.Duration) bool {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0)

	resp, err := client.R().
		SetContext(ctx).
		Get(imageURL)

	if err != nil {
		log.Infof("Image probe failed for %s: %v", imageURL, err)
		return false
	}

	if resp.IsError() {
		log.Infof("Image probe failed for %s with status: %s", imageURL, resp.Status())
		return false
	}

	return true
}
