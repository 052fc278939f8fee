// Package notify posts analysis results to a webhook receiver.
package notify

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"time"

	goimaging "github.com/disintegration/imaging"

	"github.com/openfield/scene-analyzer/internal/analyze"
)

// Thumbnail parameters for the embedded preview image.
const (
	thumbnailWidth   = 320
	thumbnailQuality = 70
)

// Payload is the record shipped to the webhook receiver: the full
// analysis result plus the notification envelope around it.
type Payload struct {
	Event     string `json:"event"`
	Timestamp string `json:"timestamp"`
	Object    string `json:"object"`
	Status    Status `json:"status"`
	Image     string `json:"image,omitempty"`
	*analyze.Result
}

// Status summarizes how the analysis went.
type Status struct {
	LatencyMs         int64   `json:"latencyMs"`
	OverallConfidence float64 `json:"overallConfidence"`
	Detections        int     `json:"detections"`
	Model             string  `json:"model,omitempty"`
}

// Client posts results to one webhook URL. It never retries; callers
// that want retry behavior own that policy.
type Client struct {
	url          string
	includeImage bool
	httpClient   *http.Client
}

// NewClient builds a webhook client. When includeImage is set, Send
// embeds a base64 JPEG thumbnail of the analyzed photo.
func NewClient(url string, includeImage bool) *Client {
	return &Client{
		url:          url,
		includeImage: includeImage,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Send posts one analysis result. img may be nil when the photo could
// not be decoded; the payload then ships without a thumbnail. A non-2xx
// response is an error.
func (c *Client) Send(result *analyze.Result, img image.Image, modelName string) error {
	payload := Payload{
		Event:     "scene.analyzed",
		Timestamp: time.Now().Format(time.RFC3339),
		Object:    highlight(result),
		Status: Status{
			LatencyMs:         result.LatencyMs,
			OverallConfidence: result.OverallConfidence,
			Detections:        len(result.Details),
			Model:             modelName,
		},
		Result: result,
	}

	if c.includeImage && img != nil {
		thumb, err := encodeThumbnail(img)
		if err != nil {
			return fmt.Errorf("encoding thumbnail: %w", err)
		}
		payload.Image = thumb
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	resp, err := c.httpClient.Post(c.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("posting to webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// highlight picks the object the notification leads with.
func highlight(result *analyze.Result) string {
	if len(result.Objects) == 0 {
		return "general scene"
	}
	return result.Objects[0]
}

// encodeThumbnail downscales the image and returns it as base64 JPEG.
func encodeThumbnail(img image.Image) (string, error) {
	thumb := goimaging.Resize(img, thumbnailWidth, 0, goimaging.Linear)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: thumbnailQuality}); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
