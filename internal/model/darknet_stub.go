//go:build !opencv

package model

import (
	"fmt"
	"image"
)

// netHandle is never constructed in builds without opencv support; the
// backend resolves to unavailable and the pipeline uses heuristics.
type netHandle struct{}

func openNetwork(weights, config string) (*netHandle, error) {
	return nil, fmt.Errorf("built without opencv support")
}

func (h *netHandle) forward(img image.Image) ([][]float32, error) {
	return nil, fmt.Errorf("built without opencv support")
}

func (h *netHandle) close() {}
