//go:build opencv

package model

import (
	"fmt"
	"image"

	goimaging "github.com/disintegration/imaging"
	"gocv.io/x/gocv"
)

// inputSize is the square network input resolution.
const inputSize = 416

// netHandle owns a loaded Darknet network and its output layer names.
type netHandle struct {
	net     gocv.Net
	outputs []string
}

func openNetwork(weights, config string) (*netHandle, error) {
	net := gocv.ReadNetFromDarknet(config, weights)
	if net.Empty() {
		return nil, fmt.Errorf("reading darknet network from %s", config)
	}

	var outputs []string
	for _, i := range net.GetUnconnectedOutLayers() {
		layer := net.GetLayer(i)
		name := layer.GetName()
		if name != "" && name != "_input" {
			outputs = append(outputs, name)
		}
	}
	if len(outputs) == 0 {
		net.Close()
		return nil, fmt.Errorf("network has no output layers")
	}
	return &netHandle{net: net, outputs: outputs}, nil
}

// forward runs one image through the network and flattens the output
// blobs into anchor rows.
func (h *netHandle) forward(img image.Image) ([][]float32, error) {
	resized := goimaging.Resize(img, inputSize, inputSize, goimaging.Linear)

	mat, err := gocv.ImageToMatRGB(resized)
	if err != nil {
		return nil, fmt.Errorf("converting image: %w", err)
	}
	defer mat.Close()

	blob := gocv.BlobFromImage(mat, 1.0/255.0,
		image.Pt(inputSize, inputSize), gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	h.net.SetInput(blob, "")
	mats := h.net.ForwardLayers(h.outputs)

	var rows [][]float32
	for _, m := range mats {
		data, err := m.DataPtrFloat32()
		if err != nil {
			m.Close()
			return nil, fmt.Errorf("reading output blob: %w", err)
		}
		cols := m.Cols()
		for i := 0; i+cols <= len(data); i += cols {
			row := make([]float32, cols)
			copy(row, data[i:i+cols])
			rows = append(rows, row)
		}
		m.Close()
	}
	return rows, nil
}

func (h *netHandle) close() {
	h.net.Close()
}
