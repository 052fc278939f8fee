// Package model loads and runs the primary object detection network.
//
// The network itself is only usable when the binary is built with the
// opencv tag; without it the backend reports itself unavailable and the
// pipeline runs on heuristics alone. Output decoding is independent of
// the backend and lives in the detect package so it stays testable.
package model

import (
	"bufio"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
)

// Candidate names one network the backend may load, with the file pair
// it needs on disk.
type Candidate struct {
	Name    string
	Weights string
	Config  string
}

// DefaultCandidates returns the networks tried in order: the full model
// first, then the lighter variant for constrained hosts.
func DefaultCandidates(dir string) []Candidate {
	return []Candidate{
		{
			Name:    "yolov3",
			Weights: filepath.Join(dir, "yolov3.weights"),
			Config:  filepath.Join(dir, "yolov3.cfg"),
		},
		{
			Name:    "yolov3-tiny",
			Weights: filepath.Join(dir, "yolov3-tiny.weights"),
			Config:  filepath.Join(dir, "yolov3-tiny.cfg"),
		},
	}
}

// Backend wraps a loaded network, or the absence of one.
type Backend struct {
	name   string
	handle *netHandle
}

// Resolve tries each candidate in order and returns a backend for the
// first one whose files exist and load. When none loads, the returned
// backend is valid but unavailable.
func Resolve(candidates []Candidate) *Backend {
	for _, c := range candidates {
		if !fileExists(c.Weights) || !fileExists(c.Config) {
			continue
		}
		h, err := openNetwork(c.Weights, c.Config)
		if err != nil {
			log.Printf("model: loading %s failed: %v", c.Name, err)
			continue
		}
		log.Printf("model: loaded %s", c.Name)
		return &Backend{name: c.Name, handle: h}
	}
	return &Backend{}
}

// Name returns the loaded network's name, or "" when unavailable.
func (b *Backend) Name() string { return b.name }

// Available reports whether a network was loaded.
func (b *Backend) Available() bool { return b.handle != nil }

// Infer runs the network on an image and returns the raw output rows.
func (b *Backend) Infer(img image.Image) ([][]float32, error) {
	if b.handle == nil {
		return nil, fmt.Errorf("model: no network loaded")
	}
	return b.handle.forward(img)
}

// Close releases the network resources. Safe on an unavailable backend.
func (b *Backend) Close() {
	if b.handle != nil {
		b.handle.close()
		b.handle = nil
	}
}

// LoadLabels reads one class name per line from the given file. When
// the file is missing or unreadable the built-in COCO label set is
// returned instead, so decoding always has names to work with.
func LoadLabels(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("model: labels file unavailable (%v), using built-in set", err)
		return append([]string(nil), cocoLabels...)
	}
	defer f.Close()

	var labels []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			labels = append(labels, line)
		}
	}
	if err := scanner.Err(); err != nil || len(labels) == 0 {
		log.Printf("model: labels file unusable, using built-in set")
		return append([]string(nil), cocoLabels...)
	}
	return labels
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
