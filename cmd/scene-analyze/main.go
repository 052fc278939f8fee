package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/openfield/scene-analyzer/internal/analyze"
	"github.com/openfield/scene-analyzer/internal/config"
	"github.com/openfield/scene-analyzer/internal/detect"
	"github.com/openfield/scene-analyzer/internal/imaging"
	"github.com/openfield/scene-analyzer/internal/model"
	"github.com/openfield/scene-analyzer/internal/notify"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version information")
	outputJSON := flag.Bool("output-json", false, "print the result as JSON instead of text")
	webhookURL := flag.String("webhook", "", "POST the result to this URL (overrides WEBHOOK_URL)")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("scene-analyze %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	// Configure logging to stderr (stdout is for results)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	path := flag.Arg(0)
	if _, err := os.Stat(path); err != nil {
		log.Printf("image not found: %v", err)
		os.Exit(1)
	}

	cfg := config.Load()

	backend := model.Resolve(model.DefaultCandidates(cfg.ModelDir))
	defer backend.Close()
	if !backend.Available() {
		log.Printf("no detection model available, relying on heuristics")
	}
	primary := model.NewPrimaryDetector(backend, model.LoadLabels(cfg.NamesPath), detect.PrimaryConfig{
		ConfidenceThreshold: cfg.ConfidenceThreshold,
		NMSThreshold:        cfg.NMSThreshold,
	})

	analyzer := analyze.New(primary)
	analyzer.SetMinPrimary(cfg.MinDetections)
	result := analyzer.Analyze(path)

	if *outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			log.Fatalf("encoding result: %v", err)
		}
	} else {
		printResult(result)
	}

	url := cfg.WebhookURL
	if *webhookURL != "" {
		url = *webhookURL
	}
	if url != "" {
		img := loadForThumbnail(path)
		client := notify.NewClient(url, cfg.WebhookImage)
		if err := client.Send(result, img, backend.Name()); err != nil {
			log.Printf("webhook notification failed: %v", err)
		}
	}
}

// printResult writes the human readable report to stdout.
func printResult(r *analyze.Result) {
	fmt.Println(r.Summary)
	fmt.Printf("  photo:      %s\n", r.PhotoPath)
	fmt.Printf("  latency:    %dms\n", r.LatencyMs)
	fmt.Printf("  confidence: %.2f\n", r.OverallConfidence)
	for _, d := range r.Details {
		fmt.Printf("  - %s (%s) %.2f at [%d, %d, %d, %d]\n",
			d.Class, d.Category, d.Confidence,
			d.Box.X, d.Box.Y, d.Box.Width, d.Box.Height)
	}
}

// loadForThumbnail reloads the photo for webhook embedding; a decode
// failure just means the notification ships without a preview.
func loadForThumbnail(path string) image.Image {
	img, err := imaging.Load(path)
	if err != nil {
		return nil
	}
	return img
}

func usage() {
	fmt.Fprintln(os.Stderr, "scene-analyze - single photo scene analysis")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage: scene-analyze [options] <image-path>")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --output-json    Print the result as JSON")
	fmt.Fprintln(os.Stderr, "  --webhook URL    POST the result to URL")
	fmt.Fprintln(os.Stderr, "  --version        Print version information")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Environment variables:")
	fmt.Fprintln(os.Stderr, "  MODEL_DIR              directory with yolov3[-tiny] weights+config (default /opt/yolo)")
	fmt.Fprintln(os.Stderr, "  NAMES_PATH             class-name file (default /opt/yolo/coco.names)")
	fmt.Fprintln(os.Stderr, "  CONFIDENCE_THRESHOLD   minimum model score (default 0.5)")
	fmt.Fprintln(os.Stderr, "  NMS_THRESHOLD          overlap suppression IoU (default 0.4)")
	fmt.Fprintln(os.Stderr, "  MIN_DETECTIONS         model results before heuristics kick in (default 2)")
	fmt.Fprintln(os.Stderr, "  WEBHOOK_URL            POST results to this URL")
	fmt.Fprintln(os.Stderr, "  WEBHOOK_IMAGE          embed a thumbnail in webhook payloads (default true)")
}
