// Package watch polls an ingress folder and converts every document that
// appears there into a long PNG in the output folder.
package watch

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/robfig/cron/v3"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// ConvertFunc converts one input document into the PNG at outputPath
type ConvertFunc func(inputPath, outputPath string) error

// Watcher scans IngressPath for .pdf and .mvle files and converts each one
// into OutputPath. A file is skipped when its output already exists and is
// not older than the input, so repeated scans are cheap.
type Watcher struct {
	IngressPath string
	OutputPath  string
	Interval    int // minutes between scans
	Convert     ConvertFunc
}

// Start runs one scan immediately and then schedules scans every Interval
// minutes. Overlapping runs are suppressed. The returned cron can be
// stopped by the caller on shutdown.
func (w *Watcher) Start() *cron.Cron {
	Logger.Info("Running ingress scan at startup", "path", w.IngressPath)
	go w.Scan()

	c := cron.New()
	var scanJob cron.Job
	scanJob = cron.FuncJob(func() { w.Scan() })
	scanJob = cron.NewChain(cron.SkipIfStillRunning(cron.DefaultLogger)).Then(scanJob) //ensure we don't kick off another if old one is still running
	c.AddJob(fmt.Sprintf("@every %dm", w.Interval), scanJob)
	Logger.Info("Adding ingress scan scheduler", "interval_minutes", w.Interval)
	c.Start()
	return c
}

// Scan walks the ingress folder once, converting every supported document.
// One bad file never aborts the scan.
func (w *Watcher) Scan() {
	// Add panic recovery to prevent entire application crash
	defer func() {
		if r := recover(); r != nil {
			Logger.Error("Panic recovered in ingress scan", "panic", r)
		}
	}()

	runID, err := newRunID()
	if err != nil {
		Logger.Error("Cannot generate run ID", "error", err)
		return
	}

	Logger.Info("Starting ingress scan", "path", w.IngressPath, "runID", runID)

	var ingressFiles []string
	err = filepath.Walk(w.IngressPath, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() && supportedExt(path) {
			ingressFiles = append(ingressFiles, path)
		}
		return nil
	})
	if err != nil {
		Logger.Error("Error scanning ingress folder", "error", err, "runID", runID)
		return
	}

	if len(ingressFiles) == 0 {
		Logger.Info("No files to process in ingress folder", "runID", runID)
		return
	}

	if err := os.MkdirAll(w.OutputPath, os.ModePerm); err != nil {
		Logger.Error("Unable to create output folder", "path", w.OutputPath, "error", err, "runID", runID)
		return
	}

	converted := 0
	skipped := 0
	failed := 0
	for _, filePath := range ingressFiles {
		outputPath := w.outputFor(filePath)
		if upToDate(filePath, outputPath) {
			Logger.Debug("Output up to date, skipping", "filePath", filePath, "runID", runID)
			skipped++
			continue
		}

		Logger.Info("Converting file", "filePath", filePath, "outputPath", outputPath, "runID", runID)
		if err := w.Convert(filePath, outputPath); err != nil {
			Logger.Error("Conversion failed", "filePath", filePath, "error", err, "runID", runID)
			failed++
			continue
		}
		converted++
	}

	Logger.Info("Ingress scan complete",
		"runID", runID,
		"converted", converted,
		"skipped", skipped,
		"failed", failed)
}

// outputFor maps an ingress file to its PNG in the output folder
func (w *Watcher) outputFor(inputPath string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(w.OutputPath, base+".png")
}

// supportedExt reports whether the file is a document the tool can convert
func supportedExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".mvle":
		return true
	}
	return false
}

// upToDate reports whether outputPath exists and is at least as new as
// inputPath
func upToDate(inputPath, outputPath string) bool {
	outInfo, err := os.Stat(outputPath)
	if err != nil {
		return false
	}
	inInfo, err := os.Stat(inputPath)
	if err != nil {
		return false
	}
	return !outInfo.ModTime().Before(inInfo.ModTime())
}

// newRunID stamps one scan run with a ULID
func newRunID() (ulid.ULID, error) {
	now := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(now.UnixNano())), 0)
	return ulid.New(ulid.Timestamp(now), entropy)
}
