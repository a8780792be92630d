// Package build sequences a full documentation build: directory
// classification, per-language docset fan-out, shared-file copy, and
// navigation config transformation.
package build

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docfanout/internal/classify"
	"git.home.luguber.info/inful/docfanout/internal/docset"
	"git.home.luguber.info/inful/docfanout/internal/language"
	"git.home.luguber.info/inful/docfanout/internal/logfields"
	"git.home.luguber.info/inful/docfanout/internal/metrics"
	"git.home.luguber.info/inful/docfanout/internal/navigation"
	"git.home.luguber.info/inful/docfanout/internal/page"
	"git.home.luguber.info/inful/docfanout/internal/preprocess"
	"git.home.luguber.info/inful/docfanout/internal/util/sets"
)

// Orchestrator runs full builds from a source root into a build root.
type Orchestrator struct {
	srcRoot   string
	buildRoot string
	builder   *docset.Builder
	probe     classify.ConditionalProbe
	recorder  metrics.Recorder
}

// NewOrchestrator wires the preprocess engine, page processor, and docset
// builder for the given roots.
func NewOrchestrator(srcRoot, buildRoot string) *Orchestrator {
	processor := page.NewProcessor(preprocess.Preprocess)
	return &Orchestrator{
		srcRoot:   srcRoot,
		buildRoot: buildRoot,
		builder:   docset.NewBuilder(srcRoot, buildRoot, processor),
		probe:     preprocess.HasConditionalBlocks,
		recorder:  metrics.NoopRecorder{},
	}
}

// WithRecorder injects a metrics recorder.
func (o *Orchestrator) WithRecorder(r metrics.Recorder) *Orchestrator {
	o.recorder = r
	return o
}

// DocsetResult records the outcome of one docset build.
type DocsetResult struct {
	Docset   string // output directory relative to the build root
	Language string // variant code, empty for unversioned docsets
	Stats    docset.Stats
}

// Report summarizes a completed full build.
type Report struct {
	ID                    string
	ConditionalDirs       []string
	Docsets               []DocsetResult
	SharedCopied          int
	NavigationTransformed bool
	Duration              time.Duration
}

// Run performs a full build. The build root is fully replaced: existing
// contents are deleted first. The conditional-directory set is computed once
// and is the single classification consumed by both the filesystem fan-out
// and the navigation transform.
func (o *Orchestrator) Run() (*Report, error) {
	start := time.Now()
	report := &Report{ID: uuid.NewString()}

	slog.Info("Starting documentation build",
		logfields.BuildID(report.ID),
		slog.String("source", o.srcRoot),
		slog.String("output", o.buildRoot))

	err := o.run(report)
	report.Duration = time.Since(start)
	o.recorder.ObserveBuildDuration(report.Duration)
	if err != nil {
		o.recorder.IncBuildOutcome("failed")
		return report, err
	}

	o.recorder.IncBuildOutcome("success")
	slog.Info("Build complete",
		logfields.BuildID(report.ID),
		slog.Int("docsets", len(report.Docsets)),
		logfields.DurationMS(float64(report.Duration.Milliseconds())))
	return report, nil
}

func (o *Orchestrator) run(report *Report) error {
	if err := o.clearBuildRoot(); err != nil {
		return err
	}

	topDirs, err := classify.TopLevelDirs(o.srcRoot)
	if err != nil {
		return err
	}

	conditionalDirs, err := classify.DetectConditionalDirs(o.srcRoot, o.probe)
	if err != nil {
		return err
	}
	report.ConditionalDirs = sets.Values(conditionalDirs)

	// Versioned fan-out: two variants per conditional directory, each writing
	// a disjoint subtree.
	for _, dir := range sets.Values(conditionalDirs) {
		for _, v := range language.Variants() {
			outputDir := dir + "/" + v.Segment
			if err := o.buildDocset(report, dir, outputDir, &v); err != nil {
				return err
			}
		}
	}

	// Unversioned builds for everything else.
	for _, dir := range sets.Values(topDirs) {
		if conditionalDirs.Has(dir) {
			continue
		}
		if err := o.buildDocset(report, dir, dir, nil); err != nil {
			return err
		}
	}

	shared, err := o.builder.CopyShared()
	if err != nil {
		return err
	}
	report.SharedCopied = shared

	return o.transformNavigation(report, conditionalDirs)
}

func (o *Orchestrator) buildDocset(report *Report, sourceDir, outputDir string, v *language.Variant) error {
	docsetStart := time.Now()
	stats, err := o.builder.BuildDir(sourceDir, outputDir, v)
	if err != nil {
		return err
	}
	o.recorder.ObserveDocsetDuration(outputDir, time.Since(docsetStart))
	o.recorder.AddFilesCopied(outputDir, stats.Copied)
	o.recorder.AddFilesSkipped(outputDir, stats.Skipped)

	lang := ""
	if v != nil {
		lang = v.Code
	}
	report.Docsets = append(report.Docsets, DocsetResult{Docset: outputDir, Language: lang, Stats: stats})
	return nil
}

func (o *Orchestrator) clearBuildRoot() error {
	if err := os.RemoveAll(o.buildRoot); err != nil {
		return fmt.Errorf("failed to clear build directory %s: %w", o.buildRoot, err)
	}
	if err := os.MkdirAll(o.buildRoot, 0o755); err != nil {
		return fmt.Errorf("failed to create build directory %s: %w", o.buildRoot, err)
	}
	return nil
}

// transformNavigation rewrites the navigation config using the same
// conditional set the fan-out consumed. A missing config is not an error.
func (o *Orchestrator) transformNavigation(report *Report, conditionalDirs sets.Set[string]) error {
	configPath := navigation.FindConfig(o.srcRoot)
	if configPath == "" {
		slog.Info("No navigation config found, skipping navigation transform")
		return nil
	}

	cfg, err := navigation.Load(configPath)
	if err != nil {
		return err
	}

	transformed := navigation.Transform(cfg, conditionalDirs)
	outputPath := filepath.Join(o.buildRoot, "docs.json")
	if err := navigation.WriteJSON(outputPath, transformed); err != nil {
		return err
	}

	report.NavigationTransformed = true
	slog.Info("Navigation config transformed", logfields.Path(outputPath))
	return nil
}
