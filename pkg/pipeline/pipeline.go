// Package pipeline runs the select → layout → render flow shared by the
// CLI commands and the HTTP server.
//
// # Architecture
//
// The pipeline has three stages:
//
//  1. Select: pick the left and right records from the active working set
//  2. Layout: compute geometry with [layout.Compute]
//  3. Render: produce SVG, PNG and/or JSON artifacts
//
// The working set itself is loaded by a [source.Resolver] and replaced
// atomically by [Runner.Reload]; a render in flight keeps using the dataset
// it started with.
//
// # Usage
//
//	runner := pipeline.NewRunner(set, assets, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Left:    "bb54",
//	    Right:   "speedy-pro",
//	    Mode:    layout.Touching,
//	    Formats: []string{"svg"},
//	})
//	svg := result.Artifacts["svg"]
//
// [layout.Compute]: github.com/matzehuels/wristscale/pkg/layout.Compute
// [source.Resolver]: github.com/matzehuels/wristscale/pkg/source.Resolver
package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/wristscale/pkg/catalog"
	"github.com/matzehuels/wristscale/pkg/errors"
	"github.com/matzehuels/wristscale/pkg/layout"
	"github.com/matzehuels/wristscale/pkg/render/styles"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 800.0

	// MinWidth is the smallest canvas width rendered; narrower requests are
	// widened to it.
	MinWidth = 320.0

	// NarrowHeight is the default canvas height below the narrow breakpoint.
	NarrowHeight = 220.0

	// WideHeight is the default canvas height at or above the breakpoint.
	WideHeight = 400.0

	// DefaultScale is the PNG pixel density.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// DefaultHeight returns the canvas height used when none is requested.
func DefaultHeight(width float64) float64 {
	if width < layout.NarrowBreakpoint {
		return NarrowHeight
	}
	return WideHeight
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one render request.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Selection
	Left  string `json:"left,omitempty"`
	Right string `json:"right,omitempty"`
	Swap  bool   `json:"swap,omitempty"`

	// Layout options
	Mode       layout.Mode `json:"mode,omitempty"`
	Width      float64     `json:"width,omitempty"`
	Height     float64     `json:"height,omitempty"`
	ViewportMm float64     `json:"viewport_mm,omitempty"`

	// Render options
	Formats   []string `json:"formats,omitempty"`
	Theme     string   `json:"theme,omitempty"`
	EmbedFont bool     `json:"embed_font,omitempty"`
	Scale     float64  `json:"scale,omitempty"`

	// Logger, when set, replaces the runner's logger for this call.
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// DatasetID is the generation of the working set the run used.
	DatasetID uuid.UUID

	// Source names where that working set came from.
	Source string

	// Left and Right are the compared records, after any swap.
	Left, Right catalog.Record

	// Geometry is the computed layout.
	Geometry layout.Geometry

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// AssetFailures lists items whose image fell back to the error fill.
	AssetFailures []AssetFailure

	// Stats contains timing information.
	Stats Stats
}

// AssetFailure describes one image that could not be loaded.
type AssetFailure struct {
	ItemID string
	Image  string
	Err    error
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Records    int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Mode == "" {
		o.Mode = layout.SideBySide
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Width > 0 && o.Width < MinWidth {
		o.Width = MinWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight(o.Width)
	}
	if o.ViewportMm == 0 {
		o.ViewportMm = layout.DefaultViewportMm
	}
}

// ValidateForLayout validates selection and canvas fields and sets defaults.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	mode, err := layout.ParseMode(string(o.Mode))
	if err != nil {
		return err
	}
	o.Mode = mode
	for _, id := range []string{o.Left, o.Right} {
		if id == "" {
			continue
		}
		if err := errors.ValidateItemID(id); err != nil {
			return err
		}
	}
	if err := errors.ValidateCanvas(o.Width, o.Height); err != nil {
		return err
	}
	return errors.ValidateViewport(o.ViewportMm)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Theme == "" {
		o.Theme = styles.Default
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if _, err := styles.Lookup(o.Theme); err != nil {
		return err
	}
	if !(o.Scale > 0) || o.Scale > 8 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be in (0, 8], got %v", o.Scale)
	}
	return nil
}

// String summarizes the options for logs.
func (o Options) String() string {
	return fmt.Sprintf("%s|%s mode=%s %gx%g@%gmm", o.Left, o.Right, o.Mode, o.Width, o.Height, o.ViewportMm)
}
