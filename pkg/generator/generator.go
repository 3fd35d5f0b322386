// Package generator fans one icon description out to every style in the
// catalog and joins the results.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dskvich/kintone-icon-generator/pkg/domain"
	"github.com/dskvich/kintone-icon-generator/pkg/logger"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

const DefaultCallTimeout = 60 * time.Second

type imageProvider interface {
	Ready(model string) error
	GenerateImage(ctx context.Context, prompt string, model string) (string, error)
}

type Generator struct {
	images      imageProvider
	model       string
	styles      []domain.Style
	callTimeout time.Duration
}

type Option func(*Generator)

func WithStyles(styles []domain.Style) Option {
	return func(g *Generator) { g.styles = styles }
}

func WithCallTimeout(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.callTimeout = d
		}
	}
}

func New(images imageProvider, model string, opts ...Option) (*Generator, error) {
	if images == nil {
		return nil, errors.New("image provider is required")
	}

	g := &Generator{
		images:      images,
		model:       model,
		styles:      domain.Styles,
		callTimeout: DefaultCallTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate returns one image per style in catalog order, or a single error.
// All calls are allowed to settle before the outcome is decided; when more
// than one style fails, the most severe failure is returned.
func (g *Generator) Generate(ctx context.Context, description string) ([]domain.GeneratedImage, error) {
	req := domain.GenerationRequest{Description: description}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Generating icon", "description", req.Description, "model", g.model, "styles", len(g.styles))

	if err := g.images.Ready(g.model); err != nil {
		slog.ErrorContext(ctx, "Image provider is not ready", logger.Err(err))
		return nil, err
	}

	images := make([]domain.GeneratedImage, len(g.styles))
	errs := make([]error, len(g.styles))

	// Closures never return an error: a first-error cancel would let a fast
	// failure beat a 402 from a slower style.
	var eg errgroup.Group
	for i, style := range g.styles {
		eg.Go(func() error {
			img, err := g.generateStyle(ctx, style, req.Description)
			if err != nil {
				errs[i] = err
				return nil
			}
			images[i] = img
			return nil
		})
	}
	_ = eg.Wait()

	var merr *multierror.Error
	for _, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		primary := mostSevere(merr.Errors)
		slog.ErrorContext(ctx, "Icon generation failed",
			"failed_styles", len(merr.Errors),
			"status", domain.HTTPStatus(primary),
			logger.Err(err),
		)
		return nil, primary
	}

	slog.InfoContext(ctx, "All styles generated successfully", "count", len(images))

	return images, nil
}

func (g *Generator) generateStyle(ctx context.Context, style domain.Style, description string) (domain.GeneratedImage, error) {
	ctx, cancel := context.WithTimeout(ctx, g.callTimeout)
	defer cancel()

	start := time.Now()
	url, err := g.images.GenerateImage(ctx, style.Prompt(description), g.model)
	if err != nil {
		if errors.Is(err, domain.ErrNoImage) {
			err = &domain.NoImageError{Style: style.Name, Err: err}
		}

		attrs := []any{"style", style.Name, "elapsed", time.Since(start), logger.Err(err)}
		var upErr *domain.UpstreamError
		if errors.As(err, &upErr) {
			attrs = append(attrs, "status", upErr.StatusCode, "body", upErr.Body)
		}
		slog.ErrorContext(ctx, "AI gateway error", attrs...)

		return domain.GeneratedImage{}, err
	}

	slog.DebugContext(ctx, "Style generated", "style", style.Name, "elapsed", time.Since(start))

	return domain.GeneratedImage{Style: style.Name, ImageURL: url}, nil
}

// mostSevere keeps catalog order among failures of equal severity.
func mostSevere(errs []error) error {
	var primary error
	for _, err := range errs {
		if domain.Severity(err) > domain.Severity(primary) {
			primary = err
		}
	}
	if primary == nil {
		return fmt.Errorf("icon generation failed: %w", domain.ErrUpstream)
	}
	return primary
}
