package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/numveil/numveil/pkg/masking"
)

// maxBatchConcurrency bounds the worker goroutines spawned per batch.
// A page snapshot can carry thousands of text nodes; masking each one is
// CPU-bound regexp work, so fan-out beyond a handful of workers only adds
// scheduling overhead.
const maxBatchConcurrency = 8

// MaskInput carries one masking request. Config, when set, is used as-is;
// otherwise the effective configuration is resolved from the domain.
type MaskInput struct {
	Text   string
	Domain string
	Config *masking.Config
}

// MaskService applies the masking engine to caller text. Both serving
// surfaces (the HTTP API used by the DOM walker and the gRPC stream used
// by the canvas interceptor) go through this type, so configuration
// resolution and engine gating behave identically for both.
type MaskService struct {
	engine   *masking.Engine
	settings *SettingsService
}

// NewMaskService creates a new MaskService.
func NewMaskService(engine *masking.Engine, settings *SettingsService) *MaskService {
	if engine == nil {
		panic("NewMaskService: engine must not be nil")
	}
	if settings == nil {
		panic("NewMaskService: settings must not be nil")
	}
	return &MaskService{
		engine:   engine,
		settings: settings,
	}
}

// MaskText masks input.Text under the explicit or resolved configuration.
// A disabled configuration passes the text through unchanged — that check
// lives inside the engine, not here.
func (s *MaskService) MaskText(ctx context.Context, input MaskInput) (string, error) {
	cfg, err := s.ResolveConfig(ctx, input)
	if err != nil {
		return "", err
	}
	return s.engine.Mask(input.Text, cfg), nil
}

// MaskBatch masks every text in texts under a single configuration,
// resolved once for the whole batch. Results are returned in input order.
// The DOM walker uses this to submit one page snapshot per request instead
// of one request per text node.
func (s *MaskService) MaskBatch(ctx context.Context, domain string, cfg *masking.Config, texts []string) ([]string, error) {
	resolved, err := s.ResolveConfig(ctx, MaskInput{Domain: domain, Config: cfg})
	if err != nil {
		return nil, err
	}

	masked := make([]string, len(texts))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxBatchConcurrency)
	for i, text := range texts {
		g.Go(func() error {
			masked[i] = s.engine.Mask(text, resolved)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return masked, nil
}

// ResolveConfig returns the configuration MaskText would use for input.
func (s *MaskService) ResolveConfig(ctx context.Context, input MaskInput) (masking.Config, error) {
	if input.Config != nil {
		return *input.Config, nil
	}
	cfg, err := s.settings.Resolve(ctx, input.Domain)
	if err != nil {
		return masking.Config{}, fmt.Errorf("failed to resolve config for %q: %w", input.Domain, err)
	}
	return cfg, nil
}
