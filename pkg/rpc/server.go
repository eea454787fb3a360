// Package rpc implements the gRPC masking surface consumed by the
// extension's canvas draw interceptor. Canvas interception fires per draw
// call, far more often than DOM mutation batches, so this surface keeps
// one stream open instead of paying per-request HTTP overhead.
package rpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"

	"google.golang.org/grpc"

	maskv1 "github.com/numveil/numveil/proto"
	"github.com/numveil/numveil/pkg/masking"
	"github.com/numveil/numveil/pkg/services"
)

// Server implements maskv1.MaskServiceServer on top of the shared
// MaskService, so both serving surfaces invoke the engine identically.
type Server struct {
	maskv1.UnimplementedMaskServiceServer

	maskSvc    *services.MaskService
	grpcServer *grpc.Server
}

// NewServer creates a new gRPC masking server.
func NewServer(maskSvc *services.MaskService) *Server {
	if maskSvc == nil {
		panic("rpc.NewServer: maskSvc must not be nil")
	}
	return &Server{maskSvc: maskSvc}
}

// Mask masks a single text once.
func (s *Server) Mask(ctx context.Context, req *maskv1.MaskRequest) (*maskv1.MaskResponse, error) {
	masked, err := s.maskSvc.MaskText(ctx, toMaskInput(req))
	if err != nil {
		return nil, fmt.Errorf("mask failed: %w", err)
	}
	return &maskv1.MaskResponse{Masked: masked, Sequence: req.GetSequence()}, nil
}

// MaskStream masks a stream of texts over one connection.
func (s *Server) MaskStream(stream maskv1.MaskService_MaskStreamServer) error {
	ctx := stream.Context()
	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("stream recv failed: %w", err)
		}

		masked, err := s.maskSvc.MaskText(ctx, toMaskInput(req))
		if err != nil {
			return fmt.Errorf("mask failed: %w", err)
		}

		if err := stream.Send(&maskv1.MaskResponse{Masked: masked, Sequence: req.GetSequence()}); err != nil {
			return fmt.Errorf("stream send failed: %w", err)
		}
	}
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.grpcServer = grpc.NewServer()
	maskv1.RegisterMaskServiceServer(s.grpcServer, s)

	slog.Info("gRPC server listening", "addr", addr)
	return s.grpcServer.Serve(lis)
}

// Stop gracefully stops the gRPC server, draining open streams.
func (s *Server) Stop() {
	if s.grpcServer != nil {
		s.grpcServer.GracefulStop()
	}
}

// toMaskInput converts a proto request into the domain-level input.
// A nil config means "resolve from the domain's settings".
func toMaskInput(req *maskv1.MaskRequest) services.MaskInput {
	input := services.MaskInput{
		Text:   req.GetText(),
		Domain: req.GetDomain(),
	}
	if cfg := req.GetConfig(); cfg != nil {
		input.Config = &masking.Config{
			Enabled:       cfg.GetEnabled(),
			HideMagnitude: cfg.GetHideMagnitude(),
		}
	}
	return input
}
