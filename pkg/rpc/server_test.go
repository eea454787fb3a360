package rpc

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/numveil/numveil/pkg/config"
	"github.com/numveil/numveil/pkg/masking"
	"github.com/numveil/numveil/pkg/services"
	maskv1 "github.com/numveil/numveil/proto"
	testdb "github.com/numveil/numveil/test/database"
)

func setupTestServer(t *testing.T) *Server {
	dbClient := testdb.NewTestClient(t)

	cfg := &config.Config{
		Defaults: config.Defaults{Enabled: true},
		Sites:    config.NewSiteRegistry(nil),
	}
	settings := services.NewSettingsService(dbClient.Client, cfg)
	return NewServer(services.NewMaskService(masking.NewEngine(), settings))
}

func TestServer_Mask(t *testing.T) {
	srv := setupTestServer(t)
	ctx := context.Background()

	resp, err := srv.Mask(ctx, &maskv1.MaskRequest{
		Text:     "Revenue: 10M",
		Sequence: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, "Revenue: •••", resp.GetMasked())
	assert.Equal(t, uint64(7), resp.GetSequence())
}

func TestServer_MaskExplicitConfig(t *testing.T) {
	srv := setupTestServer(t)

	resp, err := srv.Mask(context.Background(), &maskv1.MaskRequest{
		Text:   "Revenue: 10M",
		Config: &maskv1.MaskConfig{Enabled: false},
	})
	require.NoError(t, err)
	assert.Equal(t, "Revenue: 10M", resp.GetMasked())
}

// fakeMaskStream drives MaskStream without a network connection.
type fakeMaskStream struct {
	grpc.ServerStream

	ctx       context.Context
	requests  []*maskv1.MaskRequest
	responses []*maskv1.MaskResponse
}

func (f *fakeMaskStream) Context() context.Context { return f.ctx }

func (f *fakeMaskStream) Recv() (*maskv1.MaskRequest, error) {
	if len(f.requests) == 0 {
		return nil, io.EOF
	}
	req := f.requests[0]
	f.requests = f.requests[1:]
	return req, nil
}

func (f *fakeMaskStream) Send(resp *maskv1.MaskResponse) error {
	f.responses = append(f.responses, resp)
	return nil
}

func TestServer_MaskStream(t *testing.T) {
	srv := setupTestServer(t)

	stream := &fakeMaskStream{
		ctx: context.Background(),
		requests: []*maskv1.MaskRequest{
			{Text: "twenty visitors", Sequence: 1},
			{Text: "Nov 22, 2025", Sequence: 2},
			{Text: "Price: $10,000.50", Sequence: 3},
		},
	}

	require.NoError(t, srv.MaskStream(stream))
	require.Len(t, stream.responses, 3)

	assert.Equal(t, "•••••• visitors", stream.responses[0].GetMasked())
	assert.Equal(t, uint64(1), stream.responses[0].GetSequence())

	assert.Equal(t, "Nov 22, 2025", stream.responses[1].GetMasked(), "dates survive masking")

	assert.Equal(t, "Price: $••,•••.••", stream.responses[2].GetMasked())
	assert.Equal(t, uint64(3), stream.responses[2].GetSequence())
}
