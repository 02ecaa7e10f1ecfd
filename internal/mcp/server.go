// Package mcp exposes the robust statistics as Model Context Protocol tools
// over stdio.
package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

const (
	serverName    = "segstats"
	serverVersion = "0.1.0"
)

// Server wraps the MCP SDK server with the statistics tools registered.
type Server struct {
	inner       *mcpsdk.Server
	trimPercent int
	tools       []string
}

// NewServer creates a server. trimPercent is used when a call omits trim_percent.
func NewServer(trimPercent int) *Server {
	s := &Server{
		inner: mcpsdk.NewServer(&mcpsdk.Implementation{
			Name:    serverName,
			Version: serverVersion,
		}, nil),
		trimPercent: trimPercent,
	}

	mcpsdk.AddTool(s.inner, &mcpsdk.Tool{
		Name:        ToolMedianMAD,
		Description: medianMADDescription,
	}, s.handleMedianMAD)
	mcpsdk.AddTool(s.inner, &mcpsdk.Tool{
		Name:        ToolRobustMeanStddev,
		Description: robustMeanStddevDescription,
	}, s.handleRobustMeanStddev)
	mcpsdk.AddTool(s.inner, &mcpsdk.Tool{
		Name:        ToolAccumulate,
		Description: accumulateDescription,
	}, s.handleAccumulate)
	s.tools = []string{ToolMedianMAD, ToolRobustMeanStddev, ToolAccumulate}

	return s
}

// ToolNames returns the registered tool names in registration order.
func (s *Server) ToolNames() []string {
	return append([]string(nil), s.tools...)
}

// Run serves on stdio until the context is canceled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	log.Info().Int("trimPercent", s.trimPercent).Msg("MCP server starting stdio loop")
	return s.RunWithTransport(ctx, &mcpsdk.StdioTransport{})
}

// RunWithTransport serves on the given transport.
func (s *Server) RunWithTransport(ctx context.Context, transport mcpsdk.Transport) error {
	if err := s.inner.Run(ctx, transport); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

const (
	medianMADDescription = "Median and median absolute deviation of values[start:stop]. " +
		"start and stop default to the whole input."

	robustMeanStddevDescription = "Trimmed mean and standard deviation of values[start:stop]. " +
		"trim_percent is the total share of the distribution excluded, split between both tails."

	accumulateDescription = "Trimmed mean and standard deviation folded into a running accumulator. " +
		"Pass the accumulator returned by the previous call to aggregate across calls."
)
