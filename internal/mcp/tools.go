package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"

	"segstats/internal/sample"
	"segstats/internal/stats"
)

// Tool names.
const (
	ToolMedianMAD        = "median_mad"
	ToolRobustMeanStddev = "robust_mean_stddev"
	ToolAccumulate       = "accumulate_mean_stddev"
)

// RangeInput selects values[start:stop].
type RangeInput struct {
	Values []float64 `json:"values"          jsonschema:"numeric sample"`
	Start  *int      `json:"start,omitempty" jsonschema:"first index, inclusive (default 0)"`
	Stop   *int      `json:"stop,omitempty"  jsonschema:"last index, exclusive (default len(values))"`
}

func (r RangeInput) bounds() (int, int) {
	start, stop := 0, len(r.Values)
	if r.Start != nil {
		start = *r.Start
	}
	if r.Stop != nil {
		stop = *r.Stop
	}
	return start, stop
}

// MomentsInput is the input of robust_mean_stddev.
type MomentsInput struct {
	Values      []float64 `json:"values"                 jsonschema:"numeric sample"`
	Start       *int      `json:"start,omitempty"        jsonschema:"first index, inclusive (default 0)"`
	Stop        *int      `json:"stop,omitempty"         jsonschema:"last index, exclusive (default len(values))"`
	TrimPercent *int      `json:"trim_percent,omitempty" jsonschema:"percentage of the sample to exclude, 0 to 99"`
}

// AccumulateInput is the input of accumulate_mean_stddev.
type AccumulateInput struct {
	Values      []float64          `json:"values"                 jsonschema:"numeric sample"`
	TrimPercent *int               `json:"trim_percent,omitempty" jsonschema:"percentage of the sample to exclude, 0 to 99"`
	Accumulator *stats.Accumulator `json:"accumulator,omitempty"  jsonschema:"running totals from a previous call"`
}

// AccumulateOutput carries the moments and the updated accumulator.
type AccumulateOutput struct {
	Moments     stats.Moments     `json:"moments"`
	Accumulator stats.Accumulator `json:"accumulator"`
}

func (s *Server) trim(p *int) int {
	if p == nil {
		return s.trimPercent
	}
	return *p
}

func (s *Server) handleMedianMAD(_ context.Context, _ *mcpsdk.CallToolRequest, in RangeInput) (*mcpsdk.CallToolResult, stats.OrderStats, error) {
	start, stop := in.bounds()
	out, err := stats.MedianMAD(in.Values, start, stop)
	if err != nil {
		return errorResult[stats.OrderStats](err)
	}
	log.Debug().Str("tool", ToolMedianMAD).Int("n", stop-start).Msg("Tool call")
	return jsonResult(out)
}

func (s *Server) handleRobustMeanStddev(_ context.Context, _ *mcpsdk.CallToolRequest, in MomentsInput) (*mcpsdk.CallToolResult, stats.Moments, error) {
	start, stop := RangeInput{Values: in.Values, Start: in.Start, Stop: in.Stop}.bounds()
	trim := s.trim(in.TrimPercent)
	out, err := stats.RobustMeanStddev(in.Values, start, stop, trim)
	if err != nil {
		return errorResult[stats.Moments](err)
	}
	log.Debug().Str("tool", ToolRobustMeanStddev).Int("n", stop-start).Int("trim", trim).Msg("Tool call")
	return jsonResult(out)
}

func (s *Server) handleAccumulate(_ context.Context, _ *mcpsdk.CallToolRequest, in AccumulateInput) (*mcpsdk.CallToolResult, AccumulateOutput, error) {
	var acc stats.Accumulator
	if in.Accumulator != nil {
		acc = *in.Accumulator
	}
	if err := acc.Validate(); err != nil {
		return errorResult[AccumulateOutput](fmt.Errorf("accumulator: %w", err))
	}
	m, err := acc.Add(sample.ToFloat32(in.Values), s.trim(in.TrimPercent))
	if err != nil {
		return errorResult[AccumulateOutput](err)
	}
	log.Debug().Str("tool", ToolAccumulate).Int("count", acc.Count).Msg("Tool call")
	return jsonResult(AccumulateOutput{Moments: m, Accumulator: acc})
}

func errorResult[Out any](err error) (*mcpsdk.CallToolResult, Out, error) {
	var zero Out
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, zero, nil
}

func jsonResult[Out any](value Out) (*mcpsdk.CallToolResult, Out, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return errorResult[Out](fmt.Errorf("encode result: %w", err))
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(data)},
		},
	}, value, nil
}
