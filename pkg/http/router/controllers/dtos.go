package controllers

import (
	"github.com/lintang-b-s/meshload/pkg/accumulator"
	"github.com/lintang-b-s/meshload/pkg/metrics"
)

type topologyRequest struct {
	Width  int `json:"width" validate:"required,gt=0,lte=4096"`
	Height int `json:"height" validate:"required,gt=0,lte=4096"`
}

type topologyResponse struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}

type edgeLoadResponse struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Load float64 `json:"load"`
}

type violationResponse struct {
	Flow   int    `json:"flow"`
	Step   int    `json:"step"`
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason"`
}

type summaryResponse struct {
	LoadedEdges   int     `json:"loaded_edges"`
	TopologyEdges int     `json:"topology_edges"`
	TotalLoad     float64 `json:"total_load"`
	MaxLoad       float64 `json:"max_load"`
	MaxEdge       string  `json:"max_edge,omitempty"`
	MeanLoad      float64 `json:"mean_load"`
	Utilization   float64 `json:"utilization"`
}

type loadsResponse struct {
	Loads      []edgeLoadResponse  `json:"loads"`
	Violations []violationResponse `json:"violations"`
	Summary    summaryResponse     `json:"summary"`
}

func NewLoadsResponse(report *metrics.Report) loadsResponse {
	loads := make([]edgeLoadResponse, 0, len(report.GetLoads()))
	for _, el := range report.GetLoads() {
		loads = append(loads, edgeLoadResponse{
			From: el.Edge.From.String(),
			To:   el.Edge.To.String(),
			Load: el.Load,
		})
	}

	violations := make([]violationResponse, 0, len(report.GetViolations()))
	for _, v := range report.GetViolations() {
		violations = append(violations, NewViolationResponse(v))
	}

	s := report.GetSummary()
	summary := summaryResponse{
		LoadedEdges:   s.LoadedEdges,
		TopologyEdges: s.TopologyEdges,
		TotalLoad:     s.TotalLoad,
		MaxLoad:       s.MaxLoad,
		MeanLoad:      s.MeanLoad,
		Utilization:   s.Utilization,
	}
	if s.LoadedEdges > 0 {
		summary.MaxEdge = s.MaxEdge.String()
	}

	return loadsResponse{
		Loads:      loads,
		Violations: violations,
		Summary:    summary,
	}
}

func NewViolationResponse(v accumulator.Violation) violationResponse {
	return violationResponse{
		Flow:   v.FlowIndex,
		Step:   v.StepIndex,
		From:   v.Edge.From.String(),
		To:     v.Edge.To.String(),
		Reason: string(v.Reason),
	}
}

type errorResponse struct {
	Error struct {
		Code    string   `json:"code"`
		Message string   `json:"message"`
		Details []string `json:"details,omitempty"`
	} `json:"error"`
}
