package crawler

import (
	"context"
	"time"
)

// Request describes one crawl: which platform to run and which channels to
// harvest. MaxVideos caps the number of collected entries per channel; zero
// means unlimited.
type Request struct {
	Platform string

	Channels []string

	MaxVideos   int
	Concurrency int

	// OutputPath receives the collected entries as a JSON array; empty
	// means stdout.
	OutputPath string
}

type Result struct {
	Platform     string         `json:"platform,omitempty"`
	StartedAt    int64          `json:"started_at,omitempty"`
	FinishedAt   int64          `json:"finished_at,omitempty"`
	Processed    int            `json:"processed,omitempty"`
	Succeeded    int            `json:"succeeded,omitempty"`
	Failed       int            `json:"failed,omitempty"`
	Videos       int            `json:"videos,omitempty"`
	FailureKinds map[string]int `json:"failure_kinds,omitempty"`
}

func NewResult(req Request) Result {
	return Result{
		Platform:  req.Platform,
		StartedAt: time.Now().Unix(),
	}
}

type Runner interface {
	Run(ctx context.Context, req Request) (Result, error)
}
