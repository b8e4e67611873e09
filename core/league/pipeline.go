package league

import (
	"context"
	"time"

	"github.com/FocuswithJustin/Standings/internal/logging"
	"github.com/FocuswithJustin/Standings/internal/source"
)

// RunResult summarizes one pipeline run.
type RunResult struct {
	Records int    // match records parsed from the source
	Teams   int    // distinct teams in the table
	Digest  string // BLAKE3 digest of the written report
}

// Run executes the full pipeline: read the source, parse match records,
// accumulate points, rank, and write the report to dest. Each stage
// completes before the next begins, and any stage error aborts the rest
// of the pipeline with no output written.
func Run(ctx context.Context, input, dest string) (*RunResult, error) {
	start := time.Now()
	data, err := source.Read(input)
	if err != nil {
		return nil, err
	}
	logging.StageComplete(ctx, "read", time.Since(start), "source", input, "bytes", len(data))

	start = time.Now()
	records := Parse(data)
	logging.StageComplete(ctx, "parse", time.Since(start), "records", len(records))

	start = time.Now()
	points, err := AccumulatePoints(records)
	if err != nil {
		return nil, err
	}
	table := Rank(points)
	logging.StageComplete(ctx, "rank", time.Since(start), "teams", len(points))

	digest, err := WriteReport(table, dest)
	if err != nil {
		return nil, err
	}
	logging.InfoContext(ctx, "report_written",
		"destination", dest,
		"records", len(records),
		"teams", len(points),
		"blake3", digest,
	)

	return &RunResult{
		Records: len(records),
		Teams:   len(points),
		Digest:  digest,
	}, nil
}
