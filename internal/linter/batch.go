package linter

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/logger"
)

// File is one input to a BatchRun call.
type File struct {
	Path       string
	Source     logger.Source
	SourceType js_ast.SourceType
}

// FileResult pairs a File's path with its lint Result.
type FileResult struct {
	Path   string
	Result Result
}

// BatchResult is the outcome of linting a whole file set: a run ID batch
// callers can use to correlate this run's diagnostics against a later one,
// and every file's result, sorted by (path, start, end, rule) for
// deterministic output regardless of how many workers ran.
type BatchResult struct {
	RunID   string
	Results []FileResult
}

// BatchRun lints files across a worker pool sized workers wide. Each worker
// parses, builds semantic tables for, and lints exactly one file at a time
// with its own parse tree and log — files never share state. Nodes are
// ordinary Go heap values; no internal/arena Arena is used. A per-file lint
// failure never cancels the rest of the batch: SetLimit bounds the worker
// count, and the context errgroup derives is discarded rather than used for
// first-error cancellation. Cancelling ctx does not stop the batch.
func BatchRun(ctx context.Context, files []File, opts Options, workers int) BatchResult {
	if workers <= 0 {
		workers = 1
	}

	var (
		mu      sync.Mutex
		results = make([]FileResult, 0, len(files))
	)

	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for _, f := range files {
		f := f
		fileOpts := opts
		fileOpts.SourceType = f.SourceType
		eg.Go(func() error {
			result := Run(f.Path, f.Source, fileOpts)
			mu.Lock()
			results = append(results, FileResult{Path: f.Path, Result: result})
			mu.Unlock()
			return nil
		})
	}
	// Errors are aggregated per-file as lint diagnostics inside Result, not
	// as errgroup failures, so Wait's return is always nil here; it still
	// blocks until every worker has finished.
	_ = eg.Wait()

	sort.Slice(results, func(i, j int) bool {
		return lessDeterministic(results[i], results[j])
	})

	return BatchResult{RunID: uuid.NewString(), Results: results}
}

// lessDeterministic orders two file results by (path, first message's
// start, end, rule code), giving the merged diagnostic order a stable,
// worker-count-independent sort.
func lessDeterministic(a, b FileResult) bool {
	if a.Path != b.Path {
		return a.Path < b.Path
	}
	am, aok := firstMsg(a.Result.Messages)
	bm, bok := firstMsg(b.Result.Messages)
	if !aok || !bok {
		return aok && !bok
	}
	if am.Data.Location == nil || bm.Data.Location == nil {
		return bm.Data.Location != nil
	}
	if am.Data.Location.Line != bm.Data.Location.Line {
		return am.Data.Location.Line < bm.Data.Location.Line
	}
	if am.Data.Location.Column != bm.Data.Location.Column {
		return am.Data.Location.Column < bm.Data.Location.Column
	}
	if am.Data.Location.Length != bm.Data.Location.Length {
		return am.Data.Location.Length < bm.Data.Location.Length
	}
	var ar, br string
	if c, ok := am.Data.UserDetail.(*logger.RuleCode); ok && c != nil {
		ar = c.Rule
	}
	if c, ok := bm.Data.UserDetail.(*logger.RuleCode); ok && c != nil {
		br = c.Rule
	}
	return ar < br
}

func firstMsg(msgs []logger.Msg) (logger.Msg, bool) {
	if len(msgs) == 0 {
		return logger.Msg{}, false
	}
	return msgs[0], true
}
