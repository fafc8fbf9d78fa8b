package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/voyagedesk/passport-tracker/internal/mrz"
	"github.com/voyagedesk/passport-tracker/internal/recognize"
)

// PageResult is the per-page outcome of document extraction: either decoded
// fields or an error message, never both. One result per page, ordered by
// page number.
type PageResult struct {
	PageNumber int
	Fields     *mrz.Fields
	Err        string
}

// OK reports whether the page decoded successfully.
func (r PageResult) OK() bool {
	return r.Err == "" && r.Fields != nil
}

// Orchestrator drives recognition and MRZ extraction across every page of a
// multi-page document. Pages are processed sequentially; a page failure
// never aborts the document.
type Orchestrator struct {
	rec    recognize.Recognizer
	ex     *mrz.Extractor
	logger *slog.Logger
}

func NewOrchestrator(rec recognize.Recognizer, ex *mrz.Extractor, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{rec: rec, ex: ex, logger: logger}
}

// ProcessDocument returns exactly one PageResult per page, 1-based and in
// order, regardless of individual page failures. The returned error is
// non-nil only when ctx is cancelled; in that case pages not yet started are
// omitted and results already appended are left untouched.
func (o *Orchestrator) ProcessDocument(ctx context.Context, pages [][]byte) ([]PageResult, error) {
	results := make([]PageResult, 0, len(pages))
	for i, image := range pages {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, o.processPage(ctx, i+1, image))
	}
	return results, nil
}

func (o *Orchestrator) processPage(ctx context.Context, pageNumber int, image []byte) (res PageResult) {
	res = PageResult{PageNumber: pageNumber}

	// Unexpected faults stay page-scoped: remaining pages must still run.
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("page extraction panicked", "page", pageNumber, "panic", r)
			res.Fields = nil
			res.Err = fmt.Sprintf("internal error: %v", r)
		}
	}()

	page, err := o.rec.Recognize(ctx, image)
	if err != nil {
		o.logger.Warn("page recognition failed", "page", pageNumber, "error", err)
		res.Err = err.Error()
		return res
	}

	fields, err := o.ex.Extract(page.Text)
	if err != nil {
		o.logger.Warn("mrz extraction failed", "page", pageNumber, "error", err)
		res.Err = err.Error()
		return res
	}

	fields.ConfidenceScore = meanConfidence(page.SymbolConfidences)
	res.Fields = fields
	return res
}

// meanConfidence is the arithmetic mean of the page's symbol confidences,
// 0.0 when the recognizer supplied none.
func meanConfidence(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
