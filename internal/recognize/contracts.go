package recognize

import "context"

// RawPage is one page's recognized text plus optional per-symbol
// recognition-confidence values in [0,1]. Produced once per page and
// consumed immediately by the MRZ extractor.
type RawPage struct {
	Text              string
	SymbolConfidences []float64
}

// Recognizer turns a page image into raw recognized text. The pipeline
// depends only on this interface; the vision-service SDK never leaks past
// this package.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (RawPage, error)
}
