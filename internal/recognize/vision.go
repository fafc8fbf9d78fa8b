package recognize

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/api/option"
	vision "google.golang.org/api/vision/v1"
)

// VisionRecognizer runs Google Cloud Vision document text detection.
type VisionRecognizer struct {
	svc    *vision.Service
	logger *slog.Logger
}

func NewVisionRecognizer(ctx context.Context, logger *slog.Logger, opts ...option.ClientOption) (*VisionRecognizer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	svc, err := vision.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("vision service: %w", err)
	}
	return &VisionRecognizer{svc: svc, logger: logger}, nil
}

// Recognize submits one page image and returns its full text annotation
// plus the per-symbol confidences collected from the annotation tree.
func (r *VisionRecognizer) Recognize(ctx context.Context, image []byte) (RawPage, error) {
	req := &vision.BatchAnnotateImagesRequest{
		Requests: []*vision.AnnotateImageRequest{{
			Image:    &vision.Image{Content: base64.StdEncoding.EncodeToString(image)},
			Features: []*vision.Feature{{Type: "DOCUMENT_TEXT_DETECTION"}},
		}},
	}

	resp, err := r.svc.Images.Annotate(req).Context(ctx).Do()
	if err != nil {
		r.logger.Error("vision annotate failed", "error", err)
		return RawPage{}, fmt.Errorf("vision annotate: %w", err)
	}
	if len(resp.Responses) == 0 {
		return RawPage{}, errors.New("vision: empty batch response")
	}
	ann := resp.Responses[0]
	if ann.Error != nil {
		return RawPage{}, fmt.Errorf("vision: %s", ann.Error.Message)
	}
	if ann.FullTextAnnotation == nil || ann.FullTextAnnotation.Text == "" {
		return RawPage{}, errors.New("no text detected on page")
	}

	page := RawPage{Text: ann.FullTextAnnotation.Text}
	for _, p := range ann.FullTextAnnotation.Pages {
		for _, block := range p.Blocks {
			for _, para := range block.Paragraphs {
				for _, word := range para.Words {
					for _, sym := range word.Symbols {
						page.SymbolConfidences = append(page.SymbolConfidences, sym.Confidence)
					}
				}
			}
		}
	}

	r.logger.Debug("page recognized", "text_bytes", len(page.Text), "symbols", len(page.SymbolConfidences))
	return page, nil
}
