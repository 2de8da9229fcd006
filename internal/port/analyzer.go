package port

import (
	"context"

	"seokit/internal/domain"
)

// Analyzer runs the full analysis suite over one input.
type Analyzer interface {
	// Analyze scores text; comparison is optional and only affects TF-IDF.
	Analyze(ctx context.Context, text string, comparison *string) (*domain.Report, error)
}
