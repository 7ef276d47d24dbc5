package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/soap-notes/internal/record"
)

// Processor turns one media file into a stored SOAP record
type Processor interface {
	Process(ctx context.Context, mediaPath string) error
	Run(ctx context.Context, mediaPath string) (record.MediaRecord, error)
}
