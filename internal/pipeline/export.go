package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/soap-notes/internal/notedoc"
	"github.com/nguyentantai21042004/soap-notes/internal/record"
)

// renderNote writes rec as a .docx note under paths.notes
func (p *implProcessor) renderNote(ctx context.Context, rec record.MediaRecord) error {
	out := notedoc.Path(p.paths.Notes, rec.FileName)
	if err := notedoc.Render(rec, out); err != nil {
		return err
	}
	p.logger.Info(ctx, "Note document written: %s", out)
	return nil
}

// download copies the store file into paths.download
func (p *implProcessor) download(ctx context.Context) error {
	src := p.deps.Store.Path()
	if err := os.MkdirAll(p.paths.Download, 0755); err != nil {
		return fmt.Errorf("create download dir: %w", err)
	}
	dst := filepath.Join(p.paths.Download, filepath.Base(src))

	if err := copyFile(src, dst); err != nil {
		return err
	}
	p.logger.Info(ctx, "Store ready for download: %s", dst)
	return nil
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}
