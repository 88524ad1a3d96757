package pdf

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// OutputTitle is the document title attached to extraction results.
const OutputTitle = "Extracted Pages"

// ExtractPages builds a new PDF from src containing exactly the given
// 1-based pages, in the given order, duplicates included. Every page
// number is validated against the source page count before any copying
// happens, so a failure never leaves partial output.
func ExtractPages(src []byte, pages []int) ([]byte, error) {
	ctx, err := readContext(src)
	if err != nil {
		return nil, err
	}

	if bad := pagesOutOfRange(pages, ctx.PageCount); len(bad) > 0 {
		return nil, &OutOfRangeError{Pages: bad, TotalPages: ctx.PageCount}
	}

	// The page cache lets the same source page appear more than once in
	// the output.
	out, err := pdfcpu.ExtractPages(ctx, pages, true)
	if err != nil {
		return nil, fmt.Errorf("copying pages: %w", err)
	}

	if err := attachTitle(out, OutputTitle); err != nil {
		return nil, fmt.Errorf("attaching metadata: %w", err)
	}

	var buf bytes.Buffer
	if err := api.WriteContext(out, &buf); err != nil {
		return nil, fmt.Errorf("serializing output document: %w", err)
	}
	return buf.Bytes(), nil
}

// PageCount reports the number of pages in src. It shares the decode and
// encryption error taxonomy with ExtractPages so the caller can surface
// problems right after upload.
func PageCount(src []byte) (int, error) {
	ctx, err := readContext(src)
	if err != nil {
		return 0, err
	}
	return ctx.PageCount, nil
}

// attachTitle writes the document title into the output's Info dict. The
// serializer fills in the remaining info entries (producer, dates) itself.
func attachTitle(ctx *model.Context, title string) error {
	d := types.NewDict()
	d.InsertString("Title", title)

	ir, err := ctx.IndRefForNewObject(d)
	if err != nil {
		return err
	}
	ctx.Info = ir
	return nil
}

// readContext parses src into a pdfcpu context. The default configuration
// carries empty user and owner passwords, so documents encrypted with an
// empty password open here; anything needing a real password fails.
func readContext(src []byte) (*model.Context, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(src), conf)
	if err != nil {
		if hasEncryptDict(src) {
			return nil, &EncryptedDocumentError{Err: err}
		}
		return nil, &DecodeError{Err: err}
	}
	return ctx, nil
}

// hasEncryptDict reports whether the document carries an encryption
// dictionary reference in one of its trailers. Classifying read failures
// by document structure keeps the error taxonomy independent of how the
// underlying library words its password errors.
func hasEncryptDict(src []byte) bool {
	return bytes.Contains(src, []byte("/Encrypt"))
}

// pagesOutOfRange returns every entry outside [1, totalPages], in request
// order, so the error can name all offenders at once.
func pagesOutOfRange(pages []int, totalPages int) []int {
	var bad []int
	for _, p := range pages {
		if p < 1 || p > totalPages {
			bad = append(bad, p)
		}
	}
	return bad
}
