package out

import (
	"context"
	"fmt"

	reportout "mealcoach/internal/modules/report/port/out"
	"rsc.io/pdf"
)

// LocalPDFReader extracts one line per text-showing operator. Page.Content
// is not used because it needs font widths to rebuild spacing, and the
// standard fonts carry none.
type LocalPDFReader struct{}

func NewLocalPDFReader() reportout.DocumentReader {
	return &LocalPDFReader{}
}

func (r *LocalPDFReader) ReadLines(_ context.Context, path string) (lines []string, pages int, err error) {
	// rsc.io/pdf panics on some malformed input instead of returning errors.
	defer func() {
		if rec := recover(); rec != nil {
			lines, pages, err = nil, 0, fmt.Errorf("parse pdf %s: %v", path, rec)
		}
	}()

	doc, err := pdf.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open pdf: %w", err)
	}
	total := doc.NumPage()
	for i := 1; i <= total; i++ {
		p := doc.Page(i)
		if p.V.IsNull() {
			return nil, total, fmt.Errorf("pdf page %d is null", i)
		}
		lines = append(lines, pageLines(p.V.Key("Contents"))...)
	}
	return lines, total, nil
}

func pageLines(contents pdf.Value) []string {
	if contents.Kind() == pdf.Array {
		var lines []string
		for i := 0; i < contents.Len(); i++ {
			lines = append(lines, pageLines(contents.Index(i))...)
		}
		return lines
	}
	if contents.Kind() != pdf.Stream {
		return nil
	}

	var lines []string
	pdf.Interpret(contents, func(stk *pdf.Stack, op string) {
		n := stk.Len()
		args := make([]pdf.Value, n)
		for i := n - 1; i >= 0; i-- {
			args[i] = stk.Pop()
		}
		switch op {
		case "Tj", "'", "\"":
			if n > 0 {
				lines = append(lines, decodeCP1252(args[n-1].RawString()))
			}
		case "TJ":
			if n == 0 {
				return
			}
			var raw string
			arr := args[0]
			for j := 0; j < arr.Len(); j++ {
				if item := arr.Index(j); item.Kind() == pdf.String {
					raw += item.RawString()
				}
			}
			lines = append(lines, decodeCP1252(raw))
		}
	})
	return lines
}
