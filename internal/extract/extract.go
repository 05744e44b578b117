// Package extract turns an uploaded resume document into plain text.
package extract

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"

	"github.com/justsurfingit/job-mailer/internal/apperrors"
)

const MimePDF = "application/pdf"

// Text reads the PDF at path and returns its text in content order.
// Any parser failure, including a parser panic on malformed input, is
// reported as an extraction error and no partial text is returned.
func Text(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = apperrors.Extraction(fmt.Errorf("pdf parser panic: %v", r))
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", apperrors.Extraction(fmt.Errorf("open %s: %w", path, err))
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", apperrors.Extraction(fmt.Errorf("read text: %w", err))
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", apperrors.Extraction(fmt.Errorf("copy text: %w", err))
	}
	return buf.String(), nil
}
