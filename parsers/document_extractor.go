package parsers

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"baliance.com/gooxml/document"
)

// DocumentExtractor converts uploaded CV containers (PDF, DOCX, plain text)
// into plain text for the profile pipeline. Extraction is best-effort: an
// empty result is reported as an error so callers can skip the document
// rather than score an empty profile.
type DocumentExtractor struct{}

func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// ExtractText extracts plain text from in-memory document bytes.
// Supported type tags are "pdf", "docx" and "txt".
func (e *DocumentExtractor) ExtractText(data []byte, typeTag string) (string, error) {
	switch strings.ToLower(typeTag) {
	case "pdf":
		return e.extractPDFBytes(data)
	case "docx":
		return e.extractDocxBytes(data)
	case "txt":
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported document type: %s", typeTag)
	}
}

// ExtractFromFile determines the type from the extension and extracts text.
func (e *DocumentExtractor) ExtractFromFile(filePath string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filePath)), ".")
	switch ext {
	case "pdf":
		return e.extractPDFFile(filePath)
	case "docx":
		return e.extractDocxFile(filePath)
	case "txt":
		content, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %v", err)
		}
		return string(content), nil
	default:
		return "", fmt.Errorf("unsupported file format: .%s", ext)
	}
}

func (e *DocumentExtractor) extractPDFBytes(data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "cv-*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to stage PDF: %v", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to stage PDF: %v", err)
	}
	tmp.Close()
	return e.extractPDFFile(tmp.Name())
}

// extractPDFFile tries pdftotext first, then ps2ascii as a fallback.
func (e *DocumentExtractor) extractPDFFile(filePath string) (string, error) {
	if text, err := e.extractWithPdfToText(filePath); err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	if text, err := e.extractWithPs2Ascii(filePath); err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	return "", fmt.Errorf("failed to extract text from PDF using all available methods")
}

func (e *DocumentExtractor) extractWithPdfToText(filePath string) (string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return "", fmt.Errorf("pdftotext not available: %v", err)
	}

	tempFile := filePath + ".txt"
	defer os.Remove(tempFile)

	cmd := exec.Command("pdftotext", "-layout", filePath, tempFile)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("pdftotext failed: %v", err)
	}

	content, err := os.ReadFile(tempFile)
	if err != nil {
		return "", fmt.Errorf("failed to read extracted text: %v", err)
	}
	return string(content), nil
}

func (e *DocumentExtractor) extractWithPs2Ascii(filePath string) (string, error) {
	if _, err := exec.LookPath("ps2ascii"); err != nil {
		return "", fmt.Errorf("ps2ascii not available: %v", err)
	}

	cmd := exec.Command("ps2ascii", filePath)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("ps2ascii failed: %v", err)
	}
	return string(output), nil
}

func (e *DocumentExtractor) extractDocxBytes(data []byte) (string, error) {
	doc, err := document.Read(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %v", err)
	}
	return docxText(doc), nil
}

func (e *DocumentExtractor) extractDocxFile(filePath string) (string, error) {
	doc, err := document.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %v", err)
	}
	return docxText(doc), nil
}

// docxText flattens paragraphs and table cells into newline-separated text,
// matching how the screening pipeline expects resumes to read line by line.
func docxText(doc *document.Document) string {
	var b strings.Builder
	for _, para := range doc.Paragraphs() {
		for _, run := range para.Runs() {
			b.WriteString(run.Text())
		}
		b.WriteString("\n")
	}
	for _, table := range doc.Tables() {
		for _, row := range table.Rows() {
			for _, cell := range row.Cells() {
				for _, para := range cell.Paragraphs() {
					for _, run := range para.Runs() {
						b.WriteString(run.Text())
					}
					b.WriteString(" ")
				}
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
