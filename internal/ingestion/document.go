package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Supported document formats
const (
	FormatText = "text"
	FormatHTML = "html"
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

var formatsByExtension = map[string]string{
	"":          FormatText,
	".txt":      FormatText,
	".text":     FormatText,
	".md":       FormatText,
	".markdown": FormatText,
	".html":     FormatHTML,
	".htm":      FormatHTML,
	".pdf":      FormatPDF,
	".docx":     FormatDOCX,
}

// DetectFormat maps a file path to a document format by extension
func DetectFormat(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := formatsByExtension[ext]
	if !ok {
		return "", &UnsupportedFormatError{Path: path, Extension: ext}
	}
	return format, nil
}

// LoadFile reads a document and returns its cleaned plain text
func LoadFile(path string) (string, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to stat file: %w", err)
	}

	var text string
	switch format {
	case FormatHTML:
		text, err = extractHTMLFile(path)
	case FormatPDF:
		text, err = extractPDFFile(path)
	case FormatDOCX:
		text, err = extractDocxFile(path)
	default:
		var content []byte
		content, err = os.ReadFile(path)
		if err != nil {
			err = fmt.Errorf("failed to read file: %w", err)
		}
		text = string(content)
	}
	if err != nil {
		return "", err
	}

	return CleanText(text), nil
}

func extractHTMLFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return "", &ExtractionError{Format: FormatHTML, Cause: err}
	}
	return HTMLText(doc), nil
}

// ExtractHTMLText returns the visible text of an HTML document
func ExtractHTMLText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &ExtractionError{Format: FormatHTML, Cause: err}
	}
	return CleanText(HTMLText(doc)), nil
}

// HTMLText collects text nodes of doc separated by spaces, skipping
// script and style content
func HTMLText(doc *goquery.Document) string {
	doc.Find("script, style, noscript, template").Remove()

	var sb strings.Builder
	collectText(doc.Selection, &sb)
	return sb.String()
}

func collectText(sel *goquery.Selection, sb *strings.Builder) {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == "#text" {
			sb.WriteString(s.Text())
			sb.WriteString(" ")
			return
		}
		collectText(s, sb)
	})
}

func extractPDFFile(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractionError{Format: FormatPDF, Cause: err}
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{Format: FormatPDF, Cause: fmt.Errorf("page %d: %w", i, err)}
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDocxFile(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", &ExtractionError{Format: FormatDOCX, Cause: err}
	}
	defer func() { _ = doc.Close() }()

	return docxXMLText(doc.Editable().GetContent())
}

// docxXMLText turns WordprocessingML into plain text. Runs inside a paragraph
// are joined directly; paragraphs, breaks and tabs become whitespace.
func docxXMLText(content string) (string, error) {
	replacer := strings.NewReplacer(
		"</w:p>", "</w:p>\n",
		"<w:br/>", "\n",
		"<w:tab/>", " ",
	)
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(replacer.Replace(content)))
	if err != nil {
		return "", &ExtractionError{Format: FormatDOCX, Cause: err}
	}
	return parsed.Text(), nil
}
