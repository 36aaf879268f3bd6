package services

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// Fragments whose vertical positions differ by at most this many text-space
// units belong to the same visual line.
const lineTolerance = 5.0

const maxPDFSize = 50 * 1024 * 1024

// ExtractionResult is the outcome of a PDF text extraction. Every failure
// mode is reported through Error/Details; ExtractText never panics and never
// returns a Go error across its boundary.
type ExtractionResult struct {
	Success        bool   `json:"success"`
	Text           string `json:"text,omitempty"`
	Pages          int    `json:"pages,omitempty"`
	WordCount      int    `json:"word_count,omitempty"`
	CharacterCount int    `json:"character_count,omitempty"`
	Error          string `json:"error,omitempty"`
	Details        string `json:"details,omitempty"`
}

// ValidationResult reports whether extracted text looks like a resume.
type ValidationResult struct {
	IsValid         bool     `json:"is_valid"`
	Reason          string   `json:"reason,omitempty"`
	Suggestion      string   `json:"suggestion,omitempty"`
	Confidence      float64  `json:"confidence,omitempty"`
	FoundKeywords   []string `json:"found_keywords,omitempty"`
	KeywordCount    int      `json:"keyword_count,omitempty"`
	ExtractedLength int      `json:"extracted_length,omitempty"`
}

type TextExtractor interface {
	ExtractText(filePath string) ExtractionResult
	ValidateResumeContent(text string) ValidationResult
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	controlRe    = regexp.MustCompile("[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]")
	newlineRunRe = regexp.MustCompile(`\n\s*\n\s*\n+`)
)

// CleanText normalizes extracted text: whitespace runs collapse to a single
// space, control characters are stripped, runs of 3+ newlines collapse to
// exactly two, and the ends are trimmed. Idempotent.
func CleanText(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = controlRe.ReplaceAllString(text, "")
	text = newlineRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

func (e *textExtractor) ExtractText(filePath string) ExtractionResult {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return ExtractionResult{
			Error:   "File not found",
			Details: fmt.Sprintf("No file found at path: %s", filePath),
		}
	}
	if err != nil {
		return ExtractionResult{
			Error:   "Failed to extract text from file",
			Details: err.Error(),
		}
	}

	if !info.Mode().IsRegular() {
		return ExtractionResult{
			Error:   "Invalid file path - not a file",
			Details: "The provided path does not point to a valid file",
		}
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	if ext != ".pdf" {
		received := ext
		if received == "" {
			received = "unknown"
		}
		return ExtractionResult{
			Error:   "Only PDF files are supported",
			Details: fmt.Sprintf("Received format: %s", received),
		}
	}

	if info.Size() > maxPDFSize {
		return ExtractionResult{
			Error: "File too large",
			Details: fmt.Sprintf("File size %dMB exceeds maximum allowed size of %dMB",
				int(math.Round(float64(info.Size())/1024/1024)), maxPDFSize/1024/1024),
		}
	}

	text, pages, err := extractFromPDF(filePath)
	if err != nil {
		return ExtractionResult{
			Error:   "Failed to extract text from PDF",
			Details: err.Error(),
		}
	}

	text = CleanText(text)

	result := ExtractionResult{
		Success: true,
		Text:    text,
		Pages:   pages,
	}
	if len(text) > 0 {
		result.WordCount = len(strings.Fields(text))
		result.CharacterCount = utf8.RuneCountInString(text)
	}
	return result
}

// extractFromPDF walks the document page by page. A page whose content
// stream cannot be parsed is skipped with a warning; extraction continues
// for the remaining pages.
func extractFromPDF(filePath string) (text string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	totalPages := r.NumPage()
	text = collectPageText(totalPages, func(pageIndex int) (string, error) {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			return "", nil
		}
		return extractPage(page)
	})

	return text, totalPages, nil
}

// collectPageText runs extract for each page in order and joins the
// non-empty results. A page whose extraction fails is skipped with a
// warning; the remaining pages still contribute.
func collectPageText(totalPages int, extract func(pageIndex int) (string, error)) string {
	var builder strings.Builder

	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		pageText, err := extract(pageIndex)
		if err != nil {
			log.Printf("⚠️  Error extracting text from page %d: %v", pageIndex, err)
			continue
		}

		if strings.TrimSpace(pageText) != "" {
			builder.WriteString(pageText)
			builder.WriteString("\n\n")
		}
	}

	return strings.TrimSpace(builder.String())
}

func extractPage(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page content parse failed: %v", r)
		}
	}()

	content := page.Content()
	return assembleLines(content.Text), nil
}

// assembleLines orders positioned fragments top-to-bottom then left-to-right
// and reassembles them into lines. Fragments whose Y positions fall within
// the line tolerance band are treated as the same line.
func assembleLines(fragments []pdf.Text) string {
	if len(fragments) == 0 {
		return ""
	}

	sorted := make([]pdf.Text, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if math.Abs(a.Y-b.Y) > lineTolerance {
			return a.Y > b.Y
		}
		return a.X < b.X
	})

	var lines []string
	var current []string
	currentY := math.NaN()

	for _, fragment := range sorted {
		y := math.Round(fragment.Y)
		if math.IsNaN(currentY) || math.Abs(currentY-y) <= lineTolerance {
			current = append(current, fragment.S)
			currentY = y
			continue
		}
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
		}
		current = []string{fragment.S}
		currentY = y
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}

	return strings.Join(lines, "\n")
}

// resumeIndicators is the vocabulary of terms a resume is expected to
// contain. At least three must be present for the content to validate.
var resumeIndicators = []string{
	"experience", "education", "skills", "work", "employment",
	"university", "college", "degree", "certification", "project",
	"email", "phone", "address", "linkedin", "github", "resume",
	"objective", "summary", "achievements", "responsibilities",
	"career", "professional", "qualification", "internship",
}

const minResumeKeywords = 3

func (e *textExtractor) ValidateResumeContent(text string) ValidationResult {
	length := utf8.RuneCountInString(text)
	if length < 50 {
		return ValidationResult{
			Reason:          "Extracted text is too short to be a meaningful resume",
			ExtractedLength: length,
		}
	}

	textLower := strings.ToLower(text)
	var found []string
	for _, keyword := range resumeIndicators {
		if strings.Contains(textLower, keyword) {
			found = append(found, keyword)
		}
	}

	if len(found) < minResumeKeywords {
		return ValidationResult{
			Reason: fmt.Sprintf("Content does not appear to be a resume (found %d/%d resume keywords)",
				len(found), minResumeKeywords),
			Suggestion:    "Please ensure the file contains resume content with sections like experience, education, skills, etc.",
			FoundKeywords: found,
		}
	}

	return ValidationResult{
		IsValid:       true,
		Confidence:    math.Min(float64(len(found))/float64(len(resumeIndicators))*100, 100),
		FoundKeywords: found,
		KeywordCount:  len(found),
	}
}
