package amdm

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/sukalov/lyricsdivision/internal/logger"
)

var (
	// chord separators like "| |" and section markers like "[Припев]:"
	separatorLine = regexp.MustCompile(`^[\s|]*$`)
	sectionLine   = regexp.MustCompile(`^\[[^\]]+\]:?$`)
	commentRun    = regexp.MustCompile(`/\*[^*]*\*?/?`)
)

// Parser extracts lyric lines from chord pages
type Parser struct {
	client *Client
}

// NewParser creates a new AmDm parser
func NewParser() *Parser {
	return &Parser{client: NewClient()}
}

// ExtractLyrics fetches url and returns its lyric lines without chords
func (p *Parser) ExtractLyrics(ctx context.Context, url string) (*LyricsResult, error) {
	logger.Debug(fmt.Sprintf("ExtractLyrics: fetching page %s", url))

	html, err := p.client.FetchPage(ctx, url)
	if err != nil {
		return nil, err
	}

	lines, err := ExtractLines(html)
	if err != nil {
		logger.Error(fmt.Sprintf("ExtractLyrics: %v\nURL: %s", err, url))
		return nil, err
	}

	logger.Success(fmt.Sprintf("ExtractLyrics: %d lines from %s", len(lines), url))

	return &LyricsResult{
		URL:       url,
		Lines:     lines,
		FetchedAt: time.Now(),
	}, nil
}

// ExtractLines returns the sung lines of the chords block in html
func ExtractLines(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	block := doc.Find(chordsBlockSelector).First()
	if block.Length() == 0 {
		return nil, fmt.Errorf("target element not found: %s", chordsBlockSelector)
	}

	for _, selector := range noiseSelectors {
		block.Find(selector).Remove()
	}

	var lines []string
	for _, raw := range strings.Split(block.Text(), "\n") {
		line := strings.TrimSpace(commentRun.ReplaceAllString(raw, ""))
		if separatorLine.MatchString(line) || sectionLine.MatchString(line) {
			continue
		}
		lines = append(lines, strings.Join(strings.Fields(line), " "))
	}

	return lines, nil
}
