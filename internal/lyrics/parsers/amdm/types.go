package amdm

import (
	"time"
)

// LyricsResult holds plain lyric lines extracted from a chord page
type LyricsResult struct {
	URL       string    `json:"url"`
	Lines     []string  `json:"lines"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Page elements that never carry sung text
var noiseSelectors = []string{
	".podbor__chord",
	".podbor__author-comment",
	".podbor__keyword",
}

const chordsBlockSelector = `pre[itemprop="chordsBlock"]`
