package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePuzzlePage = `<!DOCTYPE html>
<html lang="en-us">
<head><title>Day 1 - Advent of Code 2025</title></head>
<body>
<header><h1 class="title-global"><a href="/">Advent of Code</a></h1>
<nav><ul><li><a href="/2025/about">[About]</a></li></ul></nav></header>
<main>
<article class="day-desc"><h2>--- Day 1: Secret Entrance ---</h2>
<p>The dial starts by pointing at <code>50</code>.</p>
<ul><li>Rotate <em>left</em> with <code>L</code>.</li></ul>
</article>
<p>Your puzzle answer was <code>1100</code>.</p>
<article class="day-desc"><h2 id="part2">--- Part Two ---</h2><p>Count every click.</p></article>
</main>
</body>
</html>`

func TestPuzzleMarkdownKeepsArticles(t *testing.T) {
	md, err := puzzleMarkdown(samplePuzzlePage)
	require.NoError(t, err)

	assert.Contains(t, md, "Day 1: Secret Entrance")
	assert.Contains(t, md, "Part Two")
	assert.Contains(t, md, "`50`")
	assert.NotContains(t, md, "[About]")
	assert.NotContains(t, md, "Your puzzle answer")
	assert.NotContains(t, md, "<article")
	assert.Less(t, strings.Index(md, "Secret Entrance"), strings.Index(md, "Part Two"))
}

func TestPuzzleMarkdownFallsBackToMain(t *testing.T) {
	md, err := puzzleMarkdown(`<html><body><nav>menu</nav><main><p>Come back later.</p></main></body></html>`)
	require.NoError(t, err)
	assert.Contains(t, md, "Come back later.")
	assert.NotContains(t, md, "menu")
}

func TestPuzzleMarkdownWholeDocument(t *testing.T) {
	md, err := puzzleMarkdown(`<p>plain page</p>`)
	require.NoError(t, err)
	assert.Contains(t, md, "plain page")
}
