// Package main implements aoc, a CLI helper for the daily puzzles of
// Advent of Code.
//
// # Features
//
//   - Fetches each day's puzzle description and stores it as Markdown
//   - Fetches the personalized puzzle input using the session cookie
//   - Scaffolds a Go solution file per day that registers itself at build time
//   - Runs a day's solution against its input
//   - Summarizes a puzzle via an OpenAI-compatible API
//
// # Usage
//
//	aoc setup [day] [--config PATH]
//	aoc run <day> [--config PATH]
//	aoc explain <day> [--config PATH]
//
// # Configuration
//
// Configuration is loaded from aoc.json in the current directory, or the
// path given by --config. A missing file means defaults. The session cookie
// is read from AOC_SESSION_COOKIE, which may be set in a .env file.
//
// Puzzle data lives under days/day-NN/ and solution files are dayNN.go in
// this package.
package main
