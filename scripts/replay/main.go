// Copyright © 2024 The Tabiya Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Replay cross-checks the rules engine against a reference
// implementation. It replays every game found in the PGN files of a
// directory through a fresh engine game, verifies that each move and
// the final verdict agree with github.com/notnil/chess, and writes an
// HTML report of the replayed game lengths.
//
// Usage: go run ./scripts/replay [directory]
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/notnil/chess"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/freeeve/pgn.v1"

	"tabiya.dev/x/tabiya/pkg/game"
)

var out = message.NewPrinter(language.English)

func main() {
	dir := "./data"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	files, err := pgnFiles(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	total := 0
	for _, path := range files {
		n, err := countGames(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		total += n
	}

	out.Printf("replay: found %d games in %d files\n", total, len(files))

	bar := progressbar.NewOptions(
		total,
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("game"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
	)

	var games, moves, skipped int
	var mismatches []string
	var plies []opts.LineData

	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		scanner := chess.NewScanner(f)
		for scanner.Scan() {
			reference := scanner.Next()
			_ = bar.Add(1)

			// games from a custom starting position cannot be
			// replayed, the engine always starts from the standard one
			if tag := reference.GetTagPair("FEN"); tag != nil {
				skipped++
				continue
			}

			games++
			played, mismatch := replay(reference)
			moves += played
			plies = append(plies, opts.LineData{Value: played})
			if mismatch != "" {
				mismatches = append(mismatches, mismatch)
			}
		}

		f.Close()
	}

	_ = bar.Close()

	out.Printf("replay: %d games, %d moves, %d skipped\n", games, moves, skipped)
	out.Printf("replay: %d disagreements\n", len(mismatches))
	for _, mismatch := range mismatches {
		fmt.Println("  " + mismatch)
	}

	report(plies)

	if len(mismatches) > 0 {
		os.Exit(1)
	}
}

// replay runs every move of the reference game through a fresh engine
// game and returns the number of plies played along with a description
// of the first disagreement, if any.
func replay(reference *chess.Game) (int, string) {
	g := game.NewGame()

	positions := reference.Positions()
	notation := chess.AlgebraicNotation{}

	for i, move := range reference.Moves() {
		text := notation.Encode(positions[i], move)

		if err := g.Submit(text); err != nil {
			return i, fmt.Sprintf("move %d (%s): %v", i+1, text, err)
		}

		if g.Status != game.Ongoing && i != len(reference.Moves())-1 {
			return i, fmt.Sprintf("move %d (%s): premature %v", i+1, text, g.Status)
		}
	}

	if reference.Method() == chess.Checkmate && g.Status != game.Checkmate {
		return len(reference.Moves()), fmt.Sprintf("final position not a checkmate (%v)", g.Status)
	}

	if reference.Method() == chess.Stalemate && g.Status != game.Draw {
		return len(reference.Moves()), fmt.Sprintf("final position not a stalemate (%v)", g.Status)
	}

	return len(reference.Moves()), ""
}

// pgnFiles collects the PGN files under the given directory.
func pgnFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".pgn") {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

// countGames counts the games of a PGN file with a light-weight scan,
// so that the progress bar knows its total up front.
func countGames(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := pgn.NewPGNScanner(f)
	for scanner.Next() {
		if _, err := scanner.Scan(); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

// report renders the replayed game lengths into an HTML chart.
func report(plies []opts.LineData) {
	names := make([]string, len(plies))
	for i := range names {
		names[i] = strconv.Itoa(i + 1)
	}

	plot := charts.NewLine()
	plot.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Replayed game lengths"}))
	plot.SetXAxis(names).AddSeries("plies", plies)

	plotFile, err := os.Create("replay-report.html")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer plotFile.Close()

	_ = plot.Render(plotFile)
}
