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

// Tabiya is a chess rules engine played in the terminal. It accepts
// moves in standard algebraic notation and enforces the full rules of
// chess up to checkmate, stalemate and insufficient-material draws.
package main

import (
	"flag"
	"fmt"
	"os"

	logbackend "github.com/op/go-logging"

	"tabiya.dev/x/tabiya/internal/logging"
	"tabiya.dev/x/tabiya/internal/repl"
	"tabiya.dev/x/tabiya/internal/tui"
	"tabiya.dev/x/tabiya/pkg/board"
	"tabiya.dev/x/tabiya/pkg/game"
)

var log = logging.GetLog()

func main() {
	useTUI := flag.Bool("tui", false, "play in the full terminal interface")
	placement := flag.String("fen", "", "piece placement to start from")
	debug := flag.Bool("debug", false, "log rejected moves and internals")
	flag.Parse()

	if *debug {
		logging.SetLevel(logbackend.DEBUG)
	}

	g := game.NewGame()
	if *placement != "" {
		b, err := board.FromPlacement(*placement)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		g = game.New(b)
	}

	var err error
	if *useTUI {
		err = tui.New(g).Run()
	} else {
		err = repl.New(g, os.Stdin, os.Stdout).Run()
	}

	if err != nil {
		log.Errorf("session failed: %v", err)
		os.Exit(1)
	}
}
