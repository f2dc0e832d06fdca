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

package repl_test

import (
	"bytes"
	"strings"
	"testing"

	"tabiya.dev/x/tabiya/internal/repl"
	"tabiya.dev/x/tabiya/pkg/game"
)

func TestRunPlaysMoves(t *testing.T) {
	g := game.NewGame()

	in := strings.NewReader("e4\ne5\nquit\n")
	var out bytes.Buffer

	if err := repl.New(g, in, &out).Run(); err != nil {
		t.Fatal(err)
	}

	if g.Turn != 3 {
		t.Errorf("turn after two moves: got %d, want 3", g.Turn)
	}
	if out.Len() == 0 {
		t.Errorf("no output produced")
	}
}

func TestRunReportsErrors(t *testing.T) {
	g := game.NewGame()

	in := strings.NewReader("Ke2\nzz9\n")
	var out bytes.Buffer

	if err := repl.New(g, in, &out).Run(); err != nil {
		t.Fatal(err)
	}

	if g.Turn != 1 {
		t.Errorf("rejected input advanced the game to turn %d", g.Turn)
	}
	if !strings.Contains(out.String(), "illegal move") {
		t.Errorf("illegal move not reported")
	}
	if !strings.Contains(out.String(), "cannot read") {
		t.Errorf("parse failure not reported")
	}
}

func TestCommands(t *testing.T) {
	g := game.NewGame()

	in := strings.NewReader("help\nboard\nfen 4k3/8/8/8/8/8/8/4K3\nnew\nquit\n")
	var out bytes.Buffer

	r := repl.New(g, in, &out)
	if err := r.Run(); err != nil {
		t.Fatal(err)
	}

	// 'fen' and 'new' both replace the game
	if r.Game == g {
		t.Errorf("fen/new did not replace the game")
	}
}
