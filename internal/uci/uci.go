// Package uci adapts the engine to the Universal Chess Interface so it
// can run under standard chess GUIs.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/notnil/chess"

	"chessmaster/internal/engine"
)

// UCI implements the Universal Chess Interface protocol.
type UCI struct {
	engine *engine.Engine
	game   *chess.Game

	in  io.Reader
	out io.Writer
}

// New creates a UCI protocol handler reading commands from in and
// writing responses to out.
func New(eng *engine.Engine, in io.Reader, out io.Writer) *UCI {
	return &UCI{
		engine: eng,
		game:   chess.NewGame(),
		in:     in,
		out:    out,
	}
}

// Run processes commands until "quit" or end of input.
func (u *UCI) Run() {
	scanner := bufio.NewScanner(u.in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			fmt.Fprintln(u.out, "readyok")
		case "ucinewgame":
			u.game = chess.NewGame()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(args)
		case "setoption":
			u.handleSetOption(args)
		case "d":
			fmt.Fprintln(u.out, u.game.Position().Board().Draw())
		case "quit":
			return
		}
	}
}

func (u *UCI) handleUCI() {
	fmt.Fprintln(u.out, "id name Chessmaster")
	fmt.Fprintln(u.out, "id author Chessmaster Team")
	fmt.Fprintln(u.out)
	fmt.Fprintln(u.out, "option name Difficulty type combo default MEDIUM var EASY var MEDIUM var HARD var MASTER")
	fmt.Fprintln(u.out, "uciok")
}

// handlePosition parses "position startpos" or "position fen <fen>",
// each optionally followed by "moves <uci>...".
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	movesIdx := len(args)
	for i, a := range args {
		if a == "moves" {
			movesIdx = i
			break
		}
	}

	switch args[0] {
	case "startpos":
		u.game = chess.NewGame()
	case "fen":
		fen := strings.Join(args[1:movesIdx], " ")
		fenOpt, err := chess.FEN(fen)
		if err != nil {
			fmt.Fprintf(u.out, "info string invalid fen: %s\n", fen)
			return
		}
		u.game = chess.NewGame(fenOpt)
	default:
		return
	}

	for _, uciMove := range args[min(movesIdx+1, len(args)):] {
		if !u.applyMove(uciMove) {
			fmt.Fprintf(u.out, "info string illegal move: %s\n", uciMove)
			return
		}
	}
}

func (u *UCI) applyMove(uciMove string) bool {
	for _, m := range u.game.ValidMoves() {
		if m.String() == uciMove {
			return u.game.Move(m) == nil
		}
	}
	return false
}

// handleGo searches the current position. "go depth N" overrides the
// difficulty's depth; the override never plays random moves.
func (u *UCI) handleGo(args []string) {
	profile := u.engine.Difficulty().Profile()
	for i := 0; i+1 < len(args); i++ {
		if args[i] == "depth" {
			if n, err := strconv.Atoi(args[i+1]); err == nil && n > 0 {
				profile = engine.Profile{Depth: n}
			}
		}
	}

	positions := u.game.Positions()
	if len(positions) > 1 {
		u.engine.SetRootHistory(positions[:len(positions)-1])
	} else {
		u.engine.SetRootHistory(nil)
	}

	move := u.engine.SelectMoveWithProfile(u.game.Position(), profile)
	if move == nil {
		fmt.Fprintln(u.out, "bestmove 0000")
		return
	}

	score := u.engine.Evaluate(u.game.Position())
	fmt.Fprintf(u.out, "info depth %d nodes %d score cp %d\n",
		profile.Depth, u.engine.NodesEvaluated(), score)
	fmt.Fprintf(u.out, "bestmove %s\n", move.String())
}

// handleSetOption accepts "setoption name Difficulty value <level>".
func (u *UCI) handleSetOption(args []string) {
	var name, value string
	for i := 0; i+1 < len(args); i++ {
		switch args[i] {
		case "name":
			name = args[i+1]
		case "value":
			value = args[i+1]
		}
	}

	if !strings.EqualFold(name, "Difficulty") {
		fmt.Fprintf(u.out, "info string unknown option: %s\n", name)
		return
	}
	d, err := engine.ParseDifficulty(value)
	if err != nil {
		fmt.Fprintf(u.out, "info string %v\n", err)
		return
	}
	u.engine.SetDifficulty(d)
}
