// Package protocol implements the GTP-like line-oriented text protocol
// external controllers (or a human at a terminal) use to drive a Player:
// one command per line, whitespace-tokenised, responses shaped either
// "= <body>\n\n" on success or "? <msg>\n\n" on error.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/pkg/errors"

	"github.com/hexmcts/engine/pkg/hex"
	"github.com/hexmcts/engine/pkg/player"
)

// Server reads commands from input and writes responses to output,
// driving a Player according to the command table below.
type Server struct {
	input  *bufio.Scanner
	output io.Writer
	player player.Player
	term   *termenv.Output
}

// NewServer builds a protocol server over input/output, driving p.
func NewServer(input io.Reader, output io.Writer, p player.Player) *Server {
	return &Server{
		input:  bufio.NewScanner(input),
		output: output,
		player: p,
		term:   termenv.NewOutput(output),
	}
}

// Run processes commands until input is exhausted (EOF) or a "quit"
// command is received.
func (s *Server) Run() error {
	for s.input.Scan() {
		line := s.input.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		body, err := s.dispatch(line)
		if err != nil {
			fmt.Fprintf(s.output, "? %s\n\n", err.Error())
			continue
		}
		fmt.Fprintf(s.output, "= %s\n\n", body)
		if strings.Fields(line)[0] == "quit" {
			return nil
		}
	}
	return s.input.Err()
}

func (s *Server) dispatch(line string) (string, error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return "", errors.New("syntax error")
	}

	switch words[0] {
	case "name":
		return s.player.Name(), nil

	case "version":
		return s.player.Version(), nil

	case "boardsize":
		if len(words) != 3 {
			return "", errors.New("syntax error")
		}
		cols, err1 := strconv.Atoi(words[1])
		rows, err2 := strconv.Atoi(words[2])
		if err1 != nil || err2 != nil || cols <= 0 || rows <= 0 {
			return "", errors.New("invalid size")
		}
		s.player.SetBoardSize(cols, rows)
		return "", nil

	case "showboard":
		return "\n" + s.renderBoard(), nil

	case "play":
		if len(words) != 3 {
			return "", errors.New("syntax error")
		}
		return "", s.play(words[1], words[2])

	case "genmove":
		if len(words) != 2 {
			return "", errors.New("syntax error")
		}
		color, err := hex.ParseColor(words[1])
		if err != nil {
			return "", errors.Wrap(err, "invalid color")
		}
		return s.player.GenerateMove(color).String(), nil

	case "undo":
		s.player.Undo()
		return "", nil

	case "final_score":
		w, ok := s.player.Board().Winner()
		if !ok {
			return "", errors.New("game is not finished!")
		}
		return w.String(), nil

	case "hexgui-analyze_commands":
		return "", nil

	case "quit":
		return "", nil

	default:
		return "", errors.New("syntax error")
	}
}

func (s *Server) play(colorTok, posTok string) error {
	if strings.EqualFold(posTok, "resign") {
		if _, err := hex.ParseColor(colorTok); err != nil {
			return errors.Wrap(err, "invalid color")
		}
		if !s.player.PlayMove(hex.ResignMove()) {
			return errors.New("invalid move")
		}
		return nil
	}

	color, err := hex.ParseColor(colorTok)
	if err != nil {
		return errors.Wrap(err, "invalid color")
	}
	pos, err := hex.ParsePos(posTok)
	if err != nil {
		return errors.Wrap(err, "invalid move")
	}
	if !s.player.PlayMove(hex.PlayMove(color, pos)) {
		return errors.New("invalid move")
	}
	return nil
}

// renderBoard colorizes the board's plain-ASCII rendering: Black stones in
// one accent color, White in another, so a human watching the stream over
// a real terminal can tell the stones apart at a glance. termenv degrades
// the escape codes automatically when the output isn't a color-capable
// terminal, so there's no separate plain-text path to maintain.
func (s *Server) renderBoard() string {
	board := s.player.Board().String()

	black := s.term.String("B").Foreground(s.term.Color("12")).String()
	white := s.term.String("W").Foreground(s.term.Color("9")).String()

	var out strings.Builder
	for _, r := range board {
		switch r {
		case 'B':
			out.WriteString(black)
		case 'W':
			out.WriteString(white)
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}
