// Command hexengine runs the Hex MCTS+RAVE engine behind the text
// protocol, reading commands from stdin and writing responses to stdout.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/hexmcts/engine/pkg/protocol"
	"github.com/hexmcts/engine/pkg/search"
)

func main() {
	var (
		cols        = flag.Int("cols", 13, "initial board width")
		rows        = flag.Int("rows", 13, "initial board height")
		exploration = flag.Float64("exploration", math.Sqrt2, "UCT exploration constant C")
		raveB       = flag.Float64("rave-b", 0.5, "RAVE decay constant b")
		searchTime  = flag.Int("movetime", 1000, "per-move search budget in milliseconds")
		threads     = flag.Int("threads", 1, "number of tree-parallel search workers")
	)
	flag.Parse()

	cfg := search.DefaultConfig().
		SetExplorationParam(*exploration).
		SetRaveB(*raveB).
		SetSearchTime(*searchTime).
		SetNumThreads(*threads)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "hexengine: invalid configuration:", err)
		os.Exit(2)
	}

	engine := search.NewEngine(*cols, *rows, cfg)
	server := protocol.NewServer(os.Stdin, os.Stdout, engine)
	if err := server.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "hexengine:", err)
		os.Exit(1)
	}
}
