// Command hexbench pits the MCTS+RAVE engine against the uniform-random
// player over many games and reports a win-rate summary, the way a
// self-play arena validates that search actually outperforms chance.
package main

import (
	"flag"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/hexmcts/engine/pkg/hex"
	"github.com/hexmcts/engine/pkg/player"
	"github.com/hexmcts/engine/pkg/randomplayer"
	"github.com/hexmcts/engine/pkg/search"
)

// arenaStats accumulates win counters across concurrently-run games.
type arenaStats struct {
	engineWins uint32
	randomWins uint32
	games      uint32
}

func (s *arenaStats) EngineWins() int { return int(atomic.LoadUint32(&s.engineWins)) }
func (s *arenaStats) RandomWins() int { return int(atomic.LoadUint32(&s.randomWins)) }
func (s *arenaStats) Games() int      { return int(atomic.LoadUint32(&s.games)) }

func main() {
	var (
		games      = flag.Int("games", 20, "number of games to play")
		boardSize  = flag.Int("size", 7, "board size (square)")
		workers    = flag.Int("workers", 4, "number of games run concurrently")
		searchTime = flag.Int("movetime", 200, "engine per-move search budget in milliseconds")
	)
	flag.Parse()

	stats := &arenaStats{}
	var wg sync.WaitGroup
	sem := make(chan struct{}, *workers)

	for i := 0; i < *games; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(gameNum int) {
			defer wg.Done()
			defer func() { <-sem }()
			playGame(gameNum, *boardSize, *searchTime, stats)
		}(i)
	}
	wg.Wait()

	fmt.Printf("games=%d engine_wins=%d random_wins=%d win_rate=%.1f%%\n",
		stats.Games(), stats.EngineWins(), stats.RandomWins(),
		100*float64(stats.EngineWins())/float64(stats.Games()))
}

// playGame runs a single game, engine playing Black on even game numbers
// and White otherwise so neither side benefits from always moving first.
func playGame(gameNum, size, movetimeMs int, stats *arenaStats) {
	cfg := search.DefaultConfig().SetSearchTime(movetimeMs).SetNumThreads(1)
	engine := search.NewEngine(size, size, cfg)
	random := randomplayer.New(size, size)

	engineColor := hex.Black
	if gameNum%2 == 1 {
		engineColor = hex.White
	}

	players := map[hex.Color]player.Player{
		engineColor:          engine,
		engineColor.Invert(): random,
	}

	board := engine.Board()
	toPlay := board.ToPlay()
	for {
		if w, ok := board.Winner(); ok {
			atomic.AddUint32(&stats.games, 1)
			if w == engineColor {
				atomic.AddUint32(&stats.engineWins, 1)
			} else {
				atomic.AddUint32(&stats.randomWins, 1)
			}
			return
		}

		mv := players[toPlay].GenerateMove(toPlay)
		for _, other := range players {
			if other != players[toPlay] {
				other.PlayMove(mv)
			}
		}
		toPlay = toPlay.Invert()
	}
}
