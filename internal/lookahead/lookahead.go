// Package lookahead expands a starting Game into every Game reachable
// depth placements out, by repeatedly running move generation on each
// frontier Game and placing every resulting piece. Frontier expansion
// within a round is sharded across a worker pool, mirroring the
// fixed-size Lazy-SMP worker pool a chess engine runs its parallel
// search from — except here every worker explores a disjoint slice of
// the frontier instead of the same root.
package lookahead

import (
	"runtime"
	"sync"

	"github.com/tetris-engine/core/internal/game"
	"github.com/tetris-engine/core/internal/movegen"
	"github.com/tetris-engine/core/internal/piece"
)

// NumWorkers is the number of goroutines a single round of expansion is
// split across.
var NumWorkers = runtime.GOMAXPROCS(0)

// ManyLookahead returns every Game reachable from start by placing
// depth pieces in sequence, exploring every legal placement (including
// the hold swap, unless hold already equals the active kind) at each
// step. The result is not deduplicated across sibling sequences: two
// different placement orders that happen to reach the same board are
// both present, matching the reference behavior of leaving dedup to a
// caller that actually needs it. A depth of 0 returns start alone.
func ManyLookahead(start *game.Game, depth int) []*game.Game {
	if depth <= 0 {
		return []*game.Game{start}
	}
	games := expandRound(start)
	for d := 1; d < depth; d++ {
		games = expandFrontier(games)
	}
	return games
}

// expandFrontier runs expandRound on every game in the frontier,
// sharding the work across NumWorkers goroutines and concatenating
// their results. Order across workers is not preserved.
func expandFrontier(frontier []*game.Game) []*game.Game {
	if len(frontier) == 0 {
		return nil
	}

	numWorkers := NumWorkers
	if numWorkers > len(frontier) {
		numWorkers = len(frontier)
	}

	results := make(chan []*game.Game, numWorkers)
	var wg sync.WaitGroup
	chunkSize := (len(frontier) + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		start := w * chunkSize
		if start >= len(frontier) {
			break
		}
		end := start + chunkSize
		if end > len(frontier) {
			end = len(frontier)
		}

		wg.Add(1)
		go func(slice []*game.Game) {
			defer wg.Done()
			var local []*game.Game
			for _, g := range slice {
				local = append(local, expandRound(g)...)
			}
			results <- local
		}(frontier[start:end])
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var out []*game.Game
	for r := range results {
		out = append(out, r...)
	}
	return out
}

// expandRound runs move generation (including the hold swap) on g and
// returns one new Game per distinct resulting resting piece, each a
// clone of the Game that actually produced the placement: g itself for
// a direct placement, or the already-held clone for a placement only
// reachable by holding first, so the successor's Held/Queue state
// reflects the hold swap instead of silently dropping it.
func expandRound(g *game.Game) []*game.Game {
	sources, heldGame := movementsWithHold(g)

	out := make([]*game.Game, 0, len(sources))
	for _, s := range sources {
		base := g
		if s.held {
			base = heldGame
		}
		next := base.Clone()
		next.Active = s.piece
		next.PlaceActive(s.held)
		out = append(out, next)
	}
	return out
}

// placement pairs a reachable resting piece with whether reaching it
// required holding first.
type placement struct {
	piece piece.Piece
	held  bool
}

// movementsWithHold returns every distinct resting piece reachable
// either by playing the active piece directly, or by holding first and
// playing whatever becomes active, tagged with which branch produced
// it. The hold branch (and its returned Game) is skipped entirely when
// the held kind already equals the active kind, since holding would be
// a no-op move generation has already covered.
func movementsWithHold(g *game.Game) ([]placement, *game.Game) {
	seen := make(map[piece.Key]placement)

	direct := movegen.Generate(&g.Board, g.Active)
	for _, p := range direct.Placements {
		seen[p.Piece.Key()] = placement{piece: p.Piece, held: false}
	}

	var heldGame *game.Game
	if g.Held == nil || *g.Held != g.Active.Kind {
		heldGame = g.Clone()
		heldGame.Hold()
		heldGen := movegen.Generate(&heldGame.Board, heldGame.Active)
		for _, p := range heldGen.Placements {
			seen[p.Piece.Key()] = placement{piece: p.Piece, held: true}
		}
	}

	out := make([]placement, 0, len(seen))
	for _, s := range seen {
		out = append(out, s)
	}
	return out, heldGame
}
