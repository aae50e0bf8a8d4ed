package searcher

import (
	"iter"
	"pegs/board"

	"github.com/rs/zerolog/log"
)

type Option func(s *Search)

// Reporter receives each winning route as soon as it is found.
type Reporter func(route board.Route)

// Search exhaustively enumerates every winning jump sequence from a board.
type Search struct {
	report  Reporter
	metrics Collector
}

func WithReporter(report Reporter) Option {
	return func(s *Search) {
		if report != nil {
			s.report = report
		}
	}
}

func WithMetrics() Option {
	return func(s *Search) {
		s.metrics = NewCollector()
	}
}

func NewSearch(options ...Option) *Search {
	s := &Search{ // Default values
		report:  func(board.Route) {},
		metrics: NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Run explores every line of play from b and returns the number of winning
// routes. b is not modified.
func (s *Search) Run(b *board.Board) (int, SearchMetric) {
	log.Debug().Msgf("searching board of size %d with %d pegs", b.Size(), b.PegCount())

	s.metrics.Start()
	count := 0
	s.expand(b, func(route board.Route) bool {
		count++
		s.metrics.AddSolution()
		s.report(route)
		return true
	})
	metric := s.metrics.Complete()

	log.Debug().Msgf("found %d solutions", count)
	return count, metric
}

// Solutions lazily yields winning routes in search order. Breaking out of the
// loop stops the search.
func (s *Search) Solutions(b *board.Board) iter.Seq[board.Route] {
	return func(yield func(board.Route) bool) {
		s.expand(b, yield)
	}
}

// expand visits every legal move from b, depth first, each on its own copy
// of the board. It returns false once yield asks to stop.
func (s *Search) expand(b *board.Board, yield func(board.Route) bool) bool {
	s.metrics.AddNode(len(b.Route))

	moves := b.ValidMoves()
	if len(moves) == 0 {
		if !b.IsWin() {
			s.metrics.AddDeadEnd()
		}
		return true
	}

	for _, move := range moves {
		candidate := b.Play(move)
		if candidate.IsWin() {
			if !yield(candidate.Route) {
				return false
			}
			continue
		}
		if !s.expand(candidate, yield) {
			return false
		}
	}
	return true
}

// Count is a convenience for NewSearch().Run(b).
func Count(b *board.Board) int {
	count, _ := NewSearch().Run(b)
	return count
}
