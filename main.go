package main

import (
	"flag"
	"fmt"
	"os"
	"pegs/board"
	"pegs/meta"
	"pegs/searcher"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	size := flag.Int("size", meta.SIZE, "Side length of the triangular board")
	empty := flag.String("empty", strconv.Itoa(meta.EMPTY), "Comma separated positions emptied at the start")
	show := flag.Bool("show", true, "Print every solution as it is found")
	playouts := flag.Int("playouts", meta.PLAYOUTS, "Random playouts to estimate the win rate before searching")
	seed := flag.Uint64("seed", meta.SEED, "Seed for random playouts")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	positions, err := parsePositions(*empty)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid empty holes")
	}
	b, err := board.Create(*size, positions...)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid board")
	}
	if len(positions) != 1 {
		log.Warn().Msgf("%d holes emptied, a win needs exactly one", len(positions))
	}
	fmt.Print(b)

	if *playouts > 0 {
		rate := searcher.EstimateWinRate(b, *playouts, *seed)
		log.Info().Msgf("%.4f of %d random playouts won", rate, *playouts)
	}

	log.Info().Msgf("searching board of size %d with holes %v emptied...", *size, positions)
	options := []searcher.Option{searcher.WithMetrics()}
	if *show {
		options = append(options, searcher.WithReporter(func(route board.Route) {
			fmt.Println(route)
		}))
	}
	count, metric := searcher.NewSearch(options...).Run(b)

	fmt.Println(count)
	fmt.Println(metric.Nodes)
	fmt.Println(metric.Duration.Seconds())
	log.Info().Msgf("completed search: %d solutions, %d boards, %d dead ends in %v", count, metric.Nodes, metric.DeadEnds, metric.Duration)
}

func parsePositions(s string) ([]int, error) {
	positions := []int{}
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		pos, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("failed to parse position %q: %w", field, err)
		}
		positions = append(positions, pos)
	}
	return positions, nil
}
