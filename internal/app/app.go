package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/abba/bfs"
	"github.com/katalvlaran/abba/builder"
	"github.com/katalvlaran/abba/core"
	"github.com/katalvlaran/abba/internal/config"
	"github.com/katalvlaran/abba/word"
)

var (
	// ErrNoGraph is reported for a query whose graph is absent (n == 0 or
	// an empty alphabet).
	ErrNoGraph = errors.New("app: no replacement graph for these parameters")

	// ErrQueryFailed is returned by Run when at least one query failed.
	ErrQueryFailed = errors.New("app: query failed")
)

type graphKey struct {
	n       int
	symbols string
}

// App holds the configuration, the output writer and the graph cache of
// one run. It is not safe for concurrent use.
type App struct {
	outW   io.Writer
	logger *zap.Logger
	cfg    *config.Config
	graphs map[graphKey]*core.Graph[string]
}

// New returns an App writing reports to outW. A nil logger is replaced by
// zap.NewNop().
func New(outW io.Writer, cfg *config.Config, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &App{
		outW:   outW,
		logger: logger,
		cfg:    cfg,
		graphs: make(map[graphKey]*core.Graph[string]),
	}
}

// Run answers every configured query in order and writes the reports.
// A failing query does not stop the run; its error is rendered in its
// report and Run returns ErrQueryFailed at the end.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("run started", zap.Int("queries", len(a.cfg.Queries)), zap.String("format", a.cfg.Format))

	reports := make([]Report, 0, len(a.cfg.Queries))
	failed := 0
	for i, q := range a.cfg.Queries {
		if err := ctx.Err(); err != nil {
			return err
		}
		r, err := a.Query(ctx, q)
		if err != nil {
			failed++
			a.logger.Warn("query failed", zap.Int("index", i), zap.String("start", q.Start), zap.Error(err))
		}
		if a.cfg.Format == config.FormatText {
			if err := writeText(a.outW, r); err != nil {
				return err
			}
		}
		reports = append(reports, r)
	}

	if a.cfg.Format == config.FormatYAML {
		if err := writeYAML(a.outW, reports); err != nil {
			return err
		}
	}

	a.logger.Info("run finished", zap.Int("queries", len(reports)), zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrQueryFailed, failed, len(reports))
	}

	return nil
}

// Query answers one query. The returned Report is always usable for
// rendering; on failure its Error field carries the message and the error
// is also returned.
func (a *App) Query(ctx context.Context, q config.Query) (Report, error) {
	r := Report{N: q.N, Start: q.Start, Distance: bfs.Unreachable}

	alphabet, err := word.ParseAlphabet(q.Alphabet)
	if err != nil {
		return r.failed(err)
	}
	r.Alphabet = alphabet.String()

	g, err := a.graph(ctx, q.N, alphabet)
	if err != nil {
		return r.failed(err)
	}
	if a.cfg.PrintGraph {
		r.Graph = g.String()
	}

	res, err := bfs.NearestPalindrome(g, q.Start,
		bfs.WithContext(ctx),
		bfs.WithLogger(a.logger),
	)
	if err != nil {
		return r.failed(err)
	}
	r.Distance = res.Distance
	r.Target = res.Target
	r.Path = res.Path()
	r.Visited = len(res.Order)

	return r, nil
}

// graph returns the cached replacement graph for (n, alphabet), building it
// on first use.
func (a *App) graph(ctx context.Context, n int, alphabet word.Alphabet) (*core.Graph[string], error) {
	key := graphKey{n: n, symbols: string(alphabet.Symbols())}
	if g, ok := a.graphs[key]; ok {
		return g, nil
	}

	opts := []builder.BuilderOption{
		builder.WithContext(ctx),
		builder.WithLogger(a.logger),
	}
	if a.cfg.MaxVertices > 0 {
		opts = append(opts, builder.WithMaxVertices(a.cfg.MaxVertices))
	}
	g, err := builder.ReplacementGraph(n, alphabet, opts...)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("%w: n=%d alphabet=%s", ErrNoGraph, n, alphabet)
	}

	stats := g.Stats()
	a.logger.Info("graph built",
		zap.Int("n", n),
		zap.Stringer("alphabet", alphabet),
		zap.Int("vertices", stats.VertexCount),
		zap.Int("edges", stats.EdgeCount),
		zap.Int("max_out_degree", stats.MaxOutDegree),
	)
	a.graphs[key] = g

	return g, nil
}
