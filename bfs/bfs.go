// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering. Nearest
// stops at the first vertex satisfying a goal predicate.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/abba/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// errGoalReached stops the main loop once the goal vertex is dequeued.
var errGoalReached = errors.New("bfs: goal reached")

// queueItem pairs a vertex ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string
	root   bool // true only for the start vertex
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph[string]
	opts    BFSOptions
	ctx     context.Context
	goal    func(string) bool // nil for a full traversal
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS(g *core.Graph[string], startID string, opts ...Option) (*BFSResult, error) {
	return run(g, startID, nil, opts)
}

// Nearest runs breadth-first search from startID and stops at the first
// dequeued vertex for which goal returns true. Because vertices leave the
// FIFO queue in non-decreasing depth, that vertex is at minimum distance.
//
// When no reachable vertex satisfies goal, the result has
// Distance == Unreachable and a nil error. The start vertex itself is
// tested first, so a satisfying start yields Distance 0.
func Nearest(g *core.Graph[string], startID string, goal func(string) bool, opts ...Option) (*BFSResult, error) {
	if goal == nil {
		return nil, ErrGoalNil
	}

	return run(g, startID, goal, opts)
}

// run validates input, prepares the walker and drives the main loop.
func run(g *core.Graph[string], startID string, goal func(string) bool, opts []Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		goal:    goal,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:    make([]string, 0, n),
			Depth:    make(map[string]int, n),
			Parent:   make(map[string]string, n),
			Distance: Unreachable,
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(queueItem{id: startID, depth: 0, root: true})
	err := w.loop()
	if errors.Is(err, errGoalReached) {
		err = nil
	}

	o.Logger.Debug("bfs finished",
		zap.String("start", startID),
		zap.Bool("goal", goal != nil),
		zap.String("target", w.res.Target),
		zap.Int("distance", w.res.Distance),
		zap.Int("visited", len(w.res.Order)),
		zap.Error(err),
	)

	return w.res, err
}

// enqueue marks the item's vertex visited, calls OnEnqueue, records its
// parent, and adds it to the queue.
func (w *walker) enqueue(item queueItem) {
	w.visited[item.id] = true
	w.res.Depth[item.id] = item.depth
	if !item.root {
		w.res.Parent[item.id] = item.parent
	}
	w.opts.OnEnqueue(item.id, item.depth)
	w.queue = append(w.queue, item)
}

// loop processes the queue until empty, goal, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)
	return item
}

// visit records the vertex in Order, calls OnVisit, and tests the goal.
// The goal is tested at dequeue time so the start vertex and every later
// vertex share one exit path.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}
	if w.goal != nil && w.goal(item.id) {
		w.res.Target = item.id
		w.res.Distance = item.depth
		return errGoalReached
	}
	return nil
}

// enqueueNeighbors retrieves neighbors, applies filtering and MaxDepth,
// and enqueues each unseen neighbor. Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		// cancellation check inside neighbor iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}

		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(queueItem{id: nbr, depth: nextDepth, parent: item.id})
		}
	}
	return nil
}
