// Package bfs provides a production-grade breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order,
// plus a goal-directed variant used to measure the distance from a word to
// the nearest palindrome in a replacement graph.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Target, Distance: first goal vertex dequeued (Nearest only)
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Goal search
//
//	Nearest(g, start, goal) tests goal when a vertex is dequeued, not when it
//	is enqueued, so the start vertex and every other vertex share one exit
//	path. Because the queue is FIFO and every edge costs 1, the first goal
//	vertex dequeued is at minimum distance. If the queue empties first,
//	Distance is Unreachable (-1); that is a normal result, not an error.
//
//	DistanceToPalindrome(g, start) is Nearest with word.IsPalindrome.
//
// Determinism
//
//	core.Graph.Neighbors returns successors in edge insertion order and BFS
//	enqueues them in that order, so the visit sequence (and the chosen
//	Target among equally distant goals) is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	g, _ := builder.ReplacementGraph(4, word.AlphabetOf("once"))
//	d, err := bfs.DistanceToPalindrome(g, "once") // 2, nil
//
//	res, err := bfs.NearestPalindrome(g, "once",
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//	fmt.Println(res.Path()) // [once ence ecce]
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrGoalNil              if Nearest is given a nil goal.
//   - ErrNeighbors            if core.Neighbors fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
//   - ctx.Err() on cancellation.
package bfs
