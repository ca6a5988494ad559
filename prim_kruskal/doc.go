// Package prim_kruskal computes Minimum Spanning Trees (MST) of an undirected
// *core.Graph with positive integer weights: Prim's algorithm, instrumented to
// record an animation of the tree growing, and Kruskal's algorithm as a plain
// edge-set computation.
//
// Algorithms Provided
//
//   - Prim(g *core.Graph, opts ...Option) (*Result, error)
//
//   - Strategy: grow one tree from a root node. Candidate edges crossing the
//     tree boundary live in an ordered set keyed by (weight, From, To); the
//     minimum is popped until it adds a node outside the tree.
//
//   - Steps: visit-node{root}, then for every selected edge visit-node{new}
//     followed by add-edge{edge}. A run over n nodes emits n visit-node and
//     n-1 add-edge steps.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Kruskal(g *core.Graph) ([]core.Edge, int64, error)
//
//   - Strategy: sort all edges by (weight, From, To) and merge components
//     with a union-find, skipping edges whose endpoints are already joined.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Compute(g, opts...) dispatches on WithMethod(MethodPrim|MethodKruskal).
//
// Determinism
//
//   - Both algorithms break weight ties by the lower (From, To) pair, so on
//     the same graph and root they always return the same tree.
//
// Error Conditions
//
//   - ErrNilGraph       : graph is nil.
//   - ErrVertexNotFound : WithRoot names a node that does not exist (Prim only).
//   - ErrDisconnected   : |V| > 1 and no spanning tree covers every node.
//   - ErrUnknownMethod  : Compute got a method other than prim or kruskal.
//
// Graphs with zero or one node have an empty tree and, for Prim, an empty
// step sequence.
package prim_kruskal
