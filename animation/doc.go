// Package animation defines the step vocabulary that Dijkstra and Prim emit
// and a Player that feeds a step sequence to a renderer at a chosen pace.
//
// A Step is one discrete, renderable state transition:
//
//	visit-node  {nodeId}                  node enters the settled/tree set
//	relax-edge  {edgeId, nodeId, distance} distance of nodeId lowered via edgeId
//	add-edge    {edgeId}                  edge joins the spanning tree
//
// Steps are produced eagerly: an algorithm run returns the whole Sequence and
// the consumer decides how fast to show it. Player is that consumer-side
// pacing helper, with the 0.5×, 1× and 2× speeds and an instant mode.
package animation
