// Package ir defines the Static Workflow Intermediate Representation: the
// closed sum of flow nodes produced by walking a createWorkflow callback,
// plus the Workflow root and the per-analysis id Arena that mints them.
//
// Nodes are constructed once during the walk and never mutated afterward,
// except by the type enricher (package typeinfer), which writes type
// fields in place. Data-flow and error-flow analyses build new graph
// objects that reference step ids; they never reshape the IR itself.
package ir
