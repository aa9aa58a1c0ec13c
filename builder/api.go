// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// api.go — public entry points: BuildGraph, BuildRelation and Constructor.
//
// Contract:
//   • Constructors apply in order to one fresh graph; IDs shared between
//     constructors refer to the same vertex.
//   • Any constructor error aborts the build and is returned wrapped.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/clique"
	"github.com/katalvlaran/lvsearch/graph"
)

// Graph is the concrete graph type produced by the builder.
type Graph = graph.Graph[string, int64]

// Constructor mutates g according to a topology, reading IDs, weights and
// randomness from cfg.
type Constructor func(g *Graph, cfg builderConfig) error

// BuildGraph creates a new graph and applies every constructor in order.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - any constructor error, wrapped with "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*Graph, error) {
	cfg := newBuilderConfig(bopts...)
	g := graph.New[string, int64]()
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("BuildGraph: constructor #%d is nil: %w", i, ErrConstructFailed)
		}
		if err := c(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// BuildRelation builds the graph described by cons and converts it into a
// clique relation. Edge weights and direction are dropped.
func BuildRelation(bopts []BuilderOption, cons ...Constructor) (*clique.Relation[string], error) {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		return nil, fmt.Errorf("BuildRelation: %w", err)
	}

	return clique.FromGraph(g), nil
}
