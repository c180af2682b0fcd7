// Package riskpath finds the lowest-risk route across a tiled cave map.
//
// 🚀 What is riskpath?
//
//	A small, dependency-light toolkit that brings together:
//		• Grid expansion: parse a digit pattern, tile it N×N with wraparound risk
//		• Shortest paths: single-source lowest-risk search on dense 4-connected grids
//		• A command-line front end with structured logging and a YAML config
//
// Under the hood, everything is organized under these subpackages:
//
//	gridgraph/     — Coordinate, immutable GridGraph, ParsePattern, Expand, ReadPattern
//	dijkstra/      — LowestRisk / Distances with linear-scan or heap selection
//	config/        — YAML configuration, env overrides, validation
//	cmd/riskpath/  — cobra command wiring reader → expander → solver → stdout
//
// Quick ASCII example:
//
//	1 1 6
//	1 3 8
//
// The cheapest route from the top-left to the bottom-right corner enters
// 1, 3 and 8: total risk 12. The starting cell is free.
//
//	go install github.com/katalvlaran/riskpath/cmd/riskpath@latest
package riskpath
