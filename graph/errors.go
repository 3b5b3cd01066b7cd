package graph

import (
	"fmt"

	"github.com/frontiergo/frontier/internal/xerrors"
)

// Sentinel errors for graph loading and validation. Callers MUST use
// errors.Is to branch on semantics; messages are not part of the contract.
// Each wraps xerrors.Validation, so a caller that only cares about the
// failure kind can match on that instead of enumerating every sentinel.
var (
	// ErrEmptyInput indicates the reader produced no non-empty lines.
	ErrEmptyInput = fmt.Errorf("graph: empty input: %w", xerrors.Validation)

	// ErrMalformedLine indicates a line could not be parsed into the
	// expected integer fields.
	ErrMalformedLine = fmt.Errorf("graph: malformed line: %w", xerrors.Validation)

	// ErrVertexOutOfRange indicates a referenced vertex id is outside [1,n].
	ErrVertexOutOfRange = fmt.Errorf("graph: vertex id out of range: %w", xerrors.Validation)

	// ErrNoEdges indicates a graph was built with zero edges, which the
	// frontier manager cannot assign a variable ordering to.
	ErrNoEdges = fmt.Errorf("graph: no edges: %w", xerrors.Validation)

	// ErrWeightSidecarTruncated indicates a weight sidecar file has fewer
	// values than there are edges/vertices to assign. Resolved Open Question
	// from spec.md §9: the original silently defaults missing weights to 1,
	// which can mask truncated input; this module treats it as a hard
	// validation error instead.
	ErrWeightSidecarTruncated = fmt.Errorf("graph: weight sidecar file truncated: %w", xerrors.Validation)

	// ErrStartVertexNotFound indicates BFSReorder was asked to start from a
	// vertex the graph does not contain.
	ErrStartVertexNotFound = fmt.Errorf("graph: start vertex not found: %w", xerrors.Validation)

	// ErrIncidenceDimMismatch indicates an incidence matrix row width does
	// not match the declared vertex count.
	ErrIncidenceDimMismatch = fmt.Errorf("graph: incidence row width mismatch: %w", xerrors.Validation)

	// ErrInvalidProbability indicates RandomSparse's p fell outside [0,1].
	ErrInvalidProbability = fmt.Errorf("graph: probability out of range: %w", xerrors.Validation)

	// ErrNeedRandSource indicates a stochastic generator was called
	// without the *rand.Rand it needs.
	ErrNeedRandSource = fmt.Errorf("graph: rng is required: %w", xerrors.Validation)
)
