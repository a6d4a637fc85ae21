// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across constructors.
package builder

const (
	// MethodReplacement is the canonical name for the Replacement constructor.
	MethodReplacement = "Replacement"

	// MethodBuildGraph tags errors raised by the BuildGraph orchestrator.
	MethodBuildGraph = "BuildGraph"
)

// MinWordLength is the smallest word length for which a replacement graph exists.
const MinWordLength = 1

// NoVertexLimit disables the WithMaxVertices guard.
const NoVertexLimit = 0

// ctxCheckInterval is how many vertices are inserted between cancellation checks.
const ctxCheckInterval = 1024
