package app

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// IntrospectionGraphName is the named dependency the /introspect page renders.
const IntrospectionGraphName = "introspection-graph-mermaid"

const graphTitle = "Samvaad dependency graph"

// MermaidGraphIntrospector renders the initializer, host and config graph as Mermaid
// and registers it under IntrospectionGraphName.
type MermaidGraphIntrospector struct{}

func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	// The generated graph may open with front matter, so the title goes last as a comment.
	graph := strings.TrimRight(mermaid.GenerateIntrospectionGraph(r), "\n") + "\n%% " + graphTitle + "\n"
	depend.RegisterNamed(graph, IntrospectionGraphName)
	return nil
}
