package app

import (
	"context"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMermaidGraphIntrospector_Introspect(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{Key: "LLM_PROVIDER", UsedDefault: true},
			{Key: "HTTP_PORT", UsedDefault: false},
		},
	}

	err := MermaidGraphIntrospector{}.Introspect(context.Background(), report)
	require.NoError(t, err)

	graph, err := depend.ResolveNamed[string](IntrospectionGraphName)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(graph, "\n%% Samvaad dependency graph\n"))
	assert.Greater(t, len(graph), len("\n%% Samvaad dependency graph\n"))
}
