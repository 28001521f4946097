package app

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/apiq/internal/domain"
)

func TestGraphQLRequest(t *testing.T) {
	files := map[string]string{"q.graphql": "{ viewer { id } }"}
	read := func(path string) ([]byte, error) {
		s, ok := files[path]
		if !ok {
			return nil, os.ErrNotExist
		}
		return []byte(s), nil
	}

	opts, err := GraphQLRequest(GraphQLOptions{File: "q.graphql", Profile: "gh"}, read)
	require.NoError(t, err)

	assert.Equal(t, "POST", opts.Method)
	assert.Equal(t, "/graphql", opts.Path)
	assert.Equal(t, "gh", opts.Profile)
	assert.True(t, opts.HasData)
	assert.Equal(t, `{"query":"{ viewer { id } }"}`, opts.Data)
}

func TestGraphQLRequest_EscapesQueryAsJSON(t *testing.T) {
	read := func(string) ([]byte, error) {
		return []byte("query {\n  a(where: \"x<y\")\n}\n"), nil
	}

	opts, err := GraphQLRequest(GraphQLOptions{File: "q.graphql"}, read)
	require.NoError(t, err)
	assert.Equal(t, `{"query":"query {\n  a(where: \"x<y\")\n}\n"}`, opts.Data)
	assert.Empty(t, opts.Profile)
}

func TestGraphQLRequest_Errors(t *testing.T) {
	_, err := GraphQLRequest(GraphQLOptions{}, os.ReadFile)
	assert.ErrorIs(t, err, domain.ErrUsage)

	_, err = GraphQLRequest(GraphQLOptions{File: "nope.graphql"}, func(string) ([]byte, error) {
		return nil, os.ErrNotExist
	})
	assert.ErrorIs(t, err, domain.ErrIO)
}
