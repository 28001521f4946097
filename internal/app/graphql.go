package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bft-labs/apiq/internal/domain"
)

// GraphQLPath is the endpoint gql requests are posted to.
const GraphQLPath = "/graphql"

// GraphQLOptions are the flags accepted by the gql command.
type GraphQLOptions struct {
	File    string
	Profile string
}

type graphQLPayload struct {
	Query string `json:"query"`
}

// GraphQLRequest reads the query file and rewrites it into a REST invocation:
// POST /graphql with {"query": <file contents>} as the literal body.
func GraphQLRequest(opts GraphQLOptions, readFile FileReader) (domain.RequestOptions, error) {
	if opts.File == "" {
		return domain.RequestOptions{}, fmt.Errorf("%w: gql requires --file", domain.ErrUsage)
	}
	query, err := readFile(opts.File)
	if err != nil {
		return domain.RequestOptions{}, fmt.Errorf("%w: read query file: %w", domain.ErrIO, err)
	}

	payload, err := encodeQuery(string(query))
	if err != nil {
		return domain.RequestOptions{}, err
	}

	return domain.RequestOptions{
		Method:  http.MethodPost,
		Path:    GraphQLPath,
		Profile: opts.Profile,
		Data:    payload,
		HasData: true,
	}, nil
}

func encodeQuery(query string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(graphQLPayload{Query: query}); err != nil {
		return "", fmt.Errorf("encode graphql payload: %w", err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
