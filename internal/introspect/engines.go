package introspect

import (
	"encoding/json"
	"fmt"
	"strings"

	gophers "github.com/graph-gophers/graphql-go"
	graphqlgo "github.com/graphql-go/graphql"
)

// FromGraphGophers introspects a graph-gophers schema by executing the
// introspection query in process.
func FromGraphGophers(schema *gophers.Schema) (doc *Document, err error) {
	// ToJSON panics on execution errors
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("failed to introspect schema: %v", r)
		}
	}()

	data, err := schema.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to introspect schema: %w", err)
	}

	return Decode(data)
}

// FromGraphQLGo introspects a graphql-go schema by executing the
// introspection query in process.
func FromGraphQLGo(schema graphqlgo.Schema) (*Document, error) {
	result := graphqlgo.Do(graphqlgo.Params{
		Schema:        schema,
		RequestString: Query,
	})

	if result.HasErrors() {
		msgs := make([]string, 0, len(result.Errors))
		for _, e := range result.Errors {
			msgs = append(msgs, e.Message)
		}

		return nil, fmt.Errorf("failed to introspect schema: %s", strings.Join(msgs, "; "))
	}

	data, err := json.Marshal(result.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode introspection result: %w", err)
	}

	return Decode(data)
}
