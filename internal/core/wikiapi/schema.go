package wikiapi

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/wikilens/wiki/internal/core"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const schemaBaseURL = "https://wikilens.dev/schemas/wikiapi/"

var schemaFiles = map[core.Operation]string{
	core.OperationSearch: "search.json",
	core.OperationPage:   "page.json",
	core.OperationRandom: "random.json",
}

var loadSchemas = sync.OnceValues(func() (map[core.Operation]*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	for _, name := range schemaFiles {
		data, err := schemaFS.ReadFile(path.Join("schemas", name))
		if err != nil {
			return nil, fmt.Errorf("reading schema %s: %w", name, err)
		}
		if err := compiler.AddResource(schemaBaseURL+name, bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("adding schema %s: %w", name, err)
		}
	}

	schemas := make(map[core.Operation]*jsonschema.Schema, len(schemaFiles))
	for op, name := range schemaFiles {
		schema, err := compiler.Compile(schemaBaseURL + name)
		if err != nil {
			return nil, fmt.Errorf("compiling schema %s: %w", name, err)
		}
		schemas[op] = schema
	}
	return schemas, nil
})

// validate checks a generically decoded document against the schema for op.
func validate(op core.Operation, doc any) error {
	schemas, err := loadSchemas()
	if err != nil {
		return err
	}
	schema, ok := schemas[op]
	if !ok {
		return fmt.Errorf("no response schema for operation %q", op)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s response: %w", ErrSchema, op, err)
	}
	return nil
}
