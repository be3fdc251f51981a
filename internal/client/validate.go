package client

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/image-ranking-studies/studyfront/internal/study"
)

// Each study type carries its own result payload shape. The shapes are pinned
// as JSON schemas and every payload is validated before it goes on the wire,
// so a malformed result is rejected locally instead of bouncing off the
// backend's model validation.

//go:embed schemas/*.json
var schemaFS embed.FS

var resultSchemas = mustCompileResultSchemas()

func mustCompileResultSchemas() map[study.Type]*jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	names := []string{"mt_params"}
	for _, t := range study.Types() {
		names = append(names, fmt.Sprintf("%s_result", t))
	}

	for _, name := range names {
		file := fmt.Sprintf("%s.json", name)
		data, err := schemaFS.ReadFile("schemas/" + file)
		if err != nil {
			panic(fmt.Sprintf("missing embedded schema %s: %v", file, err))
		}
		if err := compiler.AddResource(file, bytes.NewReader(data)); err != nil {
			panic(fmt.Sprintf("invalid embedded schema %s: %v", file, err))
		}
	}

	schemas := make(map[study.Type]*jsonschema.Schema, len(study.Types()))
	for _, t := range study.Types() {
		schema, err := compiler.Compile(fmt.Sprintf("%s_result.json", t))
		if err != nil {
			panic(fmt.Sprintf("failed to compile %s result schema: %v", t, err))
		}
		schemas[t] = schema
	}
	return schemas
}

// validateResult checks the marshalled payload against the schema of its study
// type and returns the payload bytes on success, so the validated document and
// the transmitted document are one and the same.
func validateResult(res study.Result) ([]byte, error) {
	schema, ok := resultSchemas[res.StudyType()]
	if !ok {
		return nil, fmt.Errorf("no payload schema for study type %q", res.StudyType())
	}

	data, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s result: %w", res.StudyType(), err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("re-reading %s result: %w", res.StudyType(), err)
	}

	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%s result payload is invalid: %w", res.StudyType(), err)
	}

	return data, nil
}
