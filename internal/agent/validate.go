package agent

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaCache caches compiled tool schemas by tool name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// DecodeArgs validates a tool call's raw arguments against the tool's
// parameter schema and unmarshals them into dst. Any failure yields
// *ErrInvalidToolCall, keeping payload faults distinct from HTTP faults.
func DecodeArgs(tool Tool, raw json.RawMessage, dst any) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidToolCall{
			Tool: tool.Name,
			Raw:  raw,
			Err:  fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := compiledSchema(tool)
	if err != nil {
		return &ErrInvalidToolCall{
			Tool: tool.Name,
			Raw:  raw,
			Err:  fmt.Errorf("compile schema: %w", err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidToolCall{
			Tool: tool.Name,
			Raw:  raw,
			Err:  fmt.Errorf("schema validation failed: %w", err),
		}
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return &ErrInvalidToolCall{
			Tool: tool.Name,
			Raw:  raw,
			Err:  fmt.Errorf("unmarshal arguments: %w", err),
		}
	}

	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(tool Tool) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(tool.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library wants a parsed JSON value, not a Go map
	// holding arbitrary types. Round-trip through encoding/json.
	defBytes, err := json.Marshal(tool.Parameters)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", tool.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(tool.Name, compiled)
	return compiled, nil
}
