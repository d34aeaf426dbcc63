package argot

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed info.schema.json
var infoSchemaJSON string

var infoSchema = func() *jsonschema.Schema {
	s, err := jsonschema.CompileString("info.schema.json", infoSchemaJSON)
	if err != nil {
		panic(fmt.Sprintf("argot: compiling info schema: %v", err))
	}
	return s
}()

// ValidateInfoJSON checks a serialized CmdInfo document against the
// published metadata schema. Documentation generators can use it to
// reject hand-edited or truncated metadata before rendering.
func ValidateInfoJSON(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding metadata: %w", err)
	}
	if err := infoSchema.Validate(doc); err != nil {
		return fmt.Errorf("validating metadata: %w", err)
	}
	return nil
}
