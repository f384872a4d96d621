package countries

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/xeipuuv/gojsonschema"
)

// rulesSchema is the JSON schema the rules file must satisfy. Validation runs
// once at startup so a malformed deployment fails fast instead of defaulting
// field by field at lookup time.
const rulesSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["countries"],
  "properties": {
    "countries": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["code", "name", "pageSize"],
        "properties": {
          "code": {"type": "string", "minLength": 2},
          "name": {"type": "string", "minLength": 1},
          "pageSize": {"type": "string", "enum": ["A4", "Letter"]},
          "margins": {
            "type": "object",
            "properties": {
              "top": {"type": "number", "minimum": 0},
              "right": {"type": "number", "minimum": 0},
              "bottom": {"type": "number", "minimum": 0},
              "left": {"type": "number", "minimum": 0}
            }
          },
          "includePhoto": {"type": "boolean"},
          "includeDateOfBirth": {"type": "boolean"},
          "includeNationality": {"type": "boolean"},
          "includeMaritalStatus": {"type": "boolean"},
          "guideline": {"type": "string"}
        }
      }
    }
  }
}`

func validateSchema(raw []byte) error {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse country rules: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(rulesSchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("validate country rules: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var msgs []string
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("country rules schema: %s", strings.Join(msgs, "; "))
}
