package config

import (
	"encoding/json"
	"reflect"
	"time"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of a parameter file.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == reflect.TypeOf(time.Duration(0)) {
				return &jsonschema.Schema{
					Type:        "string",
					Description: "A Go duration such as 300m, or a number of seconds",
				}
			}
			return nil
		},
	}
	s := r.Reflect(&Parameters{})
	s.Title = "chordsat parameters"
	return json.MarshalIndent(s, "", "  ")
}
