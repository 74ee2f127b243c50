// Package templating provides Go template support for formatting command
// output, including command line flags for specifying templates.
package templating

import (
	"bytes"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/dustin/go-humanize"
)

// jsonify is the built-in JSON encoder that's made available to templates.
func jsonify(value any) (string, error) {
	// Create and configure a JSON encoder.
	buffer := &bytes.Buffer{}
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)

	// Marshal the value.
	if err := encoder.Encode(value); err != nil {
		return "", err
	}

	// Remove the trailing newline that's automatically added by Encode.
	return strings.TrimSuffix(buffer.String(), "\n"), nil
}

// builtins are the builtin functions supported in output templates.
var builtins = template.FuncMap{
	"json":  jsonify,
	"bytes": humanize.Bytes,
}
