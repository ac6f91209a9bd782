package rangeflags

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-collection-utils/collections"
)

// Format selects how generated values are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// Render writes values to w in the given format: one value per line for
// text, a single array for json and a sequence for yaml.
func Render(w io.Writer, format Format, values collections.Enumerable[any]) error {
	switch format {
	case FormatText:
		var err error
		values.Each(func(v any, _ int) {
			if err == nil {
				_, err = fmt.Fprintln(w, v)
			}
		})
		return errors.Wrap(err, "writing text")
	case FormatJSON:
		return errors.Wrap(json.NewEncoder(w).Encode(values.All()), "encoding json")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(values.All()); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return errors.Wrap(enc.Close(), "closing yaml encoder")
	default:
		return errors.Errorf("unknown format %q, expected one of %v", format, lo.Map(Formats, func(f Format, _ int) string { return string(f) }))
	}
}
