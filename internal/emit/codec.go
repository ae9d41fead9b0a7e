package emit

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/exbotanical/ysdocs/internal/foundation/errors"
	"github.com/exbotanical/ysdocs/internal/nav"
)

const jsonIndent = "  "

// Encode renders cfg in the given format. The output ends with a newline.
func Encode(cfg nav.SiteConfig, format Format) ([]byte, error) {
	w := toWire(cfg)
	switch format {
	case FormatJSON:
		return encodeJSON(w)
	case FormatYAML:
		return encodeYAML(w)
	case FormatModule:
		body, err := encodeJSON(w)
		if err != nil {
			return nil, err
		}
		return renderModule(bytes.TrimRight(body, "\n"))
	default:
		return nil, errors.InternalError("unsupported format").WithContext("format", string(format)).Build()
	}
}

// Decode parses data produced by Encode (or written by hand in the same shape).
func Decode(data []byte, format Format) (nav.SiteConfig, error) {
	var w wireSite
	switch format {
	case FormatJSON:
		if err := jsonAPI.Unmarshal(data, &w); err != nil {
			return nav.SiteConfig{}, errors.WrapError(err, errors.CategoryEmit, "decode json").Build()
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &w); err != nil {
			return nav.SiteConfig{}, errors.WrapError(err, errors.CategoryEmit, "decode yaml").Build()
		}
	case FormatModule:
		body, err := extractModuleBody(data)
		if err != nil {
			return nav.SiteConfig{}, err
		}
		if err := jsonAPI.Unmarshal(body, &w); err != nil {
			return nav.SiteConfig{}, errors.WrapError(err, errors.CategoryEmit, "decode config module").Build()
		}
	default:
		return nav.SiteConfig{}, errors.InternalError("unsupported format").WithContext("format", string(format)).Build()
	}
	return fromWire(w), nil
}

func encodeJSON(w wireSite) ([]byte, error) {
	raw, err := jsonAPI.Marshal(w)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryEmit, "encode json").Build()
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", jsonIndent); err != nil {
		return nil, errors.WrapError(err, errors.CategoryEmit, "indent json").Build()
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func encodeYAML(w wireSite) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(w); err != nil {
		return nil, errors.WrapError(err, errors.CategoryEmit, "encode yaml").Build()
	}
	if err := enc.Close(); err != nil {
		return nil, errors.WrapError(err, errors.CategoryEmit, "encode yaml").Build()
	}
	return buf.Bytes(), nil
}
