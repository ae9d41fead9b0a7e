package emit

import (
	"bytes"
	"text/template"

	"github.com/exbotanical/ysdocs/internal/foundation/errors"
	"github.com/exbotanical/ysdocs/internal/version"
)

const moduleCall = "defineConfig("

var moduleTemplate = template.Must(template.New("config.mts").Parse(
	`// Code generated by ysdocs {{ .Version }}. DO NOT EDIT.
// The navigation lives in internal/site; run "ysdocs generate" after changing it.

import { defineConfig } from 'vitepress'

// https://vitepress.dev/reference/site-config
export default ` + moduleCall + `{{ .Body }})
`))

func renderModule(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Version string
		Body    string
	}{
		Version: version.Version,
		Body:    string(body),
	}
	if err := moduleTemplate.Execute(&buf, data); err != nil {
		return nil, errors.WrapError(err, errors.CategoryEmit, "render config module").Build()
	}
	return buf.Bytes(), nil
}

// extractModuleBody returns the object literal passed to defineConfig.
func extractModuleBody(data []byte) ([]byte, error) {
	start := bytes.Index(data, []byte(moduleCall))
	end := bytes.LastIndexByte(data, ')')
	if start < 0 || end < start+len(moduleCall) {
		return nil, errors.EmitError("config module does not call defineConfig").Build()
	}
	return data[start+len(moduleCall) : end], nil
}
