package site

import (
	"fmt"
	"path/filepath"

	"github.com/evanw/esbuild/pkg/api"
)

// MinifyAsset minifies a CSS or JS asset with esbuild. Other file
// types are returned unchanged.
func MinifyAsset(name string, data []byte) ([]byte, error) {
	var loader api.Loader
	switch filepath.Ext(name) {
	case ".css":
		loader = api.LoaderCSS
	case ".js":
		loader = api.LoaderJS
	default:
		return data, nil
	}

	result := api.Transform(string(data), api.TransformOptions{
		Loader:            loader,
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		Target:            api.ES2020,
		LogLevel:          api.LogLevelSilent,
	})

	if len(result.Errors) > 0 {
		var errMsg string
		for _, err := range result.Errors {
			errMsg += fmt.Sprintf("%d:%d: %s\n", err.Location.Line, err.Location.Column, err.Text)
		}
		return nil, fmt.Errorf("esbuild errors in %s:\n%s", name, errMsg)
	}

	return result.Code, nil
}
