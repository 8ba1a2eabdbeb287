package http

import (
	"fmt"
	"net/http"

	"github.com/oapi-codegen/runtime"
)

// bindPathParam binds a required path segment declared in the route pattern.
func bindPathParam(r *http.Request, name string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, r.PathValue(name), dest, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}
	return nil
}

// bindQueryParam binds a form style query parameter.
func bindQueryParam(r *http.Request, name string, required bool, dest any) error {
	err := runtime.BindQueryParameter("form", true, required, name, r.URL.Query(), dest)
	if err != nil {
		return fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}
	return nil
}
