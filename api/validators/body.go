package validators

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/acmelabs/storefront-api/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// DecodeJSONBody parses and validates a request body. A body that is not
// valid JSON yields a validation error with the fixed "Invalid JSON data"
// message; a missing required field yields one naming that field.
func DecodeJSONBody(r *http.Request, dest any) error {
	defer func() {
		io.Copy(io.Discard, r.Body)
	}()
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid JSON data")
	}
	if err := validate.Struct(dest); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) *pkgerrors.Error {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fieldErr := errs[0]
		if fieldErr.Tag() == "required" {
			return pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("Missing required field: %s", fieldErr.Field()))
		}
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("Invalid field: %s", fieldErr.Field()))
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid request data")
}
