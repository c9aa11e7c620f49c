package validation

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New returns a validator that reports JSON field names and knows the custom tags.
func New() *validator.Validate {
	v := validator.New()
	Configure(v)
	return v
}

// Configure applies the JSON naming and custom tags to an existing validator,
// such as the one behind gin's binding package.
func Configure(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
	RegisterValidators(v)
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", NotBlank)
	_ = v.RegisterValidation("range", Range)
}

// NotBlank rejects empty or whitespace-only strings, and slices without a
// single non-blank string element.
func NotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		return strings.TrimSpace(field.String()) != ""
	case reflect.Slice, reflect.Array:
		for i := 0; i < field.Len(); i++ {
			item := field.Index(i)
			if item.Kind() != reflect.String || strings.TrimSpace(item.String()) != "" {
				return true
			}
		}
		return false
	default:
		return !field.IsZero()
	}
}

// Range checks an inclusive numeric range written as `range=MIN MAX`.
func Range(fl validator.FieldLevel) bool {
	lo, hi, ok := parseRange(fl.Param())
	if !ok {
		return false
	}
	field := fl.Field()
	var n float64
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = float64(field.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n = float64(field.Uint())
	case reflect.Float32, reflect.Float64:
		n = field.Float()
	default:
		return false
	}
	return n >= float64(lo) && n <= float64(hi)
}

func parseRange(param string) (int, int, bool) {
	parts := strings.Fields(param)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lo, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	hi, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return lo, hi, true
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
