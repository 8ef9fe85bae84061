package http

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
	TraceID string       `json:"trace_id,omitempty"`
}

var reApplicantName = regexp.MustCompile(`^[a-zA-Z\s\-'\.]+$`)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// report json names ("applicant_name") instead of Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	// money fields are decimals; built-in tags (required) see them as float64
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// max 2 decimal places, checked on the exact decimal when there is one
	_ = v.RegisterValidation("dec2", func(fl validator.FieldLevel) bool {
		if d, ok := fieldDecimal(fl); ok {
			return d.Equal(d.Round(2))
		}
		f := fl.Field().Float()
		return math.Abs(f-(math.Round(f*100)/100)) < 1e-9
	})
	// exact decimal bounds: dgt=0, dlte=10000000
	_ = v.RegisterValidation("dgt", decimalBound(func(d, p decimal.Decimal) bool { return d.GreaterThan(p) }))
	_ = v.RegisterValidation("dlte", decimalBound(func(d, p decimal.Decimal) bool { return d.LessThanOrEqual(p) }))
	// letters, spaces, hyphens, apostrophes and periods
	_ = v.RegisterValidation("applicant_name", func(fl validator.FieldLevel) bool {
		return reApplicantName.MatchString(fl.Field().String())
	})

	return &CustomValidator{v: v}
}

// fieldDecimal recovers the original decimal.Decimal behind a field the
// custom type func has already turned into a float64.
func fieldDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	parent := reflect.Indirect(fl.Parent())
	if parent.Kind() != reflect.Struct {
		return decimal.Decimal{}, false
	}
	f := parent.FieldByName(fl.StructFieldName())
	if !f.IsValid() || !f.CanInterface() {
		return decimal.Decimal{}, false
	}
	d, ok := f.Interface().(decimal.Decimal)
	return d, ok
}

func decimalBound(cmp func(d, param decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		param, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		d, ok := fieldDecimal(fl)
		if !ok {
			d = decimal.NewFromFloat(fl.Field().Float())
		}
		return cmp(d, param)
	}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "dec2":
			out = append(out, FieldError{Field: field, Message: "must have at most 2 decimal places"})
		case "applicant_name":
			out = append(out, FieldError{Field: field, Message: "can only contain letters, spaces, hyphens, apostrophes, and periods"})
		case "gt", "dgt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte", "dlte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		case "min":
			out = append(out, FieldError{Field: field, Message: "must be at least " + e.Param() + " characters"})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param() + " characters"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
