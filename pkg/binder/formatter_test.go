package binder

import (
	"reflect"
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/stretchr/testify/assert"
)

type mockFieldError struct {
	tag   string
	field string
	param string
	kind  reflect.Kind
}

func (e *mockFieldError) Error() string           { return "Mock Field Error" }
func (e *mockFieldError) Tag() string             { return e.tag }
func (e *mockFieldError) ActualTag() string       { return e.tag }
func (e *mockFieldError) Namespace() string       { return "" }
func (e *mockFieldError) StructNamespace() string { return "" }
func (e *mockFieldError) Field() string           { return e.field }
func (e *mockFieldError) StructField() string     { return "" }
func (e *mockFieldError) Value() interface{}      { return "" }
func (e *mockFieldError) Param() string           { return e.param }
func (e *mockFieldError) Kind() reflect.Kind {
	if e.kind == 0 {
		return reflect.String
	}
	return e.kind
}
func (e *mockFieldError) Type() reflect.Type               { return reflect.TypeOf("") }
func (e *mockFieldError) Translate(_ ut.Translator) string { return "" }

func TestFormatValidationError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tag   string
		param string
		kind  reflect.Kind
		msg   string
	}{
		{mediaType, "", 0, `"media_type" must be one of the following: "movie", "tv"`},
		{mx, "100", reflect.String, `"media_type" length must be less than or equal to 100 characters`},
		{mn, "1", reflect.String, `"media_type" length must be greater than or equal to 1 character`},
		{mx, "500", reflect.Int, `"media_type" must be less than or equal to 500`},
		{mn, "0", reflect.Int64, `"media_type" must be greater than or equal to 0`},
		{mx, "3", reflect.Slice, `"media_type" length must be less than or equal to 3 elements`},
		{mn, "1", reflect.Slice, `"media_type" length must be greater than or equal to 1 element`},
		{oneof, "day week", 0, `"media_type" must be one of the following: "day", "week"`},
		{required, "", 0, `"media_type" is required`},
		{"uuid4", "", 0, `"media_type" is invalid`},
	}

	for _, tt := range cases {
		err := mockFieldError{tag: tt.tag, field: "media_type", param: tt.param, kind: tt.kind}
		assert.Equal(t, tt.msg, formatValidationError(&err), tt.tag)
	}
}
