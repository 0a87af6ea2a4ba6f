package binder

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/segmentio/encoding/json"
)

const (
	mediaType = "mediatype"
	mx        = "max"
	mn        = "min"
	oneof     = "oneof"
	required  = "required"
)

func formatUnmarshalTypeError(err *json.UnmarshalTypeError) string {
	return fmt.Sprintf("%q should be of type %s", strings.Trim(err.Field, "."), err.Type)
}

func formatSchemaConversionError(err schema.ConversionError) string {
	return fmt.Sprintf("%q should be of type %s", err.Key, err.Type)
}

func formatValidationError(err validator.FieldError) string {
	field := err.Field()

	switch err.Tag() {
	case mediaType:
		return fmt.Sprintf("%q must be one of the following: %s", field, quoteAll([]string{"movie", "tv"}))
	case mx:
		return formatBound(err, "less")
	case mn:
		return formatBound(err, "greater")
	case oneof:
		return fmt.Sprintf("%q must be one of the following: %s", field, quoteAll(strings.Fields(err.Param())))
	case required:
		return fmt.Sprintf("%q is required", field)
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}

// formatBound describes a failed min or max rule. Numbers are compared by
// value, strings and slices by length.
func formatBound(err validator.FieldError, direction string) string {
	field, param := err.Field(), err.Param()

	//exhaustive:ignore
	switch err.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%q must be %s than or equal to %s", field, direction, param)
	}

	unit := "character"
	if err.Kind() == reflect.Slice {
		unit = "element"
	}
	if param != "1" {
		unit += "s"
	}
	return fmt.Sprintf("%q length must be %s than or equal to %s %s", field, direction, param, unit)
}

func quoteAll(values []string) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, fmt.Sprintf("%q", v))
	}
	return strings.Join(quoted, ", ")
}
