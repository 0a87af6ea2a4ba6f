package binder

import (
	"github.com/go-playground/validator/v10"
)

// mediaTypeValidator accepts the catalog kinds that have discover, details,
// and credits endpoints: "movie" and "tv". People and the "all" trending
// bucket are list-only and are validated with oneof instead.
func mediaTypeValidator(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "movie", "tv":
		return true
	default:
		return false
	}
}
