package util

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"gopkg.in/guregu/null.v3"

	"github.com/dragon-traveler/wiki-backend/internal/constant"
)

func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("tier", tier)
	validate.RegisterValidation("quality", quality)
	validate.RegisterValidation("faction", faction)
	validate.RegisterValidation("wyrmslot", wyrmslot)
	validate.RegisterValidation("contenttype", contentType)
	validate.RegisterValidation("characterclass", characterClass)
	validate.RegisterValidation("suggestioncategory", suggestionCategory)
	validate.RegisterCustomTypeFunc(nullIntValuer, null.Int{})
	validate.RegisterCustomTypeFunc(nullStringValuer, null.String{})

	return validate
}

func oneOf(val string, candidates []string) bool {
	for _, c := range candidates {
		if val == c {
			return true
		}
	}
	return false
}

func tier(fl validator.FieldLevel) bool {
	return oneOf(fl.Field().String(), constant.Tiers)
}

func quality(fl validator.FieldLevel) bool {
	return oneOf(fl.Field().String(), constant.Qualities)
}

func faction(fl validator.FieldLevel) bool {
	return oneOf(fl.Field().String(), constant.FactionNames)
}

func wyrmslot(fl validator.FieldLevel) bool {
	return oneOf(fl.Field().String(), constant.WyrmspellSlots)
}

func contentType(fl validator.FieldLevel) bool {
	return oneOf(fl.Field().String(), constant.ContentTypes)
}

func characterClass(fl validator.FieldLevel) bool {
	return oneOf(fl.Field().String(), constant.CharacterClasses)
}

func suggestionCategory(fl validator.FieldLevel) bool {
	return oneOf(fl.Field().String(), constant.SuggestionCategories)
}

func nullIntValuer(field reflect.Value) interface{} {
	if valuer, ok := field.Interface().(null.Int); ok {
		return valuer.Int64
	}

	return nil
}

func nullStringValuer(field reflect.Value) interface{} {
	if valuer, ok := field.Interface().(null.String); ok {
		return valuer.String
	}

	return nil
}
