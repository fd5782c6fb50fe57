package rekuest

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/dragon-traveler/wiki-backend/internal/pkg/wikierr"
	"github.com/dragon-traveler/wiki-backend/internal/util"
)

var Validate = util.NewValidator()

var translator ut.Translator

func init() {
	locale := en.New()
	uni := ut.New(locale, locale)
	translator, _ = uni.GetTranslator("en")

	if err := enTranslations.RegisterDefaultTranslations(Validate, translator); err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

// translate turns validator errors into ErrorResponses
func translate(ve validator.ValidationErrors) []*ErrorResponse {
	trans := []*ErrorResponse{}

	var fe validator.FieldError

	for i := 0; i < len(ve); i++ {
		fe = ve[i]

		trans = append(trans, &ErrorResponse{
			Field:     fe.Namespace(),
			Violation: fe.Tag(),
			Message:   fe.Translate(translator),
		})
	}

	return trans
}

func validateVar(s any, tag string) []*ErrorResponse {
	err := Validate.Var(s, tag)
	if err != nil {
		errs := err.(validator.ValidationErrors)
		return translate(errs)
	}
	return nil
}

func validateStruct(s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			panic(err)
		}
		return translate(errs)
	}
	return nil
}

// ValidBody gets the body from *fiber.Ctx using fiber#BodyParser(), and
// validates it using the validator singleton. If the validation passed it
// writes the unmarshalled body to dest and returns nil, otherwise it returns
// an error. dest shall always be a pointer.
func ValidBody(ctx *fiber.Ctx, dest any) error {
	if err := ctx.BodyParser(dest); err != nil {
		return wikierr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	if err := validateStruct(dest); err != nil {
		return wikierr.NewInvalidViolations(err)
	}

	return nil
}

func ValidStruct(ctx *fiber.Ctx, dest any) error {
	if err := validateStruct(dest); err != nil {
		return wikierr.NewInvalidViolations(err)
	}

	return nil
}

func ValidVar(ctx *fiber.Ctx, field any, tag string) error {
	if err := validateVar(field, tag); err != nil {
		return wikierr.NewInvalidViolations(err)
	}

	return nil
}

type contentTypeRequest struct {
	ContentType string `validate:"required,contenttype"`
}

func ValidContentType(ctx *fiber.Ctx, contentType string) error {
	return ValidStruct(ctx, contentTypeRequest{contentType})
}
