package rekuest

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	jaTranslations "github.com/go-playground/validator/v10/translations/ja"
	zhTranslations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/cellviz/nicodash/internal/constant"
	"github.com/cellviz/nicodash/internal/pkg/apperr"
	"github.com/cellviz/nicodash/internal/util"
	"github.com/cellviz/nicodash/internal/util/i18n"
)

var Validate = util.NewValidator()

func init() {
	registrations := map[string]func(*validator.Validate, ut.Translator) error{
		"en": enTranslations.RegisterDefaultTranslations,
		"zh": zhTranslations.RegisterDefaultTranslations,
		"ja": jaTranslations.RegisterDefaultTranslations,
	}

	for locale, register := range registrations {
		tr, _ := i18n.UT.GetTranslator(locale)
		if err := register(Validate, tr); err != nil {
			log.Warn().Err(err).Str("locale", locale).Msg("could not register translation")
		}
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

func TranslatorFromCtx(ctx *fiber.Ctx) ut.Translator {
	if t, ok := ctx.Locals(constant.ContextKeyTranslator).(ut.Translator); ok {
		return t
	}
	return i18n.UT.GetFallback()
}

// translate translates errors into ErrorResponses
func translate(utt ut.Translator, ve validator.ValidationErrors) []*ErrorResponse {
	trans := make([]*ErrorResponse, 0, len(ve))
	for _, fe := range ve {
		trans = append(trans, &ErrorResponse{
			Field:     fe.Namespace(),
			Violation: fe.Tag(),
			Message:   fe.Translate(utt),
		})
	}
	return trans
}

func validateStruct(ctx *fiber.Ctx, s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			panic(err)
		}
		return translate(TranslatorFromCtx(ctx), errs)
	}
	return nil
}

// ValidQuery will parse the query string from *fiber.Ctx using fiber#QueryParser(),
// and validate it using the validator singleton. Values failing a min/max rule are
// reported as OUT_OF_RANGE, everything else as INVALID_REQUEST. Notice that dest shall
// always be a pointer.
func ValidQuery(ctx *fiber.Ctx, dest any) error {
	if err := ctx.QueryParser(dest); err != nil {
		return apperr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	return ValidStruct(ctx, dest)
}

// ValidParams is the same as ValidQuery for route parameters.
func ValidParams(ctx *fiber.Ctx, dest any) error {
	if err := ctx.ParamsParser(dest); err != nil {
		return apperr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	return ValidStruct(ctx, dest)
}

func ValidStruct(ctx *fiber.Ctx, dest any) error {
	violations := validateStruct(ctx, dest)
	if violations == nil {
		return nil
	}

	for _, v := range violations {
		if v.Violation != "min" && v.Violation != "max" {
			return apperr.NewInvalidViolations(violations)
		}
	}
	return apperr.ErrOutOfRange.WithExtras(apperr.Extras{
		"violations": violations,
	})
}
