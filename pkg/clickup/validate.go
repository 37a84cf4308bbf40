package clickup

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

type validatorSvc struct {
	validate   *validator.Validate
	translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *validatorSvc
)

// validation returns the shared validator with english messages and json field names.
func validation() *validatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("url")
			if tag == "" {
				tag = fld.Tag.Get("json")
			}
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		vSvc = &validatorSvc{validate: v, translator: trans}
	})
	return vSvc
}

// fieldCodes maps struct field names to the code their validation failures carry.
var fieldCodes = map[string]string{
	"Priority": CodePriorityOutOfRange,
	"OrderBy":  CodeInvalidOrderBy,
}

// validate checks v against its struct tags and reports the first failure as a [ClientError].
func validate(v any) error {
	svc := validation()
	err := svc.validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ClientError{Message: "validation error", Code: CodeInvalidArgument, err: err}
	}

	fe := verrs[0]
	code, ok := fieldCodes[fe.StructField()]
	if !ok {
		code = CodeInvalidArgument
	}
	return &ClientError{Message: fe.Translate(svc.translator), Code: code, err: err}
}

// ValidPriority reports whether p is in the accepted 1 (urgent) to 4 (low) range.
func ValidPriority(p int) bool {
	return p >= 1 && p <= 4
}
