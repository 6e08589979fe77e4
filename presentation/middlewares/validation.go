package middlewares

import (
	"reflect"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

type DefaultValidator struct {
	once       sync.Once
	validate   *validator.Validate
	translator ut.Translator
}

var _ binding.StructValidator = &DefaultValidator{}

func (v *DefaultValidator) ValidateStruct(obj any) error {
	if kindOfData(obj) == reflect.Struct {
		v.lazyinit()
		if err := v.validate.Struct(obj); err != nil {
			return err
		}
	}
	return nil
}

func (v *DefaultValidator) Engine() any {
	v.lazyinit()
	return v.validate
}

func (v *DefaultValidator) Translator() ut.Translator {
	v.lazyinit()
	return v.translator
}

func (v *DefaultValidator) lazyinit() {
	v.once.Do(func() {
		v.validate = validator.New(validator.WithRequiredStructEnabled())
		v.validate.SetTagName("binding")

		en := en.New()
		uni := ut.New(en, en)

		v.translator, _ = uni.GetTranslator("en")

		en_translations.RegisterDefaultTranslations(v.validate, v.translator)

		v.registerCustomTranslations()
	})
}

func (v *DefaultValidator) registerCustomTranslations() {
	v.validate.RegisterTranslation("required", v.translator, func(ut ut.Translator) error {
		return ut.Add("required", "{0} is required", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("required", fe.Field())
		return t
	})

	v.validate.RegisterTranslation("gte", v.translator, func(ut ut.Translator) error {
		return ut.Add("gte", "{0} must be greater than or equal to {1}", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("gte", fe.Field(), fe.Param())
		return t
	})

	v.validate.RegisterTranslation("lte", v.translator, func(ut ut.Translator) error {
		return ut.Add("lte", "{0} must be less than or equal to {1}", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("lte", fe.Field(), fe.Param())
		return t
	})

	v.validate.RegisterTranslation("oneof", v.translator, func(ut ut.Translator) error {
		return ut.Add("oneof", "{0} must be one of [{1}]", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("oneof", fe.Field(), fe.Param())
		return t
	})
}

func TranslateValidationErrors(err error) []string {
	var messages []string

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		if v, ok := binding.Validator.(*DefaultValidator); ok {
			trans := v.Translator()
			for _, e := range validationErrs {
				messages = append(messages, e.Translate(trans))
			}
		}
	}

	return messages
}

func TranslateValidationError(err error) string {
	messages := TranslateValidationErrors(err)
	if len(messages) > 0 {
		return messages[0]
	}
	return err.Error()
}

func kindOfData(data any) reflect.Kind {
	value := reflect.ValueOf(data)
	valueType := value.Kind()

	if valueType == reflect.Pointer {
		valueType = value.Elem().Kind()
	}

	return valueType
}
