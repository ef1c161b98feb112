package validator

import (
	"reflect"
	"regexp"
	"strings"

	validators "github.com/go-playground/validator/v10"
)

// waIDPattern matches a WhatsApp id: the sender's phone number in
// international format without the leading plus
var waIDPattern = regexp.MustCompile(`^[0-9]{6,20}$`)

// Validator interface
type Validator interface {
	ValidateStruct(inf interface{}) error
}

type validator struct {
	validator *validators.Validate
}

// New Validator func
func New() Validator {
	v := validators.New()
	// Report fields by their JSON name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("wa_id", func(fl validators.FieldLevel) bool {
		return waIDPattern.MatchString(fl.Field().String())
	})
	return &validator{
		validator: v,
	}
}

// ValidateStruct func
func (v *validator) ValidateStruct(inf interface{}) error {

	return v.validator.Struct(inf)
}
