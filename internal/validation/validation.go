// File: internal/validation/validation.go
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"user-service/internal/api"
)

// FieldError 單一欄位的驗證失敗
type FieldError struct {
	Field   string
	Message string
}

// Errors 依結構欄位順序收集所有驗證失敗
type Errors []FieldError

// Error 每個欄位只取第一則訊息，以 "field: message, ..." 串接
func (e Errors) Error() string {
	seen := make(map[string]bool, len(e))
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		if seen[fe.Field] {
			continue
		}
		seen[fe.Field] = true
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, ", ")
}

// messages 以 "欄位.tag" 對應使用者訊息
var messages = map[string]string{
	"name.min":          "Name cannot be empty",
	"email.email":       "Invalid email format",
	"email.emaildomain": "Invalid email format",
}

// Validator 實作 echo.Validator
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("emaildomain", emailDomain); err != nil {
		panic(err)
	}
	return &Validator{validate: v}
}

// Validate 驗證任意 struct；欄位錯誤轉為 Errors
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	out := make(Errors, 0, len(ves))
	for _, fe := range ves {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func (v *Validator) ValidateCreate(req api.CreateUserRequest) error {
	return v.Validate(req)
}

func (v *Validator) ValidateUpdate(req api.UpdateUserRequest) error {
	return v.Validate(req)
}

func message(fe validator.FieldError) string {
	if m, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return m
	}
	return fmt.Sprintf("failed on '%s'", fe.Tag())
}

// emailDomain 要求 @ 之後至少兩段以 . 分隔且無空段
func emailDomain(fl validator.FieldLevel) bool {
	f := fl.Field()
	for f.Kind() == reflect.Ptr {
		if f.IsNil() {
			return true
		}
		f = f.Elem()
	}
	s := f.String()
	at := strings.LastIndex(s, "@")
	if at < 0 {
		return false
	}
	labels := strings.Split(s[at+1:], ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" {
			return false
		}
	}
	return true
}
