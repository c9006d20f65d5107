package app

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	val "github.com/go-playground/validator/v10"
)

// ValidError single field validation error
// ValidError 单个字段的校验错误
type ValidError struct {
	Key     string
	Message string
}

type ValidErrors []*ValidError

func (v *ValidError) Error() string {
	return v.Message
}

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

func (v ValidErrors) ErrorsToString() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Maps() map[string]string {
	m := map[string]string{}
	for _, err := range v {
		m[err.Key] = err.Message
	}
	return m
}

func (v ValidErrors) MapsToString() string {
	str, err := sonic.Marshal(v.Maps())
	if err != nil {
		return v.Error()
	}
	return string(str)
}

// BindAndValid binds request params and translates validation errors
// BindAndValid 绑定请求参数并翻译校验错误
func BindAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	var errs ValidErrors
	err := c.ShouldBind(v)
	if err != nil {
		verrs, ok := err.(val.ValidationErrors)
		if !ok {
			errs = append(errs, &ValidError{
				Key:     "body",
				Message: err.Error(),
			})
			return false, errs
		}

		trans, _ := c.Get("trans")
		if translator, ok := trans.(ut.Translator); ok {
			for key, value := range verrs.Translate(translator) {
				errs = append(errs, &ValidError{
					Key:     key,
					Message: value,
				})
			}
		} else {
			// 无翻译器时退回原始错误文本
			for _, fieldErr := range verrs {
				errs = append(errs, &ValidError{
					Key:     fieldErr.Field(),
					Message: fieldErr.Error(),
				})
			}
		}
		return false, errs
	}

	return true, nil
}
