package util

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct 根据 validate 标签校验结构体，只返回第一个失败字段
func ValidateStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			firstError := vErrs[0]
			return fmt.Errorf("field [%s] failed on rule [%s]",
				firstError.Namespace(),
				firstError.Tag())
		}
		return err
	}
	return nil
}
