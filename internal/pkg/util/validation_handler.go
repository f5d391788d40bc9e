package util

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO 按结构体 validate 标签校验，错误交由统一响应层映射
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}
