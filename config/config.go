package config

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"strings"
)

type AppConfig struct {
	// masscan 可执行文件
	SystemPath string `validate:"required"`
	Sudo       bool

	// target 和 input 二选一
	Target    string `validate:"required_without=InputFile,excluded_with=InputFile"`
	InputFile string `validate:"required_without=Target"`

	Ports   string `validate:"required"`
	Rate    uint   `validate:"gt=0"`
	Exclude string
	Banners bool

	// 原样透传给 masscan 的参数
	ExtraArgs []string

	OutputFile   string
	OutputFormat string `validate:"oneof=text json"`

	LogFile string
	Debug   bool
}

var appConfig AppConfig

func GetAppConfig() *AppConfig {
	return &appConfig
}

var validate = validator.New()

// Validate 检查参数是否完整、是否有冲突
func (c *AppConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, describe(fieldErr))
	}
	return fmt.Errorf("invalid options: %s", strings.Join(messages, "; "))
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldErr.Field())
	case "required_without":
		return fmt.Sprintf("one of %s and %s is required", fieldErr.Field(), fieldErr.Param())
	case "excluded_with":
		return fmt.Sprintf("%s and %s cannot be set at the same time", fieldErr.Field(), fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fieldErr.Field(), fieldErr.Param(), fieldErr.Value())
	}
	return fmt.Sprintf("%s failed on %s", fieldErr.Field(), fieldErr.Tag())
}
