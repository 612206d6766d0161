package util

import (
	"github.com/go-playground/validator/v10"

	"github.com/cellviz/nicodash/internal/constant"
)

func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("controlid", controlID)
	validate.RegisterValidation("chartid", chartID)

	return validate
}

func controlID(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	return val == constant.ControlNicotine || val == constant.ControlMedicine
}

func chartID(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	return val == constant.ChartCytokineLevels || val == constant.ChartCellHealth
}
