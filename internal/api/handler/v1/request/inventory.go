package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type AddPartRequest struct {
	Name  string `json:"name"`
	SKU   string `json:"sku"`
	Stock int    `json:"stock"`
}

func (req *AddPartRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.SKU, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Stock, validation.Min(0)),
	)
}

type UpdateStockRequest struct {
	Stock int `json:"stock"`
}

func (req *UpdateStockRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Stock, validation.Min(0)),
	)
}
