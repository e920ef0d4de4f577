package dtos

type ConvertCurrencyRequest struct {
	Amount float64 `json:"amount" validate:"gte=0"`
	From   string  `json:"from" validate:"required,oneof=USD UGX"`
	To     string  `json:"to" validate:"required,oneof=USD UGX"`
}

type UpdateExchangeRateRequest struct {
	Rate float64 `json:"rate" validate:"required,gt=0"`
}
