package dto

import "github.com/noah-isme/manpower-erp-api/internal/models"

// CartResponse is the current cart with its running total.
type CartResponse struct {
	Items []models.Product `json:"items"`
	Count int              `json:"count"`
	Total int64            `json:"total"`
}
