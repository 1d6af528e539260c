package order

import "boutique-app/internal/cart"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
)

type Type string

const (
	TypeDelivery Type = "delivery"
	TypeBooking  Type = "booking"
)

// PromoCode is reserved for future discount logic; no current flow
// applies one.
type PromoCode struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discountPercent"`
}

// Order is an immutable checkout record. Items and TotalPrice are fixed at
// submission; only Status ever changes, and only pending -> confirmed.
type Order struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	Location      string      `json:"location"`
	Items         []cart.Item `json:"items"`
	Type          Type        `json:"type"`
	Status        Status      `json:"status"`
	TotalPrice    int64       `json:"totalPrice"`
	UserTelegram  string      `json:"userTelegram"`
}
