package types

import "math/big"

// TimeToken is a seller's offer of hours at an hourly rate.
type TimeToken struct {
	ID             uint64   `json:"id"`
	Seller         string   `json:"seller"`
	HourlyRate     *big.Int `json:"hourlyRate"`
	HoursAvailable uint32   `json:"hoursAvailable"`
	Description    string   `json:"description"`
}

// Receipt records hours bought by a buyer. It can be redeemed or resold.
type Receipt struct {
	ID            uint64   `json:"id"`
	Owner         string   `json:"owner,omitempty"`
	Seller        string   `json:"seller,omitempty"`
	TokenID       uint64   `json:"tokenId,omitempty"`
	Hours         uint32   `json:"hours"`
	OriginalRate  *big.Int `json:"originalRate"`
	PurchasePrice *big.Int `json:"purchasePrice"`
	Description   string   `json:"description"`
}

// Listing is a secondary-market offer to resell a receipt.
type Listing struct {
	ReceiptID uint64   `json:"receiptId"`
	Seller    string   `json:"seller"`
	Price     *big.Int `json:"price"`
	IsActive  bool     `json:"isActive"`
}
