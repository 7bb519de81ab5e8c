package domain

// Table is a mongo collection name
type Table string

const (
	TableBidReceipts Table = "bid_receipts"
)
