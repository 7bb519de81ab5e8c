package listing

import (
	"time"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/domain"
)

type BidOutcome string

const (
	BidAccepted BidOutcome = "accepted"
	BidRejected BidOutcome = "rejected"
	BidFailed   BidOutcome = "failed"
)

// BidReceipt records a bid forwarded to the ledger. Receipts are history only,
// listing state always comes from the ledger.
type BidReceipt struct {
	ID          string           `json:"id" bson:"id"`
	ListingID   string           `json:"listingId" bson:"listingId"`
	Bidder      domain.Principal `json:"bidder" bson:"bidder"`
	Amount      uint64           `json:"amount" bson:"amount"`
	SubmittedAt time.Time        `json:"submittedAt" bson:"submittedAt"`
	Outcome     BidOutcome       `json:"outcome" bson:"outcome"`
	Reason      string           `json:"reason,omitempty" bson:"reason,omitempty"`
}

type BidReceiptFindAllOptions struct {
	Bidder *domain.Principal
	Limit  *int64
}

type BidReceiptFindAllOptionsFunc func(*BidReceiptFindAllOptions) error

func GetBidReceiptFindAllOptions(opts ...BidReceiptFindAllOptionsFunc) (BidReceiptFindAllOptions, error) {
	res := BidReceiptFindAllOptions{}
	for _, o := range opts {
		if err := o(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithBidder(p domain.Principal) BidReceiptFindAllOptionsFunc {
	return func(o *BidReceiptFindAllOptions) error {
		o.Bidder = &p
		return nil
	}
}

func WithLimit(limit int64) BidReceiptFindAllOptionsFunc {
	return func(o *BidReceiptFindAllOptions) error {
		if limit <= 0 {
			return domain.ErrBadParamInput
		}
		o.Limit = &limit
		return nil
	}
}

// BidReceiptRepo stores bid receipts, newest first on read
type BidReceiptRepo interface {
	Insert(ctx ctx.Ctx, r *BidReceipt) error
	FindAll(ctx ctx.Ctx, listingID string, opts ...BidReceiptFindAllOptionsFunc) ([]BidReceipt, error)
	Count(ctx ctx.Ctx, listingID string) (int, error)
}
