package listing

import "errors"

// Rejection is an expected, user-facing refusal of an action. It is returned
// as a value and shown inline, it never signals a defect.
type Rejection string

func (r Rejection) Error() string { return string(r) }

const (
	// bid rejections
	AuctionEnded Rejection = "AuctionEnded"
	NotInAuction Rejection = "NotInAuction"
	BelowMinimum Rejection = "BelowMinimum"
	SelfOutbid   Rejection = "SelfOutbid"
	// BidInFlight refuses a second submission while the same bidder's previous
	// bid on the listing is still pending
	BidInFlight Rejection = "BidInFlight"

	// purchase and cancellation rejections
	NotPurchasable Rejection = "NotPurchasable"
	NotCancellable Rejection = "NotCancellable"
	HasBids        Rejection = "HasBids"
)

// AsRejection unwraps err into a Rejection
func AsRejection(err error) (Rejection, bool) {
	var r Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return "", false
}
