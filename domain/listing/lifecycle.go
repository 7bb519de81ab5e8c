package listing

import (
	"math"

	"github.com/x-xyz/ipmarket/domain"
	"golang.org/x/xerrors"
)

// IsPurchasable reports whether a fixed-price listing can be bought at now (ns)
func IsPurchasable(l *Listing, now uint64) bool {
	if l.Status != StatusActive || l.Auction != nil {
		return false
	}
	if l.ExpiresAt != nil && now >= *l.ExpiresAt {
		return false
	}
	return true
}

// IsBiddable reports whether an auction accepts bids at now (ns)
func IsBiddable(l *Listing, now uint64) bool {
	return l.Status == StatusInAuction && l.Auction != nil && now < l.Auction.AuctionEnd
}

// IsExpired reports an Active listing whose expiry has passed
func IsExpired(l *Listing, now uint64) bool {
	return l.Status == StatusActive && l.ExpiresAt != nil && now > *l.ExpiresAt
}

// MinimumNextBid is the lowest amount the next bid must reach
func MinimumNextBid(l *Listing) (uint64, error) {
	a := l.Auction
	if a == nil {
		return 0, xerrors.Errorf("listing %s has no auction: %w", l.ID, domain.ErrInvalidState)
	}
	base := a.StartingPrice
	if a.HasBid() {
		base = a.CurrentBid
	}
	if base > math.MaxUint64-a.MinBidIncrement {
		return 0, xerrors.Errorf("listing %s next bid overflows: %w", l.ID, errBidOverflow)
	}
	return base + a.MinBidIncrement, nil
}

var errBidOverflow = xerrors.Errorf("bid overflow: %w", domain.ErrInvalidState)

// ValidateBid pre-checks a bid. The ledger still decides acceptance.
func ValidateBid(l *Listing, now uint64, bidder domain.Principal, amount uint64) error {
	if l.Auction == nil {
		return NotInAuction
	}
	if now >= l.Auction.AuctionEnd {
		return AuctionEnded
	}
	if l.Status != StatusInAuction {
		return NotInAuction
	}
	min, err := MinimumNextBid(l)
	if xerrors.Is(err, errBidOverflow) {
		// no representable amount clears the current bid
		return BelowMinimum
	} else if err != nil {
		return err
	}
	if amount < min {
		return BelowMinimum
	}
	// anonymous callers share one principal, so they cannot be told apart
	if l.Auction.HasBid() && !bidder.IsAnonymous() && bidder.Equals(*l.Auction.HighestBidder) {
		return SelfOutbid
	}
	return nil
}

// CanCancel checks whether actor may cancel the listing
func CanCancel(l *Listing, actor domain.Principal) error {
	if !actor.Equals(l.Seller) {
		return domain.ErrUnauthorized
	}
	if l.Status.IsTerminal() {
		return NotCancellable
	}
	if l.Auction != nil && l.Auction.HasBid() {
		return HasBids
	}
	return nil
}

// Actions is what a viewer may do with a listing right now
type Actions struct {
	CanBuy          bool `json:"canBuy"`
	CanBid          bool `json:"canBid"`
	CanCancel       bool `json:"canCancel"`
	IsSeller        bool `json:"isSeller"`
	IsHighestBidder bool `json:"isHighestBidder"`
}

func AvailableActions(l *Listing, now uint64, actor domain.Principal) Actions {
	known := actor != "" && !actor.IsAnonymous()
	a := Actions{
		IsSeller: known && actor.Equals(l.Seller),
	}
	if l.Auction != nil && l.Auction.HasBid() {
		a.IsHighestBidder = known && actor.Equals(*l.Auction.HighestBidder)
	}
	if l.Status.IsTerminal() {
		return a
	}
	a.CanBuy = known && !a.IsSeller && IsPurchasable(l, now)
	a.CanBid = known && !a.IsSeller && !a.IsHighestBidder && IsBiddable(l, now)
	a.CanCancel = known && CanCancel(l, actor) == nil
	return a
}
