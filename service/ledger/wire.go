package ledger

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/x-xyz/ipmarket/domain"
	"github.com/x-xyz/ipmarket/domain/listing"
	"github.com/x-xyz/ipmarket/domain/nft"
	"golang.org/x/xerrors"
)

// nat64 accepts both JSON numbers and decimal strings
type nat64 uint64

func (n *nat64) UnmarshalJSON(b []byte) error {
	v, err := strconv.ParseUint(strings.Trim(string(b), `"`), 10, 64)
	if err != nil {
		return fmt.Errorf("nat64 %s: %w", b, err)
	}
	*n = nat64(v)
	return nil
}

func optU64(seq []nat64) *uint64 {
	p := domain.ExtractOptionalPtr(seq)
	if p == nil {
		return nil
	}
	v := uint64(*p)
	return &v
}

// decodeVariant splits a tagged variant such as {"Active":null} into its tag
// and payload
func decodeVariant(raw json.RawMessage) (string, json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return "", nil, err
	}
	if len(m) != 1 {
		return "", nil, fmt.Errorf("variant with %d tags", len(m))
	}
	for tag, payload := range m {
		return tag, payload, nil
	}
	return "", nil, nil
}

// decodeResult unwraps {"Ok":v} into out, or maps {"Err":{...}} to an error
func decodeResult(method string, raw json.RawMessage, out interface{}) error {
	tag, payload, err := decodeVariant(raw)
	if err != nil {
		return xerrors.Errorf("ledger %s: decode result: %v: %w", method, err, domain.ErrLedgerUnavailable)
	}
	switch tag {
	case "Ok":
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(payload, out); err != nil {
			return xerrors.Errorf("ledger %s: decode ok: %v: %w", method, err, domain.ErrLedgerUnavailable)
		}
		return nil
	case "Err":
		kind, _, err := decodeVariant(payload)
		if err != nil {
			return xerrors.Errorf("ledger %s: decode err: %v: %w", method, err, domain.ErrLedgerUnavailable)
		}
		return mapError(method, kind)
	}
	return xerrors.Errorf("ledger %s: unexpected result tag %q: %w", method, tag, domain.ErrLedgerUnavailable)
}

func mapError(method, kind string) error {
	switch kind {
	case "NotFound":
		return xerrors.Errorf("ledger %s: %w", method, domain.ErrNotFound)
	case "Unauthorized":
		return xerrors.Errorf("ledger %s: %w", method, domain.ErrUnauthorized)
	case "InvalidInput":
		return xerrors.Errorf("ledger %s: %w", method, domain.ErrBadParamInput)
	case "NotImplemented":
		return xerrors.Errorf("ledger %s: %w", method, domain.ErrNotImplemented)
	case "AuctionEnded":
		return xerrors.Errorf("ledger %s: %w", method, listing.AuctionEnded)
	case "BidTooLow":
		return xerrors.Errorf("ledger %s: %w", method, listing.BelowMinimum)
	}
	return &Error{Method: method, Kind: kind}
}

type status struct {
	listing.Status
}

func (s *status) UnmarshalJSON(b []byte) error {
	tag, _, err := decodeVariant(b)
	if err != nil {
		return err
	}
	s.Status, err = listing.ParseStatus(tag)
	return err
}

type auctionData struct {
	StartingPrice   nat64              `json:"starting_price"`
	CurrentBid      nat64              `json:"current_bid"`
	HighestBidder   []domain.Principal `json:"highest_bidder"`
	AuctionEnd      nat64              `json:"auction_end"`
	MinBidIncrement nat64              `json:"min_bid_increment"`
}

type licenseTerms struct {
	UsageRights         []string `json:"usage_rights"`
	Duration            []nat64  `json:"duration"`
	Territory           []string `json:"territory"`
	Exclusivity         bool     `json:"exclusivity"`
	CommercialUse       bool     `json:"commercial_use"`
	ModificationRights  bool     `json:"modification_rights"`
	AttributionRequired bool     `json:"attribution_required"`
}

type marketplaceListing struct {
	ID           string           `json:"id"`
	NftID        string           `json:"nft_id"`
	Seller       domain.Principal `json:"seller"`
	Price        nat64            `json:"price"`
	Currency     string           `json:"currency"`
	ListedAt     nat64            `json:"listed_at"`
	ExpiresAt    []nat64          `json:"expires_at"`
	Status       status           `json:"status"`
	LicenseTerms []licenseTerms   `json:"license_terms"`
	AuctionData  []auctionData    `json:"auction_data"`
}

func (m *marketplaceListing) toDomain() (*listing.Listing, error) {
	l := &listing.Listing{
		ID:        m.ID,
		NftID:     m.NftID,
		Seller:    m.Seller,
		Price:     uint64(m.Price),
		Currency:  m.Currency,
		ListedAt:  uint64(m.ListedAt),
		ExpiresAt: optU64(m.ExpiresAt),
		Status:    m.Status.Status,
	}
	if t := domain.ExtractOptionalPtr(m.LicenseTerms); t != nil {
		l.LicenseTerms = &listing.LicenseTerms{
			UsageRights:         t.UsageRights,
			Duration:            optU64(t.Duration),
			Territory:           domain.ExtractOptionalPtr(t.Territory),
			Exclusivity:         t.Exclusivity,
			CommercialUse:       t.CommercialUse,
			ModificationRights:  t.ModificationRights,
			AttributionRequired: t.AttributionRequired,
		}
	}
	if a := domain.ExtractOptionalPtr(m.AuctionData); a != nil {
		l.Auction = &listing.AuctionData{
			StartingPrice:   uint64(a.StartingPrice),
			CurrentBid:      uint64(a.CurrentBid),
			HighestBidder:   domain.ExtractOptionalPtr(a.HighestBidder),
			AuctionEnd:      uint64(a.AuctionEnd),
			MinBidIncrement: uint64(a.MinBidIncrement),
		}
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func toListings(ms []marketplaceListing) ([]listing.Listing, error) {
	res := make([]listing.Listing, 0, len(ms))
	for i := range ms {
		l, err := ms[i].toDomain()
		if err != nil {
			return nil, err
		}
		res = append(res, *l)
	}
	return res, nil
}

type listNftRequest struct {
	NftID           string         `json:"nft_id"`
	Price           uint64         `json:"price"`
	Currency        string         `json:"currency"`
	ExpiresAt       []uint64       `json:"expires_at"`
	LicenseTerms    []licenseTerms `json:"license_terms"`
	IsAuction       bool           `json:"is_auction"`
	AuctionDuration []uint64       `json:"auction_duration"`
	MinBidIncrement []uint64       `json:"min_bid_increment"`
}

func fromListRequest(req listing.ListRequest) listNftRequest {
	w := listNftRequest{
		NftID:           req.NftID,
		Price:           req.Price,
		Currency:        req.Currency,
		ExpiresAt:       domain.ToOptional(req.ExpiresAt),
		LicenseTerms:    []licenseTerms{},
		IsAuction:       req.IsAuction,
		AuctionDuration: domain.ToOptional(req.AuctionDuration),
		MinBidIncrement: domain.ToOptional(req.MinBidIncrement),
	}
	if t := req.LicenseTerms; t != nil {
		w.LicenseTerms = append(w.LicenseTerms, licenseTerms{
			UsageRights:         t.UsageRights,
			Duration:            toNatOptional(t.Duration),
			Territory:           domain.ToOptional(t.Territory),
			Exclusivity:         t.Exclusivity,
			CommercialUse:       t.CommercialUse,
			ModificationRights:  t.ModificationRights,
			AttributionRequired: t.AttributionRequired,
		})
	}
	return w
}

func toNatOptional(p *uint64) []nat64 {
	if p == nil {
		return []nat64{}
	}
	return []nat64{nat64(*p)}
}

type marketplaceStats struct {
	TotalNfts        nat64   `json:"total_nfts"`
	TotalUsers       nat64   `json:"total_users"`
	TotalListings    nat64   `json:"total_listings"`
	ActiveListings   nat64   `json:"active_listings"`
	ActiveAuctions   nat64   `json:"active_auctions"`
	TotalVolume      nat64   `json:"total_volume"`
	AverageSalePrice []nat64 `json:"average_sale_price"`
}

func (s *marketplaceStats) toDomain() *listing.Stats {
	return &listing.Stats{
		TotalNfts:        uint64(s.TotalNfts),
		TotalUsers:       uint64(s.TotalUsers),
		TotalListings:    uint64(s.TotalListings),
		ActiveListings:   uint64(s.ActiveListings),
		ActiveAuctions:   uint64(s.ActiveAuctions),
		TotalVolume:      uint64(s.TotalVolume),
		AverageSalePrice: optU64(s.AverageSalePrice),
	}
}

type ipNft struct {
	ID                string           `json:"id"`
	IpID              string           `json:"ip_id"`
	TokenID           nat64            `json:"token_id"`
	Owner             domain.Principal `json:"owner"`
	Creator           domain.Principal `json:"creator"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	Image             string           `json:"image"`
	RoyaltyPercentage uint8            `json:"royalty_percentage"`
	IsTransferable    bool             `json:"is_transferable"`
	MintedAt          nat64            `json:"minted_at"`
	CollectionName    []string         `json:"collection_name"`
}

func (n *ipNft) toDomain() *nft.NFT {
	return &nft.NFT{
		ID:                n.ID,
		IpID:              n.IpID,
		TokenID:           uint64(n.TokenID),
		Owner:             n.Owner,
		Creator:           n.Creator,
		Name:              n.Name,
		Description:       n.Description,
		Image:             n.Image,
		RoyaltyPercentage: n.RoyaltyPercentage,
		IsTransferable:    n.IsTransferable,
		MintedAt:          uint64(n.MintedAt),
		CollectionName:    domain.ExtractOptionalPtr(n.CollectionName),
	}
}

type nftMetadata struct {
	TokenID     string   `json:"token_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	ExternalURL []string `json:"external_url"`
	IpCategory  string   `json:"ip_category"`
	IpType      string   `json:"ip_type"`
	Creator     string   `json:"creator"`
	LicenseType []string `json:"license_type"`
	MintedDate  string   `json:"minted_date"`
}

func (m *nftMetadata) toDomain() *nft.Metadata {
	return &nft.Metadata{
		TokenID:     m.TokenID,
		Name:        m.Name,
		Description: m.Description,
		Image:       m.Image,
		ExternalURL: domain.ExtractOptionalPtr(m.ExternalURL),
		IpCategory:  m.IpCategory,
		IpType:      m.IpType,
		Creator:     m.Creator,
		LicenseType: domain.ExtractOptionalPtr(m.LicenseType),
		MintedDate:  m.MintedDate,
	}
}
