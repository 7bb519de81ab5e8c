package usecase

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/viney-shih/goroutines"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/base/log"
	"github.com/x-xyz/ipmarket/base/metrics"
	pricefomatter "github.com/x-xyz/ipmarket/base/price_fomatter"
	"github.com/x-xyz/ipmarket/domain"
	"github.com/x-xyz/ipmarket/domain/keys"
	"github.com/x-xyz/ipmarket/domain/listing"
	"github.com/x-xyz/ipmarket/domain/nft"
	"github.com/x-xyz/ipmarket/service/redis"
)

const (
	defaultBidGuardTTL  = 30 * time.Second
	defaultRecentBids   = 20
	decorateTaskTimeout = 3 * time.Second
)

var met = metrics.New("listing")

type ListingUseCaseCfg struct {
	Ledger         listing.Ledger
	NftUC          nft.Usecase
	BidReceiptRepo listing.BidReceiptRepo
	RedisCache     redis.Service
	PriceFormatter pricefomatter.PriceFormatter
	Validate       *validator.Validate
	// BidGuardTTL bounds how long a crashed submission can block its bidder
	BidGuardTTL time.Duration
	RecentBids  int64
}

type impl struct {
	ledger         listing.Ledger
	nftUC          nft.Usecase
	bidReceiptRepo listing.BidReceiptRepo
	redisCache     redis.Service
	priceFormatter pricefomatter.PriceFormatter
	validate       *validator.Validate
	bidGuardTTL    time.Duration
	recentBids     int64
	workerPool     *goroutines.Pool
}

func New(cfg *ListingUseCaseCfg) listing.Usecase {
	if cfg.BidGuardTTL <= 0 {
		cfg.BidGuardTTL = defaultBidGuardTTL
	}
	if cfg.RecentBids <= 0 {
		cfg.RecentBids = defaultRecentBids
	}
	if cfg.Validate == nil {
		cfg.Validate = validator.New()
	}
	return &impl{
		ledger:         cfg.Ledger,
		nftUC:          cfg.NftUC,
		bidReceiptRepo: cfg.BidReceiptRepo,
		redisCache:     cfg.RedisCache,
		priceFormatter: cfg.PriceFormatter,
		validate:       cfg.Validate,
		bidGuardTTL:    cfg.BidGuardTTL,
		recentBids:     cfg.RecentBids,
		workerPool:     goroutines.NewPool(32, goroutines.WithTaskQueueLength(1024), goroutines.WithPreAllocWorkers(8)),
	}
}

func (im *impl) price(amount uint64, currency string) listing.Price {
	return listing.Price{
		E8s:     amount,
		Display: im.priceFormatter.Format(amount, currency),
	}
}

func (im *impl) GetView(c ctx.Ctx, id string, viewer domain.Principal, now time.Time) (*listing.View, error) {
	var (
		l        *listing.Listing
		meta     *nft.Metadata
		bids     []listing.BidReceipt
		bidCount int
		myBids   []listing.BidReceipt
	)

	g, gctx := errgroup.WithContext(c)
	gc := ctx.WithContext(c, gctx)

	g.Go(func() error {
		res, err := im.ledger.GetListing(gc, id)
		if err != nil {
			gc.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("failed to ledger.GetListing")
			return err
		}
		l = res

		// metadata is decoration, the view renders without it
		if m, err := im.nftUC.Metadata(gc, res.NftID); err != nil {
			gc.WithFields(log.Fields{
				"err":   err,
				"nftId": res.NftID,
			}).Warn("failed to nftUC.Metadata")
		} else {
			meta = m
		}
		return nil
	})

	g.Go(func() error {
		res, err := im.bidReceiptRepo.FindAll(gc, id, listing.WithLimit(im.recentBids))
		if err != nil {
			gc.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Warn("failed to bidReceiptRepo.FindAll")
			return nil
		}
		bids = res
		return nil
	})

	g.Go(func() error {
		n, err := im.bidReceiptRepo.Count(gc, id)
		if err != nil {
			gc.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Warn("failed to bidReceiptRepo.Count")
			return nil
		}
		bidCount = n
		return nil
	})

	if !viewer.IsAnonymous() {
		g.Go(func() error {
			res, err := im.bidReceiptRepo.FindAll(gc, id, listing.WithBidder(viewer), listing.WithLimit(im.recentBids))
			if err != nil {
				gc.WithFields(log.Fields{
					"err":    err,
					"id":     id,
					"viewer": viewer,
				}).Warn("failed to bidReceiptRepo.FindAll")
				return nil
			}
			myBids = res
			return nil
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case <-c.Done():
		// late results land in variables nobody reads anymore
		return nil, c.Err()
	case err := <-done:
		if err != nil {
			return nil, err
		}
	}

	v := im.view(l, viewer, now)
	v.Nft = meta
	v.Bids = bids
	if v.Bids == nil {
		v.Bids = []listing.BidReceipt{}
	}
	v.BidCount = bidCount
	v.MyBids = myBids
	return v, nil
}

func (im *impl) view(l *listing.Listing, viewer domain.Principal, now time.Time) *listing.View {
	ns := listing.Nanos(now)
	v := &listing.View{
		Listing:     l,
		Price:       im.price(l.Price, l.Currency),
		Purchasable: listing.IsPurchasable(l, ns),
		Biddable:    listing.IsBiddable(l, ns),
		Actions:     listing.AvailableActions(l, ns, viewer),
		Seller:      l.Seller.Short(),
	}
	if l.Auction != nil {
		if l.Auction.HasBid() {
			p := im.price(l.Auction.CurrentBid, l.Currency)
			v.CurrentBid = &p
		}
		if next, err := listing.MinimumNextBid(l); err == nil {
			p := im.price(next, l.Currency)
			v.MinimumNextBid = &p
		}
	}
	v.TimeRemaining = remaining(l, ns)
	return v
}

func remaining(l *listing.Listing, now uint64) *listing.Remaining {
	switch {
	case l.Auction != nil:
		r := listing.TimeRemaining(l.Auction.AuctionEnd, now)
		return &r
	case l.ExpiresAt != nil:
		r := listing.TimeRemaining(*l.ExpiresAt, now)
		return &r
	}
	return nil
}

func (im *impl) card(l *listing.Listing, viewer domain.Principal, now uint64) listing.Card {
	return listing.Card{
		ID:            l.ID,
		NftID:         l.NftID,
		Seller:        l.Seller.Short(),
		Status:        l.Status,
		Price:         im.price(l.Price, l.Currency),
		IsAuction:     l.IsAuction(),
		TimeRemaining: remaining(l, now),
		Actions:       listing.AvailableActions(l, now, viewer),
	}
}

func (im *impl) ListActive(c ctx.Ctx, viewer domain.Principal, now time.Time) ([]listing.Card, error) {
	ls, err := im.ledger.GetListings(c)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to ledger.GetListings")
		return nil, err
	}

	ns := listing.Nanos(now)
	active := make([]listing.Listing, 0, len(ls))
	for _, l := range ls {
		if l.Status.IsTerminal() || listing.IsExpired(&l, ns) {
			continue
		}
		active = append(active, l)
	}
	return im.cards(c, active, viewer, now)
}

func (im *impl) ListBySeller(c ctx.Ctx, seller, viewer domain.Principal, now time.Time) ([]listing.Card, error) {
	ls, err := im.ledger.GetListingsBySeller(c, seller)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"seller": seller,
		}).Error("failed to ledger.GetListingsBySeller")
		return nil, err
	}
	return im.cards(c, ls, viewer, now)
}

func (im *impl) ListByNft(c ctx.Ctx, nftID string, viewer domain.Principal, now time.Time) ([]listing.Card, error) {
	ls, err := im.ledger.GetActiveListingsByNft(c, nftID)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"nftId": nftID,
		}).Error("failed to ledger.GetActiveListingsByNft")
		return nil, err
	}

	// the ledger filters on status only
	ns := listing.Nanos(now)
	live := ls[:0]
	for i := range ls {
		if !listing.IsExpired(&ls[i], ns) {
			live = append(live, ls[i])
		}
	}
	return im.cards(c, live, viewer, now)
}

// cards renders newest first and decorates each card with its nft metadata
func (im *impl) cards(c ctx.Ctx, ls []listing.Listing, viewer domain.Principal, now time.Time) ([]listing.Card, error) {
	sort.SliceStable(ls, func(i, j int) bool {
		return ls[i].ListedAt > ls[j].ListedAt
	})

	ns := listing.Nanos(now)
	res := make([]listing.Card, len(ls))
	nftIDs := []string{}
	seen := map[string]bool{}
	for i := range ls {
		res[i] = im.card(&ls[i], viewer, ns)
		if !seen[ls[i].NftID] {
			seen[ls[i].NftID] = true
			nftIDs = append(nftIDs, ls[i].NftID)
		}
	}

	metas, err := im.metadata(c, nftIDs)
	if err != nil {
		return nil, err
	}
	for i := range res {
		res[i].Nft = metas[res[i].NftID]
	}
	return res, nil
}

// metadata fetches metadata for ids on the worker pool. Missing entries are
// left out of the result.
func (im *impl) metadata(c ctx.Ctx, ids []string) (map[string]*nft.Metadata, error) {
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		res = make(map[string]*nft.Metadata, len(ids))
	)
	for _, id := range ids {
		id := id
		wg.Add(1)
		err := im.workerPool.ScheduleWithTimeout(decorateTaskTimeout, func() {
			defer wg.Done()
			m, err := im.nftUC.Metadata(c, id)
			if err != nil {
				c.WithFields(log.Fields{
					"err":   err,
					"nftId": id,
				}).Warn("failed to nftUC.Metadata")
				return
			}
			mu.Lock()
			res[id] = m
			mu.Unlock()
		})
		if err != nil {
			wg.Done()
			c.WithFields(log.Fields{
				"err":   err,
				"nftId": id,
			}).Warn("failed to ScheduleWithTimeout")
		}
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-c.Done():
		return nil, c.Err()
	case <-done:
		return res, nil
	}
}

func (im *impl) reject(c ctx.Ctx, op string, err error) error {
	if r, ok := listing.AsRejection(err); ok {
		met.BumpSum("rejection", 1, "op", op, "code", string(r))
		c.WithFields(log.Fields{
			"op":   op,
			"code": r,
		}).Info("action rejected")
	}
	return err
}

// bidAmount resolves req to e8s, display amounts use the listing's currency
func (im *impl) bidAmount(l *listing.Listing, req listing.BidRequest) (uint64, error) {
	var amount uint64
	switch {
	case req.AmountE8s != nil:
		amount = *req.AmountE8s
	case req.Amount != "":
		a, err := im.priceFormatter.FromDisplay(req.Amount, l.Currency)
		if err != nil {
			return 0, err
		}
		amount = a
	}
	if amount == 0 {
		return 0, domain.ErrInvalidAmount
	}
	return amount, nil
}

func (im *impl) PlaceBid(c ctx.Ctx, id string, bidder domain.Principal, req listing.BidRequest, now time.Time) (*listing.BidReceipt, error) {
	if bidder.IsAnonymous() {
		return nil, domain.ErrUnauthorized
	}

	l, err := im.ledger.GetListing(c, id)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to ledger.GetListing")
		return nil, err
	}

	amount, err := im.bidAmount(l, req)
	if err != nil {
		return nil, err
	}

	if err := listing.ValidateBid(l, listing.Nanos(now), bidder, amount); err != nil {
		return nil, im.reject(c, "bid", err)
	}

	guard := keys.RedisKey(keys.PfxBidGuard, id, bidder.String())
	if err := im.redisCache.SetNX(c, guard, []byte("1"), im.bidGuardTTL); err == redis.ErrKeyExists {
		return nil, im.reject(c, "bid", listing.BidInFlight)
	} else if err != nil {
		// the ledger stays authoritative, a missing guard only allows a duplicate submission
		c.WithFields(log.Fields{
			"err": err,
			"key": guard,
		}).Warn("failed to redisCache.SetNX")
	} else {
		defer func() {
			if _, err := im.redisCache.Del(c, guard); err != nil {
				c.WithFields(log.Fields{
					"err": err,
					"key": guard,
				}).Warn("failed to redisCache.Del")
			}
		}()
	}

	bidErr := im.ledger.PlaceBid(c, bidder, id, amount)

	receipt := &listing.BidReceipt{
		ListingID:   id,
		Bidder:      bidder,
		Amount:      amount,
		SubmittedAt: now.UTC(),
		Outcome:     outcome(bidErr),
	}
	if bidErr != nil {
		receipt.Reason = bidErr.Error()
	}
	if err := im.bidReceiptRepo.Insert(c, receipt); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"receipt": receipt,
		}).Error("failed to bidReceiptRepo.Insert")
	}

	if bidErr != nil {
		c.WithFields(log.Fields{
			"err":    bidErr,
			"id":     id,
			"amount": amount,
		}).Error("failed to ledger.PlaceBid")
		return receipt, im.reject(c, "bid", bidErr)
	}
	return receipt, nil
}

func outcome(err error) listing.BidOutcome {
	if err == nil {
		return listing.BidAccepted
	}
	if _, ok := listing.AsRejection(err); ok || errors.Is(err, domain.ErrLedgerRejected) {
		return listing.BidRejected
	}
	return listing.BidFailed
}

func (im *impl) Buy(c ctx.Ctx, id string, buyer domain.Principal, now time.Time) error {
	if buyer.IsAnonymous() {
		return domain.ErrUnauthorized
	}

	l, err := im.ledger.GetListing(c, id)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to ledger.GetListing")
		return err
	}

	if !listing.IsPurchasable(l, listing.Nanos(now)) || buyer.Equals(l.Seller) {
		return im.reject(c, "buy", listing.NotPurchasable)
	}

	if err := im.ledger.BuyNft(c, buyer, id); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to ledger.BuyNft")
		return im.reject(c, "buy", err)
	}
	return nil
}

func (im *impl) Cancel(c ctx.Ctx, id string, actor domain.Principal) error {
	l, err := im.ledger.GetListing(c, id)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to ledger.GetListing")
		return err
	}

	if err := listing.CanCancel(l, actor); err != nil {
		return im.reject(c, "cancel", err)
	}

	if err := im.ledger.CancelListing(c, actor, id); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to ledger.CancelListing")
		return im.reject(c, "cancel", err)
	}
	return nil
}

func (im *impl) Create(c ctx.Ctx, seller domain.Principal, req listing.ListRequest) (string, error) {
	if seller.IsAnonymous() {
		return "", domain.ErrUnauthorized
	}

	if err := im.validate.StructCtx(c, req); err != nil {
		return "", xerrors.Errorf("%v: %w", err, domain.ErrBadParamInput)
	}
	if !req.IsAuction && (req.AuctionDuration != nil || req.MinBidIncrement != nil) {
		return "", xerrors.Errorf("auction fields on a fixed price listing: %w", domain.ErrBadParamInput)
	}
	if _, err := im.priceFormatter.ToDisplay(req.Price, req.Currency); err != nil {
		return "", xerrors.Errorf("currency %q: %w", req.Currency, domain.ErrBadParamInput)
	}

	id, err := im.ledger.ListNft(c, seller, req)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"nftId": req.NftID,
		}).Error("failed to ledger.ListNft")
		return "", err
	}
	return id, nil
}

func (im *impl) Stats(c ctx.Ctx) (*listing.StatsView, error) {
	s, err := im.ledger.GetMarketplaceStats(c)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to ledger.GetMarketplaceStats")
		return nil, err
	}

	rate := listing.ComputeSuccessRate(s.TotalListings, s.ActiveListings)
	res := &listing.StatsView{
		Stats:            *s,
		SuccessRate:      rate,
		SuccessRateLabel: rate.String(),
		Volume:           im.price(s.TotalVolume, pricefomatter.CurrencyICP),
	}
	if s.AverageSalePrice != nil {
		p := im.price(*s.AverageSalePrice, pricefomatter.CurrencyICP)
		res.AverageSale = &p
	}
	return res, nil
}

func (im *impl) SweepExpired(c ctx.Ctx, now time.Time) (int, error) {
	ls, err := im.ledger.GetExpiredListings(c)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to ledger.GetExpiredListings")
		return 0, err
	}

	ns := listing.Nanos(now)
	pending := 0
	for i := range ls {
		if listing.IsExpired(&ls[i], ns) {
			pending++
		}
	}
	if pending == 0 {
		return 0, nil
	}

	n, err := im.ledger.CleanupExpiredListings(c)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"pending": pending,
		}).Error("failed to ledger.CleanupExpiredListings")
		return 0, err
	}
	c.WithFields(log.Fields{
		"pending": pending,
		"cleaned": n,
	}).Info("expired listings cleaned")
	return int(n), nil
}
