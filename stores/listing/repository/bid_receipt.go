package repository

import (
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/base/log"
	"github.com/x-xyz/ipmarket/domain"
	"github.com/x-xyz/ipmarket/domain/listing"
	"github.com/x-xyz/ipmarket/service/query"
)

const defaultReceiptLimit = 50

var bidReceiptIndexes = []query.Index{
	{Keys: []string{"id"}, Unique: true},
	{Keys: []string{"listingId", "-submittedAt"}},
	{Keys: []string{"listingId", "bidder", "-submittedAt"}},
}

type bidReceiptRepo struct {
	query query.Mongo
}

func NewBidReceiptRepo(query query.Mongo) listing.BidReceiptRepo {
	return &bidReceiptRepo{query}
}

// EnsureIndexes prepares the receipts table, run once at startup
func EnsureIndexes(ctx ctx.Ctx, q query.Mongo) error {
	if err := q.EnsureIndexes(ctx, domain.TableBidReceipts, bidReceiptIndexes...); err != nil {
		ctx.WithField("err", err).Error("failed to query.EnsureIndexes")
		return err
	}
	return nil
}

func (im *bidReceiptRepo) Insert(ctx ctx.Ctx, r *listing.BidReceipt) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	err := im.query.Insert(ctx, domain.TableBidReceipts, r)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"receipt": r,
		}).Error("failed to query.Insert")
		return err
	}
	return nil
}

func (im *bidReceiptRepo) FindAll(ctx ctx.Ctx, listingID string, options ...listing.BidReceiptFindAllOptionsFunc) ([]listing.BidReceipt, error) {
	opts, err := listing.GetBidReceiptFindAllOptions(options...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to listing.GetBidReceiptFindAllOptions")
		return nil, err
	}

	query := bson.M{"listingId": listingID}
	if opts.Bidder != nil {
		query["bidder"] = *opts.Bidder
	}

	limit := defaultReceiptLimit
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}

	res := []listing.BidReceipt{}
	if err := im.query.Search(ctx, domain.TableBidReceipts, 0, limit, "-submittedAt", query, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to query.Search")
		return nil, err
	}
	return res, nil
}

func (im *bidReceiptRepo) Count(ctx ctx.Ctx, listingID string) (int, error) {
	query := bson.M{"listingId": listingID}
	n, err := im.query.Count(ctx, domain.TableBidReceipts, query)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to query.Count")
		return 0, err
	}
	return n, nil
}
