package usecase

import (
	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/base/log"
	"github.com/x-xyz/ipmarket/domain/nft"
	"github.com/x-xyz/ipmarket/service/cache"
)

type impl struct {
	ledger        nft.Ledger
	metadataCache cache.Service
}

// New reads nft records from the ledger. Metadata never changes after mint,
// so it goes through metadataCache; ownership is always read fresh.
func New(ledger nft.Ledger, metadataCache cache.Service) nft.Usecase {
	return &impl{
		ledger:        ledger,
		metadataCache: metadataCache,
	}
}

func (im *impl) Get(ctx ctx.Ctx, id string) (*nft.NFT, error) {
	res, err := im.ledger.GetNft(ctx, id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to ledger.GetNft")
		return nil, err
	}
	return res, nil
}

func (im *impl) Metadata(ctx ctx.Ctx, id string) (*nft.Metadata, error) {
	res := &nft.Metadata{}
	err := im.metadataCache.GetByFunc(ctx, id, res, func() (interface{}, error) {
		return im.ledger.GetNftMetadata(ctx, id)
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to metadataCache.GetByFunc")
		return nil, err
	}
	return res, nil
}
