package pricefomatter

import (
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/ipmarket/domain"
	"golang.org/x/xerrors"
)

type PriceFormatterCfg struct {
	// Decimals per currency symbol, ICP is always 8
	Decimals map[string]int32
}

type impl struct {
	decimals map[string]int32
}

var maxAmount = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), 0)

func NewPriceFormatter(cfg *PriceFormatterCfg) PriceFormatter {
	decimals := map[string]int32{CurrencyICP: e8sDecimals}
	if cfg != nil {
		for k, v := range cfg.Decimals {
			decimals[strings.ToUpper(k)] = v
		}
	}
	return &impl{decimals: decimals}
}

func (f *impl) tokenDecimals(currency string) (int32, error) {
	d, ok := f.decimals[strings.ToUpper(currency)]
	if !ok {
		return 0, xerrors.Errorf("unknown currency %q: %w", currency, domain.ErrBadParamInput)
	}
	return d, nil
}

func (f *impl) ToDisplay(amount uint64, currency string) (decimal.Decimal, error) {
	d, err := f.tokenDecimals(currency)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -d), nil
}

func (f *impl) Format(amount uint64, currency string) string {
	v, err := f.ToDisplay(amount, currency)
	if err != nil {
		// unknown currencies show the raw amount
		return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), 0).String() + " " + currency
	}
	return v.String() + " " + strings.ToUpper(currency)
}

func (f *impl) FromDisplay(display string, currency string) (uint64, error) {
	d, err := f.tokenDecimals(currency)
	if err != nil {
		return 0, err
	}
	v, err := decimal.NewFromString(strings.TrimSpace(display))
	if err != nil {
		return 0, xerrors.Errorf("parse %q: %w", display, domain.ErrInvalidAmount)
	}
	if v.Sign() < 0 {
		return 0, xerrors.Errorf("negative amount %q: %w", display, domain.ErrInvalidAmount)
	}
	scaled := v.Shift(d)
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, xerrors.Errorf("%q is finer than %d decimals: %w", display, d, domain.ErrInvalidAmount)
	}
	if scaled.GreaterThan(maxAmount) {
		return 0, xerrors.Errorf("%q overflows: %w", display, domain.ErrInvalidAmount)
	}
	return scaled.BigInt().Uint64(), nil
}
