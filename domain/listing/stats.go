package listing

import (
	"encoding/json"
	"fmt"
)

type Stats struct {
	TotalNfts        uint64  `json:"totalNfts"`
	TotalUsers       uint64  `json:"totalUsers"`
	TotalListings    uint64  `json:"totalListings"`
	ActiveListings   uint64  `json:"activeListings"`
	ActiveAuctions   uint64  `json:"activeAuctions"`
	TotalVolume      uint64  `json:"totalVolume"`
	AverageSalePrice *uint64 `json:"averageSalePrice,omitempty"`
}

// SuccessRate is the share of listings no longer active, in percent
type SuccessRate struct {
	Applicable bool
	Percent    float64
}

var NotApplicable = SuccessRate{}

// ComputeSuccessRate never yields NaN: an empty marketplace is NotApplicable
func ComputeSuccessRate(total, active uint64) SuccessRate {
	if total == 0 {
		return NotApplicable
	}
	if active > total {
		active = total
	}
	return SuccessRate{
		Applicable: true,
		Percent:    float64(total-active) / float64(total) * 100,
	}
}

func (r SuccessRate) String() string {
	if !r.Applicable {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", r.Percent)
}

func (r SuccessRate) MarshalJSON() ([]byte, error) {
	if !r.Applicable {
		return []byte("null"), nil
	}
	return json.Marshal(r.Percent)
}
