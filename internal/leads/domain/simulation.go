package domain

import (
	"math"
	"math/bits"
	"time"
)

// ConsortiumType is the asset class a consortium group buys.
type ConsortiumType string

const (
	ConsortiumRealEstate ConsortiumType = "real_estate"
	ConsortiumVehicle    ConsortiumType = "vehicle"
	ConsortiumMotorcycle ConsortiumType = "motorcycle"
	ConsortiumServices   ConsortiumType = "services"
)

// ConsortiumTypes lists the accepted values in display order.
var ConsortiumTypes = []ConsortiumType{
	ConsortiumRealEstate,
	ConsortiumVehicle,
	ConsortiumMotorcycle,
	ConsortiumServices,
}

func (t ConsortiumType) Valid() bool {
	for _, c := range ConsortiumTypes {
		if t == c {
			return true
		}
	}
	return false
}

const (
	MinTermMonths = 1
	MaxTermMonths = 240

	// MaxCreditAmountCents caps the credit a simulation may ask for.
	MaxCreditAmountCents int64 = 1_000_000_000_000
)

// Simulation is a consortium quote requested through the public form.
type Simulation struct {
	ID                string
	Name              string
	Email             string
	Phone             string
	ConsortiumType    ConsortiumType
	CreditAmountCents int64
	TermMonths        int
	AdminFeeBps       int
	InstallmentCents  int64
	CreatedAt         time.Time
}

// InstallmentCents spreads the credit plus the admin fee evenly over the
// term, rounding up to the next cent. The product is computed in 128 bits;
// a result that does not fit an int64 saturates at math.MaxInt64.
func InstallmentCents(creditCents int64, feeBps, termMonths int) int64 {
	if creditCents <= 0 || feeBps < 0 || termMonths <= 0 {
		return 0
	}

	div := uint64(10000) * uint64(termMonths)
	hi, lo := bits.Mul64(uint64(creditCents), uint64(10000+feeBps))

	var carry uint64
	lo, carry = bits.Add64(lo, div-1, 0)
	hi += carry
	if hi >= div {
		return math.MaxInt64
	}

	q, _ := bits.Div64(hi, lo, div)
	if q > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(q)
}
