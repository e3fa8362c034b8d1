package entity

import "github.com/shopspring/decimal"

const (
	// PhenylalanineScale is the number of fractional digits kept for contributions and totals.
	PhenylalanineScale int32 = 4

	// unitBasisExponent expresses that food phenylalanine is stated per 10^3 units of the
	// food's native measure (mg per kg, mg per litre) while amounts are logged in g or ml.
	unitBasisExponent int32 = 3
	// proteinBasisExponent expresses that protein is stated per 10^2 units, as on nutrition labels.
	proteinBasisExponent int32 = 2
)

// CalculatePhenylalanine returns the milligrams of phenylalanine contained in amount units
// of a food holding perBasis mg per 1000 units, rounded half-up to PhenylalanineScale digits.
func CalculatePhenylalanine(perBasis, amount decimal.Decimal) decimal.Decimal {
	return perBasis.Mul(amount).Shift(-unitBasisExponent).Round(PhenylalanineScale)
}

// DerivePhenylalanine converts a food's protein content (g per 100 units) into its
// phenylalanine content (mg per 1000 units) using the food type's multiplier
// (mg phenylalanine per g protein).
func DerivePhenylalanine(protein decimal.Decimal, multiplier int) decimal.Decimal {
	return protein.Mul(decimal.NewFromInt(int64(multiplier))).Shift(unitBasisExponent - proteinBasisExponent)
}
