package sale

import "puntoventa/pkg/numerator"

const (
	// FolioPrefix is the folio prefix for sales (V-2026-00001).
	FolioPrefix = "V"

	// NumeratorStrategy is Strict: sales are fiscal documents, folios
	// must be sequential without gaps.
	NumeratorStrategy = numerator.StrategyStrict
)
