package purchase

import "puntoventa/pkg/numerator"

const (
	// FolioPrefix is the folio prefix for purchases (C-2026-00001).
	FolioPrefix = "C"

	// NumeratorStrategy is Strict to keep purchase folios gapless.
	NumeratorStrategy = numerator.StrategyStrict
)
