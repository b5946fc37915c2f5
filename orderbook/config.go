package orderbook

// Config holds the constants a Book is sized with: the exclusive upper
// bound on representable prices and the trade buffer's fixed capacity.
type Config struct {
	MaxPrice  uint32 `long:"max-price" description:"exclusive upper bound on order price"`
	MaxTrades uint32 `long:"max-trades" description:"capacity of the per-call trade buffer"`

	// LargePriceDomain selects the btree-backed best-price tracker
	// instead of the default bitmap tracker, for callers whose
	// MaxPrice is too large for a dense bitmap to be the right
	// trade-off.
	LargePriceDomain bool `long:"large-price-domain" description:"use a balanced-tree best-price tracker instead of bitmaps"`
}

// NewDefaultConfig returns the package's default configuration.
func NewDefaultConfig() Config {
	return Config{
		MaxPrice:  100000,
		MaxTrades: 256,
	}
}
