package folio

// lot represents a single purchase of a security, used for realized gain
// calculations.
type lot struct {
	Date     Date
	Quantity Quantity
	Price    Money // cost of one share in the lot
}

type lots []lot

// sell consumes quantityToSell shares from the lots in first-in-first-out
// order and returns the gain realized at salePrice together with the
// remaining lots. A lot smaller than the quantity left to sell is consumed
// whole; a larger one is reduced in place. Selling more shares than the lots
// hold realizes no gain for the excess.
func (l lots) sell(quantityToSell Quantity, salePrice Money) (Money, lots) {
	gain := M(0, salePrice.Currency())
	remaining := append(lots(nil), l...)

	for quantityToSell.IsPositive() && len(remaining) > 0 {
		head := remaining[0]
		if !head.Quantity.GreaterThan(quantityToSell) {
			// Full sale of this lot
			gain = gain.Add(salePrice.Sub(head.Price).Mul(head.Quantity))
			quantityToSell = quantityToSell.Sub(head.Quantity)
			remaining = remaining[1:]
		} else {
			// Partial sale from this lot
			gain = gain.Add(salePrice.Sub(head.Price).Mul(quantityToSell))
			remaining[0].Quantity = head.Quantity.Sub(quantityToSell)
			quantityToSell = Q(0)
		}
	}
	return gain, remaining
}
