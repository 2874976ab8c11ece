package folio

// AUD is a helper for test to create australian dollar money from const
func AUD(v float64) Money { return M(v, "AUD") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for test to create money from const wit no currency set
func NO(v float64) Money { return M(v, "") }
