package templates

// factoryAlphabet supplies positional parameter names for directive factories
const factoryAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// FactoryParams returns one single-letter parameter name per dependency, capped at 52
func FactoryParams(n int) []string {
	if n > len(factoryAlphabet) {
		n = len(factoryAlphabet)
	}
	params := make([]string, n)
	for i := range params {
		params[i] = factoryAlphabet[i : i+1]
	}
	return params
}

// quote wraps s in double quotes. Registered names are identifiers, so nothing is escaped.
func quote(s string) string {
	return `"` + s + `"`
}
