package utils

import (
	"fmt"
	"strings"
)

var currencySymbols = map[string]string{
	"INR": "Rs. ",
	"USD": "$",
	"EUR": "EUR ",
}

// FormatAmount renders a monetary amount with thousands grouping and the
// currency's symbol, e.g. FormatAmount(7999, "INR") -> "Rs. 7,999.00".
func FormatAmount(v float64, currency string) string {
	symbol, ok := currencySymbols[strings.ToUpper(strings.TrimSpace(currency))]
	if !ok {
		symbol = strings.ToUpper(strings.TrimSpace(currency)) + " "
	}

	neg := v < 0
	if neg {
		v = -v
	}

	whole := int64(v)
	cents := int64(v*100+0.5) - whole*100

	s := fmt.Sprintf("%d", whole)
	var grouped []byte
	n := len(s)
	for i := 0; i < n; i++ {
		grouped = append(grouped, s[i])
		pos := n - i - 1
		if pos > 0 && pos%3 == 0 {
			grouped = append(grouped, ',')
		}
	}

	out := fmt.Sprintf("%s%s.%02d", symbol, string(grouped), cents)
	if neg {
		out = "-" + out
	}
	return out
}
