package utils

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	Lakh  = 100_000
	Crore = 10_000_000
)

// FormatPrice is the dashboard formatter: two decimals for crore and lakh.
//
//	12000000 -> ₹1.20 Cr
//	150000   -> ₹1.50 L
func FormatPrice(price float64) string {
	switch {
	case price >= Crore:
		return "₹" + fixed(price/Crore, 2) + " Cr"
	case price >= Lakh:
		return "₹" + fixed(price/Lakh, 2) + " L"
	}
	return "₹" + GroupIndian(price)
}

// FormatPriceCompact is the listing/project formatter: one decimal for crore,
// whole lakhs, no separating space.
//
//	12000000 -> ₹1.2Cr
//	150000   -> ₹2L
func FormatPriceCompact(price float64) string {
	switch {
	case price >= Crore:
		return "₹" + fixed(price/Crore, 1) + "Cr"
	case price >= Lakh:
		return "₹" + fixed(price/Lakh, 0) + "L"
	}
	return "₹" + GroupIndian(price)
}

func FormatPriceRange(min, max *float64) string {
	hasMin := min != nil && *min != 0
	hasMax := max != nil && *max != 0
	switch {
	case hasMin && hasMax:
		return FormatPriceCompact(*min) + " - " + FormatPriceCompact(*max)
	case hasMin:
		return "From " + FormatPriceCompact(*min)
	case hasMax:
		return "Up to " + FormatPriceCompact(*max)
	}
	return "Contact for Price"
}

func FormatRent(rent float64) string {
	switch {
	case rent >= Lakh:
		return "₹" + fixed(rent/Lakh, 1) + "L/mo"
	case rent >= 1000:
		return "₹" + fixed(rent/1000, 0) + "K/mo"
	}
	return "₹" + strconv.FormatFloat(rent, 'f', -1, 64) + "/mo"
}

// GroupIndian renders v with lakh/crore digit grouping (1,23,45,678) and at
// most three fraction digits.
func GroupIndian(v float64) string {
	neg := v < 0
	v = math.Abs(v)
	intPart, frac, _ := strings.Cut(fixed(v, 3), ".")
	frac = strings.TrimRight(frac, "0")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	if len(intPart) <= 3 {
		b.WriteString(intPart)
	} else {
		head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
		lead := len(head) % 2
		if lead > 0 {
			b.WriteString(head[:lead])
		}
		for i := lead; i < len(head); i += 2 {
			if b.Len() > 0 && !(neg && b.Len() == 1) {
				b.WriteByte(',')
			}
			b.WriteString(head[i : i+2])
		}
		b.WriteByte(',')
		b.WriteString(tail)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// Truncate shortens s to at most n runes, ending in "..." when cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return strings.TrimRight(string(r[:n-3]), " ") + "..."
}

// fixed rounds the exact binary value of v, halves away from zero, like the
// browser's toFixed. 1.045 is stored below the half and gives "1.04".
func fixed(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', decimals, 64)
	}
	return new(big.Rat).SetFloat64(v).FloatString(decimals)
}
