package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	cases := map[float64]string{
		12000000: "₹1.20 Cr",
		10000000: "₹1.00 Cr",
		150000:   "₹1.50 L",
		100000:   "₹1.00 L",
		99999:    "₹99,999",
		500:      "₹500",
		10450000: "₹1.04 Cr",
		104500:   "₹1.04 L",
		1004500:  "₹10.04 L",
		10050000: "₹1.00 Cr",
		112500:   "₹1.13 L",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatPrice(in), "FormatPrice(%v)", in)
	}
}

func TestFormatPriceCompact(t *testing.T) {
	cases := map[float64]string{
		12000000: "₹1.2Cr",
		150000:   "₹2L",
		250000:   "₹3L",
		140000:   "₹1L",
		45000:    "₹45,000",
		10450000: "₹1.0Cr",
		10500000: "₹1.1Cr",
		350000:   "₹4L",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatPriceCompact(in), "FormatPriceCompact(%v)", in)
	}
}

func TestFormatPriceRange(t *testing.T) {
	lo, hi, zero := 5000000.0, 25000000.0, 0.0
	assert.Equal(t, "₹50L - ₹2.5Cr", FormatPriceRange(&lo, &hi))
	assert.Equal(t, "From ₹50L", FormatPriceRange(&lo, nil))
	assert.Equal(t, "Up to ₹2.5Cr", FormatPriceRange(&zero, &hi))
	assert.Equal(t, "Contact for Price", FormatPriceRange(nil, nil))
}

func TestFormatRent(t *testing.T) {
	assert.Equal(t, "₹1.5L/mo", FormatRent(150000))
	assert.Equal(t, "₹25K/mo", FormatRent(25000))
	assert.Equal(t, "₹800/mo", FormatRent(800))
}

func TestGroupIndian(t *testing.T) {
	assert.Equal(t, "0", GroupIndian(0))
	assert.Equal(t, "999", GroupIndian(999))
	assert.Equal(t, "1,000", GroupIndian(1000))
	assert.Equal(t, "12,345", GroupIndian(12345))
	assert.Equal(t, "1,23,456", GroupIndian(123456))
	assert.Equal(t, "12,34,56,789", GroupIndian(123456789))
	assert.Equal(t, "1,234.5", GroupIndian(1234.5))
	assert.Equal(t, "-1,23,456", GroupIndian(-123456))
	assert.Equal(t, "1,00,000.125", GroupIndian(100000.125))
	assert.Equal(t, "2.5", GroupIndian(2.5))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Spacious...", Truncate("Spacious villa near lake", 11))
	assert.Equal(t, "", Truncate("anything", 0))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}
