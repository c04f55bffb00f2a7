package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatINR renders an amount with the rupee sign and Indian digit grouping
// (last three digits, then groups of two): 1234567 -> ₹12,34,567.
// Fractional amounts keep two decimal places; amounts round to the paisa.
func FormatINR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	paise := int64(math.Round(amount * 100))
	whole := paise / 100
	frac := paise % 100

	grouped := groupIndian(strconv.FormatInt(whole, 10))
	if frac == 0 {
		return fmt.Sprintf("%s₹%s", sign, grouped)
	}
	return fmt.Sprintf("%s₹%s.%02d", sign, grouped, frac)
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(groups, ",") + "," + tail
}
