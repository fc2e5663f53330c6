package output

import (
	"fmt"
	"strconv"

	"github.com/rpgo/runway-calculator/internal/domain"
	"github.com/rpgo/runway-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals and thousands separators.
func FormatCurrency(amount decimal.Decimal) string { return money.New(amount).Format() }

// FormatWholeCurrency formats a decimal as USD rounded to whole dollars.
func FormatWholeCurrency(amount decimal.Decimal) string { return money.New(amount).FormatWhole() }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRunwayAge renders a runway age, marking ages that hit the simulation cap with "+".
func FormatRunwayAge(sc domain.ScenarioRunway) string {
	if sc.ReachedCap {
		return fmt.Sprintf("%d+", sc.RunwayAge)
	}
	return intToString(sc.RunwayAge)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
