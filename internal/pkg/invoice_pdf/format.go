package invoice_pdf

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"crm/internal/entities"
)

var monthsGenitive = []string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// FormatDate дата как "02 ноября 2026 г.".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%02d %s %d г.", t.Day(), monthsGenitive[t.Month()-1], t.Year())
}

// FormatMoney сумма с неразрывным пробелом между тысячами и запятой: "12\u00a0345,50".
func FormatMoney(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteRune('\u00a0')
		}
		b.WriteRune(r)
	}

	return sign + b.String() + "," + fracPart
}

func FormatQuantity(quantity decimal.Decimal) string {
	return strings.Replace(quantity.String(), ".", ",", 1)
}

// PaymentPayload строка для платежного QR-кода, сумма в копейках.
func PaymentPayload(seller entities.Seller, total decimal.Decimal) string {
	kopecks := total.Round(2).Shift(2).IntPart()
	return strings.Join([]string{
		"ST00012",
		"Name=" + seller.Name,
		"PersonalAcc=" + seller.Account,
		"BankName=" + seller.Bank,
		"BIC=" + seller.BIK,
		"CorrespAcc=" + seller.CorrespondentAccount,
		"PayeeINN=" + seller.INN,
		fmt.Sprintf("Sum=%d", kopecks),
	}, "|")
}
