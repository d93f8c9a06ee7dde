package invoice_pdf

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var (
	unitsMasculine = []string{"", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}
	unitsFeminine  = []string{"", "одна", "две", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}
	teens          = []string{
		"десять", "одиннадцать", "двенадцать", "тринадцать", "четырнадцать", "пятнадцать",
		"шестнадцать", "семнадцать", "восемнадцать", "девятнадцать",
	}
	tens     = []string{"", "", "двадцать", "тридцать", "сорок", "пятьдесят", "шестьдесят", "семьдесят", "восемьдесят", "девяносто"}
	hundreds = []string{"", "сто", "двести", "триста", "четыреста", "пятьсот", "шестьсот", "семьсот", "восемьсот", "девятьсот"}
)

type scale struct {
	forms    [3]string
	feminine bool
}

// от младшего разряда к старшему
var scales = []scale{
	{},
	{forms: [3]string{"тысяча", "тысячи", "тысяч"}, feminine: true},
	{forms: [3]string{"миллион", "миллиона", "миллионов"}},
	{forms: [3]string{"миллиард", "миллиарда", "миллиардов"}},
}

// AmountInWords сумма прописью в виде "Одна тысяча двести руб. 50 коп.".
func AmountInWords(amount decimal.Decimal) string {
	amount = amount.Abs().Round(2)
	rubles := amount.IntPart()
	kopecks := amount.Sub(decimal.NewFromInt(rubles)).Shift(2).IntPart()

	words := "ноль"
	if rubles > 0 {
		words = integerInWords(rubles)
	}

	return fmt.Sprintf("%s руб. %02d коп.", capitalize(words), kopecks)
}

func integerInWords(n int64) string {
	parts := make([]string, 0, 8)
	for i := len(scales) - 1; i >= 0; i-- {
		divisor := int64(1)
		for j := 0; j < i; j++ {
			divisor *= 1000
		}

		triad := int((n / divisor) % 1000)
		if i == len(scales)-1 {
			triad = int(n / divisor)
		}
		if triad == 0 {
			continue
		}

		parts = append(parts, triadInWords(triad, scales[i].feminine)...)
		if i > 0 {
			parts = append(parts, plural(triad, scales[i].forms))
		}
	}
	return strings.Join(parts, " ")
}

func triadInWords(n int, feminine bool) []string {
	units := unitsMasculine
	if feminine {
		units = unitsFeminine
	}

	words := make([]string, 0, 3)
	if h := n / 100 % 10; h > 0 {
		words = append(words, hundreds[h])
	}

	t, u := n/10%10, n%10
	switch {
	case t == 1:
		words = append(words, teens[u])
	default:
		if t > 1 {
			words = append(words, tens[t])
		}
		if u > 0 {
			words = append(words, units[u])
		}
	}
	return words
}

// plural выбирает форму для 1, 2-4 и остальных чисел.
func plural(n int, forms [3]string) string {
	n100 := n % 100
	n10 := n % 10
	switch {
	case n100 >= 11 && n100 <= 14:
		return forms[2]
	case n10 == 1:
		return forms[0]
	case n10 >= 2 && n10 <= 4:
		return forms[1]
	default:
		return forms[2]
	}
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
