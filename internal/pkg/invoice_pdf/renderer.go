package invoice_pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/skip2/go-qrcode"

	"crm/internal/entities"
)

const (
	fontMain = "Main"
	fontBold = "MainBold"

	pageWidth = 595.28
	margin    = 36.0
	width     = pageWidth - margin*2
)

var ErrNoCounterparty = errors.New("invoice has no counterparty")

// Renderer собирает печатную форму счета на A4. Шрифт нужен TTF с кириллицей.
type Renderer struct {
	seller   entities.Seller
	font     []byte
	fontBold []byte
}

func New(seller entities.Seller, fontPath, fontBoldPath string) (*Renderer, error) {
	font, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("read invoice font: %w", err)
	}

	fontBold := font
	if fontBoldPath != "" {
		fontBold, err = os.ReadFile(fontBoldPath)
		if errors.Is(err, fs.ErrNotExist) {
			fontBold = font
		} else if err != nil {
			return nil, fmt.Errorf("read invoice bold font: %w", err)
		}
	}

	return &Renderer{
		seller:   seller,
		font:     font,
		fontBold: fontBold,
	}, nil
}

func (r *Renderer) Render(invoice entities.Invoice) ([]byte, error) {
	if invoice.Counterparty == nil {
		return nil, ErrNoCounterparty
	}

	qr, err := qrcode.Encode(PaymentPayload(r.seller, invoice.Total), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode payment qr: %w", err)
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AddUTF8FontFromBytes(fontMain, "", r.font)
	pdf.AddUTF8FontFromBytes(fontBold, "", r.fontBold)
	pdf.RegisterImageOptionsReader("qr", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qr))
	pdf.AddPage()

	y := r.drawBankBlock(pdf, margin)
	y = r.drawTitle(pdf, invoice, y)
	y = r.drawParties(pdf, *invoice.Counterparty, y)
	y = drawItems(pdf, invoice.Items, y)
	y = drawTotals(pdf, invoice, y)
	r.drawSignature(pdf, y)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawBankBlock(pdf *fpdf.Fpdf, y float64) float64 {
	const (
		blockHeight = 80.0
		qrWidth     = 110.0
		rowHeight   = 20.0
	)
	left := width - qrWidth

	pdf.SetLineWidth(1)
	pdf.Rect(margin, y, width, blockHeight, "D")
	pdf.SetLineWidth(0.5)
	pdf.Line(margin+left, y, margin+left, y+blockHeight)
	for i := 1; i < 4; i++ {
		pdf.Line(margin, y+rowHeight*float64(i), margin+left, y+rowHeight*float64(i))
	}

	pdf.SetFont(fontMain, "", 7)
	rows := [][2]string{
		{r.seller.Bank, ""},
		{"БИК", r.seller.BIK},
		{"Корр. счёт", r.seller.CorrespondentAccount},
		{"Р/счёт", r.seller.Account},
	}
	for i, row := range rows {
		rowY := y + rowHeight*float64(i) + 3
		pdf.SetXY(margin+3, rowY)
		pdf.CellFormat(77, 10, row[0], "", 0, "L", false, 0, "")
		if row[1] != "" {
			pdf.SetXY(margin+80, rowY)
			pdf.CellFormat(left-83, 10, row[1], "", 0, "L", false, 0, "")
		}
	}

	pdf.ImageOptions("qr", margin+left+17, y+2, 76, 76, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	y += blockHeight + 4

	const sellerHeight = 30.0
	pdf.Rect(margin, y, width, sellerHeight, "D")
	pdf.SetXY(margin+3, y+2)
	pdf.CellFormat(100, 9, "Получатель", "", 0, "L", false, 0, "")
	pdf.SetXY(margin+width-150, y+2)
	pdf.CellFormat(147, 9, "ИНН "+r.seller.INN, "", 0, "L", false, 0, "")
	pdf.SetFont(fontBold, "", 8)
	pdf.SetXY(margin+3, y+14)
	pdf.CellFormat(width-6, 10, r.seller.Name, "", 0, "L", false, 0, "")

	return y + sellerHeight + 10
}

func (r *Renderer) drawTitle(pdf *fpdf.Fpdf, invoice entities.Invoice, y float64) float64 {
	title := fmt.Sprintf("Счёт на оплату № %d от %s", invoice.Number, FormatDate(invoice.IssuedAt))

	pdf.SetFont(fontBold, "", 14)
	pdf.SetXY(margin, y)
	pdf.CellFormat(width, 16, title, "", 0, "C", false, 0, "")
	y += 22

	pdf.SetLineWidth(1.5)
	pdf.Line(margin, y, margin+width, y)
	pdf.SetLineWidth(0.5)

	return y + 8
}

func (r *Renderer) drawParties(pdf *fpdf.Fpdf, counterparty entities.Counterparty, y float64) float64 {
	customer := counterparty.Name
	for _, part := range []struct {
		prefix string
		value  *string
	}{
		{"ИНН ", counterparty.INN},
		{"КПП ", counterparty.KPP},
		{"", counterparty.Address},
	} {
		if part.value != nil && *part.value != "" {
			customer += ", " + part.prefix + *part.value
		}
	}

	lines := [][2]string{
		{"Исполнитель:", fmt.Sprintf("%s, ИНН %s, %s", r.seller.Name, r.seller.INN, r.seller.Address)},
		{"Заказчик:", customer},
	}
	if counterparty.Contract != nil && *counterparty.Contract != "" {
		lines = append(lines, [2]string{"Основание:", *counterparty.Contract})
	}

	for _, line := range lines {
		pdf.SetXY(margin, y)
		pdf.SetFont(fontBold, "", 9)
		labelWidth := pdf.GetStringWidth(line[0]) + 4
		pdf.CellFormat(labelWidth, 12, line[0], "", 0, "L", false, 0, "")
		pdf.SetFont(fontMain, "", 9)
		pdf.MultiCell(width-labelWidth, 12, line[1], "", "L", false)
		y = pdf.GetY() + 4
	}

	y += 6
	pdf.Line(margin, y, margin+width, y)
	return y + 8
}

func drawItems(pdf *fpdf.Fpdf, items []entities.InvoiceItem, y float64) float64 {
	colWidths := []float64{28, width - 28 - 50 - 60 - 70 - 70, 50, 60, 70, 70}
	colX := make([]float64, len(colWidths))
	colX[0] = margin
	for i := 1; i < len(colWidths); i++ {
		colX[i] = colX[i-1] + colWidths[i-1]
	}

	const headerHeight = 20.0
	pdf.SetFont(fontBold, "", 7)
	for i, header := range []string{"№", "Наименование", "Кол-во", "Ед.", "Цена", "Сумма"} {
		pdf.SetXY(colX[i], y)
		pdf.CellFormat(colWidths[i], headerHeight, header, "1", 0, "C", false, 0, "")
	}
	y += headerHeight

	pdf.SetFont(fontMain, "", 8)
	for i, item := range items {
		lines := pdf.SplitText(item.Description, colWidths[1]-6)
		rowHeight := max(16, float64(len(lines))*10+6)
		if y+rowHeight > 841.89-margin {
			pdf.AddPage()
			y = margin
		}

		cells := []struct {
			text  string
			align string
		}{
			{strconv.Itoa(i + 1), "C"},
			{"", "L"},
			{FormatQuantity(item.Quantity), "C"},
			{item.Unit, "C"},
			{FormatMoney(item.Price), "R"},
			{FormatMoney(item.Amount), "R"},
		}
		for c, cell := range cells {
			pdf.SetXY(colX[c], y)
			pdf.CellFormat(colWidths[c], rowHeight, cell.text, "1", 0, cell.align, false, 0, "")
		}

		for l, line := range lines {
			pdf.SetXY(colX[1]+3, y+3+float64(l)*10)
			pdf.CellFormat(colWidths[1]-6, 10, line, "", 0, "L", false, 0, "")
		}
		y += rowHeight
	}

	return y + 6
}

func drawTotals(pdf *fpdf.Fpdf, invoice entities.Invoice, y float64) float64 {
	total := FormatMoney(invoice.Total)

	rows := []struct {
		text  string
		size  float64
		font  string
		align string
		step  float64
	}{
		{"Итого: " + total + " руб.", 9, fontBold, "R", 14},
		{"Без налога (НДС)", 9, fontBold, "R", 14},
		{"Всего к оплате: " + total + " руб.", 10, fontBold, "R", 16},
		{fmt.Sprintf("Всего наименований %d, на сумму %s руб.", len(invoice.Items), total), 9, fontMain, "L", 14},
		{AmountInWords(invoice.Total), 9, fontBold, "L", 20},
	}
	for _, row := range rows {
		pdf.SetFont(row.font, "", row.size)
		pdf.SetXY(margin, y)
		pdf.CellFormat(width, 12, row.text, "", 0, row.align, false, 0, "")
		y += row.step
	}

	pdf.SetLineWidth(1)
	pdf.Line(margin, y, margin+width, y)
	pdf.SetLineWidth(0.5)

	return y + 12
}

func (r *Renderer) drawSignature(pdf *fpdf.Fpdf, y float64) {
	pdf.SetFont(fontBold, "", 9)
	pdf.SetXY(margin, y)
	pdf.CellFormat(width, 12, "Исполнитель", "", 0, "L", false, 0, "")
	y += 14

	pdf.Line(margin+80, y+2, margin+220, y+2)
	pdf.SetFont(fontMain, "", 8)
	pdf.SetXY(margin+225, y-6)
	pdf.CellFormat(width-225, 10, "/"+r.seller.Director+"/", "", 0, "L", false, 0, "")
}
