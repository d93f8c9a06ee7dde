package request_export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"crm/internal/entities"
)

const (
	SheetName   = "Заявки"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var Header = []string{
	"ID",
	"Создана",
	"Клиент",
	"Город",
	"Дата доставки",
	"Упаковка",
	"Кол-во мест",
	"Объём, м³",
	"Вес, кг",
	"Статус",
	"Комментарий",
}

var columnWidths = []float64{8, 18, 24, 20, 14, 12, 12, 12, 12, 16, 40}

// XLSX выгружает заявки одной таблицей в порядке переданного списка.
func XLSX(requests []entities.ShipmentRequest) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	header := make([]any, len(Header))
	for i, title := range Header {
		header[i] = title
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	lastColumn, err := excelize.ColumnNumberToName(len(Header))
	if err != nil {
		return nil, fmt.Errorf("header range: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", lastColumn+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("set header style: %w", err)
	}

	for i, width := range columnWidths {
		column, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("column width: %w", err)
		}
		if err := f.SetColWidth(SheetName, column, column, width); err != nil {
			return nil, fmt.Errorf("column width: %w", err)
		}
	}

	for i, request := range requests {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		row := toRow(request)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write request %d: %w", request.ID, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func toRow(request entities.ShipmentRequest) []any {
	city := request.City
	if request.CityFullName != nil {
		city = *request.CityFullName
	}

	return []any{
		request.ID,
		request.CreatedAt.Format("02.01.2006 15:04"),
		clientName(request.Client),
		city,
		request.DeliveryDate.Format("02.01.2006"),
		request.PackagingType.Label(),
		request.BoxCount,
		optional(request.Volume),
		optional(request.Weight),
		request.Status.Label(),
		optionalString(request.Comment),
	}
}

// clientName "Имя Фамилия (@username)", без профиля telegram id.
func clientName(client *entities.Client) string {
	if client == nil {
		return ""
	}

	parts := make([]string, 0, 3)
	if client.FirstName != nil {
		parts = append(parts, *client.FirstName)
	}
	if client.LastName != nil {
		parts = append(parts, *client.LastName)
	}
	if client.Username != nil {
		parts = append(parts, "(@"+*client.Username+")")
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%d", client.TelegramID)
	}
	return strings.Join(parts, " ")
}

func optional(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func optionalString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
