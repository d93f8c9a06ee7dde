package converters

import (
	"time"

	"github.com/shopspring/decimal"

	"crm/internal/entities"
	"crm/internal/generated/dto"
	"crm/internal/pkg/mutation"
	"crm/internal/pkg/pricing"
)

func City(c entities.City) dto.City {
	return dto.City{
		Id:        c.ID,
		ShortName: c.ShortName,
		FullName:  c.FullName,
	}
}

func Cities(cities []entities.City) []dto.City {
	res := make([]dto.City, 0, len(cities))
	for _, c := range cities {
		res = append(res, City(c))
	}
	return res
}

func PriceRate(r entities.PriceRate) dto.PriceRate {
	return dto.PriceRate{
		Id:          r.ID,
		CityId:      r.CityID,
		Unit:        r.Unit.String(),
		UnitLabel:   r.Unit.Label(),
		MinWeightKg: r.MinWeightKg,
		MaxWeightKg: r.MaxWeightKg,
		MinVolumeM3: r.MinVolumeM3,
		MaxVolumeM3: r.MaxVolumeM3,
		Price:       r.Price.InexactFloat64(),
		Comment:     r.Comment,
		RangeLabel:  pricing.RangeLabel(r),
	}
}

func PriceRates(rates []entities.PriceRate) []dto.PriceRate {
	res := make([]dto.PriceRate, 0, len(rates))
	for _, r := range rates {
		res = append(res, PriceRate(r))
	}
	return res
}

// PriceRateModify цену из JSON переводим в decimal сразу на входе.
func PriceRateModify(d dto.PriceRateModify) entities.PriceRateModify {
	modify := entities.PriceRateModify{
		CityID:      d.CityId,
		MinWeightKg: d.MinWeightKg,
		MaxWeightKg: d.MaxWeightKg,
		MinVolumeM3: d.MinVolumeM3,
		MaxVolumeM3: d.MaxVolumeM3,
		Comment:     d.Comment,
	}
	if d.Unit != nil {
		unit := entities.RateUnit(*d.Unit)
		modify.Unit = &unit
	}
	if d.Price != nil {
		price := decimal.NewFromFloat(*d.Price)
		modify.Price = &price
	}
	return modify
}

func Client(c entities.Client) dto.Client {
	return dto.Client{
		Id:            c.ID,
		TelegramId:    c.TelegramID,
		Username:      c.Username,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		ConsentAt:     formatOptionalTime(c.ConsentAt),
		RequestsCount: c.RequestsCount,
		CreatedAt:     formatTime(c.CreatedAt),
	}
}

func Clients(clients []entities.Client) []dto.Client {
	res := make([]dto.Client, 0, len(clients))
	for _, c := range clients {
		res = append(res, Client(c))
	}
	return res
}

func ClientProfile(d dto.ClientProfile) entities.ClientProfile {
	return entities.ClientProfile{
		TelegramID: d.TelegramId,
		Username:   d.Username,
		FirstName:  d.FirstName,
		LastName:   d.LastName,
	}
}

func ShipmentRequest(r entities.ShipmentRequest) dto.ShipmentRequest {
	res := dto.ShipmentRequest{
		Id:            r.ID,
		ClientId:      r.ClientID,
		CityId:        r.CityID,
		City:          r.City,
		CityFullName:  r.CityFullName,
		DeliveryDate:  mutation.FormatDate(r.DeliveryDate),
		PackagingType: r.PackagingType.String(),
		BoxCount:      r.BoxCount,
		Volume:        r.Volume,
		Weight:        r.Weight,
		Comment:       r.Comment,
		Status:        r.Status.String(),
		StatusLabel:   r.Status.Label(),
		CreatedAt:     formatTime(r.CreatedAt),
		UpdatedAt:     formatTime(r.UpdatedAt),
	}
	if r.Client != nil {
		c := Client(*r.Client)
		res.Client = &c
	}
	return res
}

func ShipmentRequests(requests []entities.ShipmentRequest) []dto.ShipmentRequest {
	res := make([]dto.ShipmentRequest, 0, len(requests))
	for _, r := range requests {
		res = append(res, ShipmentRequest(r))
	}
	return res
}

func ShipmentRequestDetail(d entities.ShipmentRequestDetail) dto.ShipmentRequest {
	res := ShipmentRequest(d.ShipmentRequest)
	items := Timeline(d.Timeline)
	res.Timeline = &items
	return res
}

func RequestCreate(d dto.RequestCreate) entities.RequestCreate {
	return entities.RequestCreate{
		Client:        ClientProfile(d.Client),
		City:          d.City,
		DeliveryDate:  d.DeliveryDate,
		PackagingType: d.PackagingType,
		BoxCount:      d.BoxCount,
		Volume:        d.Volume,
		Weight:        d.Weight,
		Comment:       d.Comment,
	}
}

func RequestPatch(d dto.RequestPatch) entities.RequestPatch {
	return entities.RequestPatch{
		City:          d.City,
		DeliveryDate:  d.DeliveryDate,
		PackagingType: d.PackagingType,
		BoxCount:      d.BoxCount,
		Volume:        d.Volume,
		Weight:        d.Weight,
		Comment:       d.Comment,
	}
}

func Timeline(items []entities.TimelineItem) []dto.TimelineItem {
	res := make([]dto.TimelineItem, 0, len(items))
	for _, item := range items {
		res = append(res, TimelineItem(item))
	}
	return res
}

func TimelineItem(item entities.TimelineItem) dto.TimelineItem {
	res := dto.TimelineItem{
		Kind: item.Kind.String(),
		At:   formatTime(item.At),
	}

	switch {
	case item.Status != nil:
		oldStatus := item.Status.OldStatus.String()
		newStatus := item.Status.NewStatus.String()
		res.OldStatus = &oldStatus
		res.NewStatus = &newStatus
		res.ChangedById = item.Status.ChangedBy.ManagerID
		res.ChangedByName = item.Status.ChangedBy.Name
	case item.Field != nil:
		field := item.Field.Field.String()
		label := item.Field.Field.Label()
		res.Field = &field
		res.FieldLabel = &label
		res.OldValue = item.Field.OldValue
		res.NewValue = item.Field.NewValue
		res.ChangedById = item.Field.ChangedBy.ManagerID
		res.ChangedByName = item.Field.ChangedBy.Name
	}
	return res
}

func RequestService(s entities.RequestService) dto.RequestService {
	return dto.RequestService{
		Id:          s.ID,
		RequestId:   s.RequestID,
		Description: s.Description,
		Unit:        s.Unit,
		Quantity:    s.Quantity.InexactFloat64(),
		Price:       s.Price.InexactFloat64(),
		Amount:      s.Amount.InexactFloat64(),
	}
}

func RequestServices(services []entities.RequestService) []dto.RequestService {
	res := make([]dto.RequestService, 0, len(services))
	for _, s := range services {
		res = append(res, RequestService(s))
	}
	return res
}

func RequestServiceModify(d dto.RequestServiceModify) entities.RequestServiceModify {
	return entities.RequestServiceModify{
		Description: d.Description,
		Unit:        d.Unit,
		Quantity:    optionalDecimal(d.Quantity),
		Price:       optionalDecimal(d.Price),
	}
}

// Suggestion при Found == false наружу уходит только сообщение.
func Suggestion(s entities.Suggestion) dto.Suggestion {
	if !s.Found {
		message := s.Message
		return dto.Suggestion{Found: false, Message: &message}
	}

	description := s.Description
	unit := s.Unit
	quantity := s.Quantity.InexactFloat64()
	price := s.Price.InexactFloat64()
	amount := s.Amount.InexactFloat64()

	res := dto.Suggestion{
		Found:       true,
		Description: &description,
		Unit:        &unit,
		Quantity:    &quantity,
		Price:       &price,
		Amount:      &amount,
	}
	if s.Rate != nil {
		res.RateId = &s.Rate.ID
	}
	return res
}

func Counterparty(c entities.Counterparty) dto.Counterparty {
	return dto.Counterparty{
		Id:                   c.ID,
		Name:                 c.Name,
		Inn:                  c.INN,
		Kpp:                  c.KPP,
		Ogrn:                 c.OGRN,
		Address:              c.Address,
		Account:              c.Account,
		Bik:                  c.BIK,
		CorrespondentAccount: c.CorrespondentAccount,
		Bank:                 c.Bank,
		Director:             c.Director,
		Contract:             c.Contract,
		Contacts:             Clients(c.Contacts),
	}
}

func Counterparties(counterparties []entities.Counterparty) []dto.Counterparty {
	res := make([]dto.Counterparty, 0, len(counterparties))
	for _, c := range counterparties {
		res = append(res, Counterparty(c))
	}
	return res
}

func CounterpartyModify(d dto.CounterpartyModify) entities.CounterpartyModify {
	return entities.CounterpartyModify{
		Name:                 d.Name,
		INN:                  d.Inn,
		KPP:                  d.Kpp,
		OGRN:                 d.Ogrn,
		Address:              d.Address,
		Account:              d.Account,
		BIK:                  d.Bik,
		CorrespondentAccount: d.CorrespondentAccount,
		Bank:                 d.Bank,
		Director:             d.Director,
		Contract:             d.Contract,
		ContactClientIDs:     d.ContactClientIds,
	}
}

func ScheduleEntry(e entities.ScheduleEntry) dto.ScheduleEntry {
	return dto.ScheduleEntry{
		Id:           e.ID,
		CityId:       e.CityID,
		Destination:  e.Destination,
		DeliveryDate: mutation.FormatDate(e.DeliveryDate),
		AcceptDays:   e.AcceptDays,
	}
}

func Schedule(entries []entities.ScheduleEntry) []dto.ScheduleEntry {
	res := make([]dto.ScheduleEntry, 0, len(entries))
	for _, e := range entries {
		res = append(res, ScheduleEntry(e))
	}
	return res
}

func Invoice(i entities.Invoice) dto.Invoice {
	res := dto.Invoice{
		Id:             i.ID,
		Number:         i.Number,
		CounterpartyId: i.CounterpartyID,
		RequestId:      i.RequestID,
		IssuedAt:       formatTime(i.IssuedAt),
		Total:          i.Total.InexactFloat64(),
		Items:          make([]dto.InvoiceItem, 0, len(i.Items)),
	}
	if i.Counterparty != nil {
		c := Counterparty(*i.Counterparty)
		res.Counterparty = &c
	}
	for _, item := range i.Items {
		res.Items = append(res.Items, dto.InvoiceItem{
			Position:    item.Position,
			Description: item.Description,
			Unit:        item.Unit,
			Quantity:    item.Quantity.InexactFloat64(),
			Price:       item.Price.InexactFloat64(),
			Amount:      item.Amount.InexactFloat64(),
		})
	}
	return res
}

func Invoices(invoices []entities.Invoice) []dto.Invoice {
	res := make([]dto.Invoice, 0, len(invoices))
	for _, i := range invoices {
		res = append(res, Invoice(i))
	}
	return res
}

func InvoiceCreate(d dto.InvoiceCreate) entities.InvoiceCreate {
	create := entities.InvoiceCreate{
		CounterpartyID: d.CounterpartyId,
		RequestID:      d.RequestId,
		Items:          make([]entities.InvoiceItem, 0, len(d.Items)),
	}
	for _, item := range d.Items {
		unit := ""
		if item.Unit != nil {
			unit = *item.Unit
		}
		create.Items = append(create.Items, entities.InvoiceItem{
			Description: item.Description,
			Unit:        unit,
			Quantity:    decimal.NewFromFloat(item.Quantity),
			Price:       decimal.NewFromFloat(item.Price),
		})
	}
	return create
}

func BotSession(s entities.BotSession) dto.BotSession {
	return dto.BotSession{
		TelegramId: s.TelegramID,
		State:      s.State,
		UpdatedAt:  formatTime(s.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func optionalDecimal(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}
