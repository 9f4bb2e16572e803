package dto

type ScheduleEntryDTO struct {
	ID           uint    `json:"id"`
	Time         string  `json:"time"`
	CustomerName string  `json:"customer_name"`
	Service      string  `json:"service"`
	Amount       float64 `json:"amount"`
	Technician   string  `json:"technician"`
}
