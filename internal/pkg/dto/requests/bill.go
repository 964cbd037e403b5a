package requests

type BillItem struct {
	ServiceName string `json:"service_name" validate:"required"`
	Price       int64  `json:"price" validate:"min=0"`
	Quantity    int64  `json:"quantity" validate:"min=0"`
}

type CreateBill struct {
	PatientID   string     `json:"patient_id" validate:"required"`
	ClinicID    string     `json:"clinic_id"`
	ReferenceID string     `json:"reference_id"`
	Items       []BillItem `json:"items" validate:"required,min=1,dive"`
}

type ListBills struct {
	PatientID string
	ClinicID  string
}

type RevenueChart struct {
	ClinicID string
	Days     int
}
