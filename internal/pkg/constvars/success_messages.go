package constvars

const (
	CreateBillSuccessMessage          = "Successfully created bill"
	GetBillsSuccessMessage            = "Successfully retrieved bills"
	PayBillSuccessMessage             = "Successfully paid bill"
	GetRevenueChartSuccessMessage     = "Successfully retrieved revenue chart"
	CreateExaminationSuccessMessage   = "Successfully created examination"
	GetExaminationSuccessMessage      = "Successfully retrieved examination"
	GetExaminationQueueSuccessMessage = "Successfully retrieved examination queue"
	GetExaminationStatsSuccessMessage = "Successfully retrieved examination statistics"
	UpdateAiResultSuccessMessage      = "Successfully updated AI result"
	VerifyExaminationSuccessMessage   = "Successfully verified examination"
	GetPatientSuccessMessage          = "Successfully retrieved patient"
	UpdatePatientSuccessMessage       = "Successfully updated patient profile"
	AddMedicalHistorySuccessMessage   = "Successfully added medical history"
	UploadImageSuccessMessage         = "Successfully uploaded image"
	GetImagingStatsSuccessMessage     = "Successfully retrieved imaging statistics"
	RegisterUserSuccessMessage        = "Successfully registered user"
	LoginSuccessMessage               = "Successfully logged in"
)
