package config

type InternalConfig struct {
	App     App
	JWT     AppJWT
	Minio   AppMinio
	Billing AppBilling
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	EndpointPrefix            string
	MaxRequests               int
	ShutdownTimeoutInSeconds  int
	MaxTimeRequestsPerSeconds int
	RevenueChartWindowInDays  int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMinio struct {
	BucketName              string
	ImageMaxUploadSizeInMB  int64
	AllowedImageContentType string
}

type AppBilling struct {
	ExaminationFeeAmount int64
}
