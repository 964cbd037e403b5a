package constvars

// Validation messages per validator tag, used when formatting the first
// validation error for the client.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"uuid":     "must be a valid identifier",
	"gte":      "must not be negative",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientEmailAlreadyExists            = "email already used"

	ErrClientExaminationNotFound     = "examination not found"
	ErrClientInvalidStateTransition  = "invalid transition"
	ErrClientBillNotFound            = "bill not found"
	ErrClientBillAlreadyPaid         = "already paid"
	ErrClientPatientNotFound         = "patient not found"
	ErrClientImageUploadFailed       = "image upload failed"
	ErrClientInvalidImageFormat      = "invalid image file"
	ErrClientNegativeLineItemAmounts = "price and quantity must not be negative"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON          = "cannot parse JSON"
	ErrDevCannotMarshalJSON        = "cannot marshal JSON"
	ErrDevCannotParseTime          = "cannot parse time value"
	ErrDevValidationFailed         = "validation failed"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form"

	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevRoleTypeDoesntMatch       = "role type doesn't match"
	ErrDevInvalidCredentials        = "invalid credentials"
	ErrDevEmailAlreadyExists        = "email already exists"
	ErrDevFailedToHashPassword      = "failed to hash password"

	ErrDevExaminationNotFound          = "examination not found"
	ErrDevExaminationInvalidTransition = "examination state transition not permitted"
	ErrDevBillNotFound                 = "bill not found"
	ErrDevBillAlreadyPaid              = "bill is already paid"
	ErrDevBillNegativeLineItem         = "line item price or quantity is negative"
	ErrDevPatientNotFound              = "patient not found"
	ErrDevImageUploadFailed            = "media storage returned no URL"

	ErrDevDBFailedToFindData   = "failed to find data from postgres"
	ErrDevDBFailedToInsertData = "failed to insert data to postgres"
	ErrDevDBFailedToUpdateData = "failed to update data in postgres"

	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	ErrDevRabbitMQPublish = "failed to publish message to queue %s"
	ErrDevRabbitMQConsume = "failed to start consumer on queue %s"

	ErrDevMinioCreateObject = "failed to create object in bucket %s"
)
