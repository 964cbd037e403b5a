package requests

import "io"

type UploadImage struct {
	PatientID   string `validate:"required"`
	ClinicID    string `validate:"required"`
	FileName    string `validate:"required"`
	ContentType string
	Size        int64
	Reader      io.Reader `validate:"required"`
}
