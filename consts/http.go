package consts

const (
	StatusOK                  = 200
	StatusNotFound            = 404
	StatusInternalServerError = 500

	HeaderContentType = "Content-Type"
	MIMETextHTML      = "text/html; charset=utf-8"
)
