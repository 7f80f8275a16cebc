package export

import (
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	defaultQRSize = 256
	maxQRSize     = 1024
)

// FeedbackQR renders a PNG QR code that opens the public feedback page
// for the given employee.
func FeedbackQR(publicBaseURL, employeeID string, size int) ([]byte, error) {
	if size <= 0 {
		size = defaultQRSize
	}
	if size > maxQRSize {
		size = maxQRSize
	}
	link := strings.TrimSuffix(publicBaseURL, "/") + "/feedback/" + employeeID
	return qrcode.Encode(link, qrcode.Medium, size)
}
