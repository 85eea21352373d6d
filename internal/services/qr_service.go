package services

import (
	"fmt"
	"net/url"
	"strings"

	"organizer/internal/apperr"
	"organizer/internal/config"
	"organizer/internal/models"

	qrcode "github.com/skip2/go-qrcode"
)

type KeyKind int

const (
	KeyByCode KeyKind = iota
	KeyByID
)

// LookupKey is the decoded identity carried by a QR payload.
type LookupKey struct {
	Kind  KeyKind
	Value string
}

// QRService converts boxes to scannable payloads and back. Encoding always
// emits the app-scheme deep link; decoding also accepts the older web-URL
// form so previously printed labels keep working.
type QRService interface {
	EncodePayload(box *models.Box) string
	DecodePayload(payload string) (*LookupKey, error)
	RenderPNG(box *models.Box, size int) ([]byte, error)
}

type qrServiceImpl struct {
	configuration *config.Configuration
}

func NewQRService(configuration *config.Configuration) QRService {
	return &qrServiceImpl{configuration: configuration}
}

func (s *qrServiceImpl) EncodePayload(box *models.Box) string {
	return fmt.Sprintf("%s://box/%s", s.configuration.QR.Scheme, box.Code)
}

// DecodePayload tries the app-scheme form first, then the web-URL form.
// Anything else is an unrecognized payload, distinct from a lookup miss.
func (s *qrServiceImpl) DecodePayload(payload string) (*LookupKey, error) {
	payload = strings.TrimSpace(payload)

	schemePrefix := s.configuration.QR.Scheme + "://box/"
	if strings.HasPrefix(payload, schemePrefix) {
		code := strings.TrimPrefix(payload, schemePrefix)
		if code == "" {
			return nil, apperr.ErrInvalidFormat
		}
		return &LookupKey{Kind: KeyByCode, Value: code}, nil
	}

	if strings.HasPrefix(payload, "http://") || strings.HasPrefix(payload, "https://") {
		parsed, err := url.Parse(payload)
		if err != nil {
			return nil, apperr.ErrInvalidFormat
		}
		marker := "/box/"
		index := strings.LastIndex(parsed.Path, marker)
		if index < 0 {
			return nil, apperr.ErrInvalidFormat
		}
		id := parsed.Path[index+len(marker):]
		if id == "" || strings.Contains(id, "/") {
			return nil, apperr.ErrInvalidFormat
		}
		return &LookupKey{Kind: KeyByID, Value: id}, nil
	}

	return nil, apperr.ErrInvalidFormat
}

func (s *qrServiceImpl) RenderPNG(box *models.Box, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(s.EncodePayload(box), qrcode.Medium, size)
}
