package media

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/disintegration/imaging"

	apperrors "github.com/spec-kit/member-directory/pkg/util"
)

// JPEG quality for re-encoded uploads.
const jpegQuality = 80

// Processor validates and normalizes uploaded profile photos before any
// storage call is made.
type Processor struct {
	maxBytes int64
	bounding int
}

// NewProcessor builds a processor with the configured size ceiling and
// bounding box edge length.
func NewProcessor(maxBytes int64, bounding int) *Processor {
	if maxBytes <= 0 {
		maxBytes = 2 << 20
	}
	if bounding <= 0 {
		bounding = 500
	}
	return &Processor{maxBytes: maxBytes, bounding: bounding}
}

// MaxBytes exposes the configured ceiling for handler-level checks.
func (p *Processor) MaxBytes() int64 {
	return p.maxBytes
}

// Prepare rejects oversize or non-image payloads, bounds the image to fit the
// configured square and re-encodes it as JPEG. Returns the encoded bytes and
// their content type.
func (p *Processor) Prepare(data []byte) ([]byte, string, error) {
	if int64(len(data)) > p.maxBytes {
		return nil, "", apperrors.NewUploadRejected(fmt.Sprintf("File size too large. Maximum %dMB allowed.", p.maxBytes>>20))
	}
	if len(data) == 0 {
		return nil, "", apperrors.NewUploadRejected("Please upload a file")
	}

	contentType := http.DetectContentType(data)
	if len(contentType) < 6 || contentType[:6] != "image/" {
		return nil, "", apperrors.NewUploadRejected("Only image files are allowed!")
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", apperrors.NewUploadRejected("Only image files are allowed!")
	}

	bounds := img.Bounds()
	if bounds.Dx() > p.bounding || bounds.Dy() > p.bounding {
		img = imaging.Fit(img, p.bounding, p.bounding, imaging.Lanczos)
	}

	var out bytes.Buffer
	if err := imaging.Encode(&out, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, "", err
	}
	return out.Bytes(), "image/jpeg", nil
}
