// Package relay decodes the serialized blobs carried inside a relay payload.
package relay

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/json"
	"io"

	"github.com/rezonia/zatca-egs/internal/model"
)

// DecodeCertificate decodes the base64, gzip-compressed JSON certificate
// blob stored in the bookkeeping application's custom fields.
func DecodeCertificate(s string) (*model.CertificateInfo, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, model.NewMappingError("CertInfoString", "invalid base64", err)
	}

	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, model.NewMappingError("CertInfoString", "invalid gzip stream", err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, model.NewMappingError("CertInfoString", "failed to decompress", err)
	}

	var info model.CertificateInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, model.NewMappingError("CertInfoString", "invalid certificate JSON", err)
	}
	return &info, nil
}

// EncodeCertificate is the inverse of DecodeCertificate
func EncodeCertificate(info *model.CertificateInfo) (string, error) {
	data, err := json.Marshal(info)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return "", err
	}
	if err := zw.Close(); err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
