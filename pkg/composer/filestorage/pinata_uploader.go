package filestorage

import (
	"context"
	"fmt"

	"github.com/zde37/pinata-go-sdk/pinata"
)

type PinataUploader struct {
	client *pinata.Client
}

var _ Uploader = (*PinataUploader)(nil)

func NewPinataUploader(jwtKey string) *PinataUploader {
	return &PinataUploader{
		client: pinata.New(pinata.NewAuthWithJWT(jwtKey)),
	}
}

func (u *PinataUploader) UploadJson(ctx context.Context, name string, document any) (string, error) {
	pinResponse, err := u.client.PinJSON(document, pinOptions(name))
	if err != nil {
		return "", fmt.Errorf("failed to pin %s to pinata: %w", name, err)
	}

	return pinResponse.IpfsHash, nil
}

// pinOptions labels the pin with name in the Pinata dashboard.
func pinOptions(name string) *pinata.PinOptions {
	return &pinata.PinOptions{
		PinataMetadata: pinata.PinataMetadata{Name: name},
	}
}
