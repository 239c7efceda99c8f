package scan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"Scanstock-Backend/domain"
)

type (
	// DecodedBarcode is the result of running an uploaded image through the
	// external barcode decoder service.
	DecodedBarcode struct {
		Value  string `json:"value"`
		Format string `json:"format"`
	}

	BarcodeDecoder interface {
		Decode(ctx context.Context, image *multipart.FileHeader) (DecodedBarcode, error)
	}

	barcodeDecoder struct {
		decoderURL string
		httpClient *http.Client
	}
)

func NewBarcodeDecoder(decoderURL string) BarcodeDecoder {
	return &barcodeDecoder{
		decoderURL: decoderURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (d *barcodeDecoder) Decode(ctx context.Context, image *multipart.FileHeader) (DecodedBarcode, error) {
	if d.decoderURL == "" {
		return DecodedBarcode{}, domain.ErrDecoderUnavailable
	}

	file, err := image.Open()
	if err != nil {
		return DecodedBarcode{}, err
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return DecodedBarcode{}, err
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("image", image.Filename)
	if err != nil {
		return DecodedBarcode{}, err
	}
	if _, err = part.Write(fileBytes); err != nil {
		return DecodedBarcode{}, err
	}
	if err = writer.Close(); err != nil {
		return DecodedBarcode{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.decoderURL, body)
	if err != nil {
		return DecodedBarcode{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return DecodedBarcode{}, domain.ErrDecoderUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return DecodedBarcode{}, fmt.Errorf("decoder error: %s - %s", resp.Status, string(bodyBytes))
	}

	var decoded DecodedBarcode
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return DecodedBarcode{}, err
	}

	if decoded.Value == "" {
		return DecodedBarcode{}, domain.ErrLookupFailure
	}
	return decoded, nil
}
