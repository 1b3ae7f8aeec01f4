// Package soapval implements the product validator port against the SOAP
// validation backend.
//
// The backend exposes two operations: a legacy boolean validateProduct and
// an extended getAvailableProducts catalog call. Some deployments fault on
// the boolean call, so a fault there falls back to membership in the
// catalog; only transport-level failures surface as the validator being
// unavailable.
package soapval

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ordersystem/internal/pkg/errs"
)

const (
	serviceName      = "product-validator"
	validatorNS      = "http://validator.com/"
	defaultTimeout   = 10 * time.Second
	soapContentType  = "text/xml; charset=utf-8"
	envelopeTemplate = `<?xml version="1.0" encoding="UTF-8"?>` +
		`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" xmlns:val="%s">` +
		`<soapenv:Body>%s</soapenv:Body></soapenv:Envelope>`
)

// Client is a SOAP client for the product validation backend.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a validator client for the given endpoint. A
// non-positive timeout falls back to the default of ten seconds.
func NewClient(endpoint string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With("component", "soap_validator"),
	}
}

type soapFault struct {
	Code    string `xml:"faultcode"`
	Message string `xml:"faultstring"`
}

type validateResponseEnvelope struct {
	Body struct {
		Fault    *soapFault `xml:"Fault"`
		Response *struct {
			Return bool `xml:"return"`
		} `xml:"validateProductResponse"`
	} `xml:"Body"`
}

type productsResponseEnvelope struct {
	Body struct {
		Fault    *soapFault `xml:"Fault"`
		Response *struct {
			Return []struct {
				ID string `xml:"id"`
			} `xml:"return"`
		} `xml:"getAvailableProductsResponse"`
	} `xml:"Body"`
}

// Validate reports whether the product can be ordered. A SOAP fault on the
// boolean call degrades to a catalog membership check; a transport failure
// or timeout yields a ServiceUnavailableError.
func (c *Client) Validate(ctx context.Context, productID string) (bool, error) {
	body := fmt.Sprintf("<val:validateProduct><productId>%s</productId></val:validateProduct>",
		escapeXML(productID))

	raw, err := c.call(ctx, body)
	if err != nil {
		return false, err
	}

	var envelope validateResponseEnvelope
	if err = xml.Unmarshal(raw, &envelope); err != nil {
		return false, errs.NewServiceUnavailableErrorWithCause(serviceName, err)
	}

	if envelope.Body.Fault != nil {
		c.logger.WarnContext(ctx, "validateProduct faulted, falling back to catalog lookup",
			"product_id", productID, "fault", envelope.Body.Fault.Message)
		return c.validateViaCatalog(ctx, productID)
	}

	if envelope.Body.Response == nil {
		return false, errs.NewServiceUnavailableError(serviceName)
	}

	return envelope.Body.Response.Return, nil
}

// AvailableProducts returns the identifiers of all currently orderable
// products.
func (c *Client) AvailableProducts(ctx context.Context) ([]string, error) {
	raw, err := c.call(ctx, "<val:getAvailableProducts/>")
	if err != nil {
		return nil, err
	}

	var envelope productsResponseEnvelope
	if err = xml.Unmarshal(raw, &envelope); err != nil {
		return nil, errs.NewServiceUnavailableErrorWithCause(serviceName, err)
	}

	if envelope.Body.Fault != nil {
		return nil, errs.NewServiceUnavailableErrorWithCause(serviceName,
			fmt.Errorf("soap fault: %s", envelope.Body.Fault.Message))
	}

	if envelope.Body.Response == nil {
		return nil, errs.NewServiceUnavailableError(serviceName)
	}

	ids := make([]string, 0, len(envelope.Body.Response.Return))
	for _, entry := range envelope.Body.Response.Return {
		ids = append(ids, entry.ID)
	}

	return ids, nil
}

func (c *Client) validateViaCatalog(ctx context.Context, productID string) (bool, error) {
	ids, err := c.AvailableProducts(ctx)
	if err != nil {
		return false, err
	}

	for _, id := range ids {
		if id == productID {
			return true, nil
		}
	}

	return false, nil
}

func (c *Client) call(ctx context.Context, operation string) ([]byte, error) {
	payload := fmt.Sprintf(envelopeTemplate, validatorNS, operation)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint,
		bytes.NewBufferString(payload))
	if err != nil {
		return nil, errs.NewServiceUnavailableErrorWithCause(serviceName, err)
	}
	req.Header.Set("Content-Type", soapContentType)
	req.Header.Set("SOAPAction", "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewServiceUnavailableErrorWithCause(serviceName, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewServiceUnavailableErrorWithCause(serviceName, err)
	}

	// a fault arrives with 500, everything else non-2xx is the service
	// being broken
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusInternalServerError {
		return nil, errs.NewServiceUnavailableErrorWithCause(serviceName,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	return raw, nil
}

func escapeXML(value string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(value))
	return sb.String()
}
