// Package gotenberg converts docx documents to PDF through a
// Gotenberg-compatible HTTP API (LibreOffice conversion route). Calls are
// synchronous and single-attempt with a fixed timeout; a failure is surfaced
// to the caller, never retried or cached.
package gotenberg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/mshagov/ecooffer-api/internal/application/document"
	"github.com/mshagov/ecooffer-api/internal/domain"
)

var _ document.PDFConverter = (*Client)(nil)

const (
	convertRoute   = "/forms/libreoffice/convert"
	requestTimeout = 10 * time.Second
)

// Client implements the document.PDFConverter port against a Gotenberg
// instance. Uses net/http from the standard library; no SDK required.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds the converter client. baseURL is the root of the
// Gotenberg service, e.g. "http://gotenberg:3000".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Convert sends the docx bytes to the conversion API and returns the PDF
// bytes. Any transport error or non-200 response maps to
// domain.ErrConversionFailed.
func (c *Client) Convert(ctx context.Context, doc []byte) ([]byte, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: CONVERT_API_URL not configured", domain.ErrConversionFailed)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("files", "document.docx")
	if err != nil {
		return nil, fmt.Errorf("%w: build form: %v", domain.ErrConversionFailed, err)
	}
	if _, err := part.Write(doc); err != nil {
		return nil, fmt.Errorf("%w: write form: %v", domain.ErrConversionFailed, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("%w: close form: %v", domain.ErrConversionFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+convertRoute, &body)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrConversionFailed, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConversionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: conversion API returned %d", domain.ErrConversionFailed, resp.StatusCode)
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrConversionFailed, err)
	}
	return pdf, nil
}
