package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/zatca-egs/internal/model"
	"github.com/rezonia/zatca-egs/internal/server"
)

func newTestServer() *server.Server {
	config := &server.Config{
		Address: ":8080",
		Debug:   true,
	}
	return server.NewServer(config)
}

func testRelayData() *model.RelayData {
	return &model.RelayData{
		Referrer:    "https://demo.manager.io/invoice-view",
		ZatcaUUID:   "16e78469-64e8-4e8c-9d01-8bfb0a9e8b3d",
		DateCreated: "2025-06-01 14:30:00",
		LastICV:     7,
		LastPIH:     "NWZlY2ViNjZmZmM4NmYzOGQ5NTI3ODZjNmQ2OTZjNzljMmRiYzIzOWRkNGU5MWI0Njcy",
		CertInfo: &model.CertificateInfo{
			IdentificationScheme:      "CRN",
			IdentificationID:          "1010010000",
			CityName:                  "Riyadh",
			CountryIdentificationCode: "SA",
			CompanyID:                 "300000000000003",
			TaxSchemeID:               "VAT",
			RegistrationName:          "Demo Trading Co",
			EnvironmentType:           model.EnvironmentProduction,
		},
		PartyInfo: model.PartyTaxInfo{
			IdentificationScheme: "NAT",
			IdentificationID:     "1010101010",
			CityName:             "Riyadh",
			TaxSchemeID:          "VAT",
			RegistrationName:     "Buyer LLC",
		},
		ManagerInvoice: model.ManagerInvoice{
			Reference:   "INV-0042",
			IssueDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			DueDateDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			Lines: []model.Line{
				{
					Qty:       decimal.NewFromInt(2),
					UnitPrice: decimal.NewFromInt(100),
					TaxCode:   &model.TaxCode{Rate: decimal.NewFromInt(15)},
					Item:      &model.Item{Name: "Widget", UnitName: "pcs"},
				},
			},
		},
	}
}

func postRelay(t *testing.T, srv *server.Server, data *model.RelayData) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(data)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/relay/map", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "ok", response["status"])
	assert.NotEmpty(t, response["time"])
}

func TestMapEndpoint(t *testing.T) {
	srv := newTestServer()

	w := postRelay(t, srv, testRelayData())
	assert.Equal(t, http.StatusOK, w.Code)

	var response server.MapResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	require.NotNil(t, response.Invoice)
	assert.Equal(t, "INV-0042", response.Invoice.ID.Value)
	assert.Equal(t, 388, response.Invoice.InvoiceTypeCode.Value)
	require.Len(t, response.Invoice.InvoiceLine, 1)
	assert.True(t, response.Invoice.LegalMonetaryTotal.PayableAmount.Value.Equal(decimal.NewFromInt(230)),
		"payable %s", response.Invoice.LegalMonetaryTotal.PayableAmount.Value)
}

func TestMapEndpoint_InvalidBody(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/relay/map", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMapEndpoint_MissingCertificate(t *testing.T) {
	srv := newTestServer()

	data := testRelayData()
	data.CertInfo = nil

	w := postRelay(t, srv, data)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMapEndpoint_ClassificationFailure(t *testing.T) {
	srv := newTestServer()

	data := testRelayData()
	// Zero-rated item without a tax category key cannot be classified
	data.ManagerInvoice.Lines[0].TaxCode.Rate = decimal.Zero

	w := postRelay(t, srv, data)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response server.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "vat classification failed", response.Error)
}
