package filings

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/filingforge/filingforge/testing"
)

type stubEnqueuer struct {
	ids []uuid.UUID
}

func (e *stubEnqueuer) EnqueueGenerateFiling(ctx context.Context, id uuid.UUID) error {
	e.ids = append(e.ids, id)
	return nil
}

func newTestRouter(t *testing.T, svc *Service, enqueue Enqueuer) chi.Router {
	t.Helper()
	handler := NewHandler(slog.Default(), svc, enqueue)
	r := chi.NewRouter()
	r.Route("/filings", handler.MountRoutes)
	return r
}

func draftBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	in := validDraftInput()
	payload := draftPayload{
		CompanyName:        in.Package.Context.CompanyName,
		RegistrationNumber: in.Package.Context.RegistrationNumber,
		PeriodStart:        in.Package.Context.PeriodStart,
		PeriodEnd:          in.Package.Context.PeriodEnd,
		BalanceSheetDate:   in.Package.Context.BalanceSheetDate,
		Currency:           in.Package.Context.Currency,
		CurrentMetrics:     in.CurrentMetrics,
		BalanceSheet:       in.Package.BalanceSheet,
		ProfitLoss:         in.Package.ProfitLoss,
		Directors:          in.Package.Directors,
		Notes:              in.Package.Notes,
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return bytes.NewBuffer(data)
}

func TestCreateFilingEndpoint(t *testing.T) {
	svc := newTestService(newStubStore(), nil)
	router := newTestRouter(t, svc, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/filings", draftBody(t)))

	require.Equal(t, http.StatusCreated, rr.Code)
	var created Filing
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "12345678", created.RegistrationNumber)
	assert.Equal(t, StatusDraft, created.Status)
}

func TestCreateFilingRejectsBadRegistrationNumber(t *testing.T) {
	svc := newTestService(newStubStore(), nil)
	router := newTestRouter(t, svc, nil)

	in := validDraftInput()
	payload := draftPayload{
		CompanyName:        in.Package.Context.CompanyName,
		RegistrationNumber: "1234",
		PeriodStart:        in.Package.Context.PeriodStart,
		PeriodEnd:          in.Package.Context.PeriodEnd,
		BalanceSheetDate:   in.Package.Context.BalanceSheetDate,
		Currency:           in.Package.Context.Currency,
		CurrentMetrics:     in.CurrentMetrics,
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/filings", bytes.NewBuffer(data)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
}

func TestGenerateEndpointReturnsValidationErrors(t *testing.T) {
	store := newStubStore()
	svc := newTestService(store, nil)
	router := newTestRouter(t, svc, nil)

	in := validDraftInput()
	in.Package.Directors.Directors = nil
	created, err := svc.CreateDraft(context.Background(), in)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/filings/"+created.ID.String()+"/generate", nil))

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	var body struct {
		Valid  bool     `json:"valid"`
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.False(t, body.Valid)
	assert.NotEmpty(t, body.Errors)
}

func TestArtifactEndpointSetsDownloadHeaders(t *testing.T) {
	store := newStubStore()
	svc := newTestService(store, nil)
	router := newTestRouter(t, svc, nil)

	created, err := svc.CreateDraft(context.Background(), validDraftInput())
	require.NoError(t, err)
	_, _, err = svc.Generate(context.Background(), created.ID)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/filings/"+created.ID.String()+"/artifact", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/zip", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="12345678-20241231-accounts.zip"`, rr.Header().Get("Content-Disposition"))
	assert.NotEmpty(t, rr.Body.Bytes())
}

func TestPreviewEndpointServesHTMLWithoutTags(t *testing.T) {
	store := newStubStore()
	svc := newTestService(store, nil)
	router := newTestRouter(t, svc, nil)

	created, err := svc.CreateDraft(context.Background(), validDraftInput())
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/filings/"+created.ID.String()+"/preview", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	assert.Contains(t, body, "Widget Trading Ltd")
	assert.NotContains(t, body, "<ix:")
}

func TestEnqueueEndpoint(t *testing.T) {
	store := newStubStore()
	svc := newTestService(store, nil)
	enqueuer := &stubEnqueuer{}
	router := newTestRouter(t, svc, enqueuer)

	created, err := svc.CreateDraft(context.Background(), validDraftInput())
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/filings/"+created.ID.String()+"/enqueue", nil))

	require.Equal(t, http.StatusAccepted, rr.Code)
	require.Len(t, enqueuer.ids, 1)
	assert.Equal(t, created.ID, enqueuer.ids[0])
}

func TestEnqueueEndpointWithoutWorker(t *testing.T) {
	svc := newTestService(newStubStore(), nil)
	router := newTestRouter(t, svc, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/filings/"+uuid.NewString()+"/enqueue", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestCreateDuplicateFilingConflict(t *testing.T) {
	svc := newTestService(newStubStore(), nil)
	router := newTestRouter(t, svc, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/filings", draftBody(t)))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/filings", draftBody(t)))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
}

func TestGetUnknownFilingIsProblemResponse(t *testing.T) {
	svc := newTestService(newStubStore(), nil)
	router := newTestRouter(t, svc, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/filings/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
}
