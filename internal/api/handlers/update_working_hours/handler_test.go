package update_working_hours

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/maintainer"
	updateEntry "github.com/m04kA/SMC-ScheduleService/internal/usecase/update_entry"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

type stubUseCase struct {
	got  *updateEntry.Request
	resp *updateEntry.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *updateEntry.Request) (*updateEntry.Response, error) {
	s.got = req
	return s.resp, s.err
}

func put(h *Handler, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/tenants/salon-1/working-hours/"+id, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"tenantId": "salon-1", "id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Updated(t *testing.T) {
	date := types.MustParseDate("2024-06-04")
	uc := &stubUseCase{resp: &updateEntry.Response{
		Entry:        &domain.WorkingHoursEntry{ID: "wh-7", TenantID: "salon-1", Date: date, Day: domain.Tuesday, IsClosed: true},
		CopyForward:  maintainer.CopyForwardResult{Status: maintainer.CopyExists, Target: date.AddDays(7)},
		DetectQueued: true,
	}}
	h := NewHandler(uc, logger.NewWithWriter(io.Discard, logger.LevelDebug))

	rec := put(h, "wh-7", `{"date":"2024-06-04","isClosed":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "wh-7", uc.got.ID)
	assert.Equal(t, "salon-1", uc.got.TenantID)
	assert.True(t, uc.got.IsClosed)

	var body UpdateWorkingHoursResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Entry.IsClosed)
	assert.Nil(t, body.Entry.Start)
	assert.Equal(t, "exists", body.CopyForward.Status)
	assert.True(t, body.DetectQueued)
}

func TestHandle_ClosedDayClearsStaleTimes(t *testing.T) {
	date := types.MustParseDate("2024-06-09")
	uc := &stubUseCase{resp: &updateEntry.Response{
		Entry: &domain.WorkingHoursEntry{ID: "wh-8", TenantID: "salon-1", Date: date, Day: domain.Sunday, IsClosed: true},
	}}
	h := NewHandler(uc, logger.NewWithWriter(io.Discard, logger.LevelDebug))

	rec := put(h, "wh-8", `{"date":"2024-06-09","isClosed":true,"start":"9 утра","end":"18:00"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.got.Start)
	assert.Nil(t, uc.got.End)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{updateEntry.ErrInvalidInput, http.StatusBadRequest},
		{updateEntry.ErrEntryNotFound, http.StatusNotFound},
		{updateEntry.ErrDuplicateDate, http.StatusConflict},
		{updateEntry.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		h := NewHandler(&stubUseCase{err: tt.err}, logger.NewWithWriter(io.Discard, logger.LevelDebug))
		rec := put(h, "wh-7", `{"date":"2024-06-04","isClosed":true}`)
		assert.Equal(t, tt.want, rec.Code, "error %v", tt.err)
	}
}
