package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/gomega"

	"github.com/browsermux/browsermux/mocks"
	"github.com/browsermux/browsermux/pkg/dto"
	"github.com/browsermux/browsermux/pkg/models"
)

func TestResourcesController_ResourceUsage(t *testing.T) {
	g := NewWithT(t)

	rs := new(mocks.ResourceService)
	rc := NewResourcesController(rs)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/resources", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	expResp := &dto.ResourceUsage{
		ActiveInstances: 2,
		ActiveSessions:  3,
		QueueDepth:      1,
		MemoryMB:        44,
	}
	rs.EXPECT().GetResourceUsage().Return(expResp)

	err := rc.ResourceUsage(c)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))

	var gotResp dto.ResourceUsage
	err = json.NewDecoder(rec.Body).Decode(&gotResp)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(gotResp).To(Equal(*expResp))

	rs.AssertExpectations(t)
}

func TestResourcesController_GetLimits(t *testing.T) {
	g := NewWithT(t)

	rs := new(mocks.ResourceService)
	rc := NewResourcesController(rs)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/resources/limits", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	rs.EXPECT().GetLimits().Return(models.Limits{MaxInstances: 2, QueueSize: 25})

	err := rc.GetLimits(c)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))

	var gotResp models.Limits
	err = json.NewDecoder(rec.Body).Decode(&gotResp)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(gotResp.MaxInstances).To(Equal(2))
	g.Expect(gotResp.QueueSize).To(Equal(25))

	rs.AssertExpectations(t)
}

func TestResourcesController_UpdateLimits(t *testing.T) {
	g := NewWithT(t)

	rs := new(mocks.ResourceService)
	rc := NewResourcesController(rs)

	e := echo.New()
	body := `{"maxInstances": 5}`
	req := httptest.NewRequest(http.MethodPatch, "/resources/limits", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	maxInstances := 5
	rs.EXPECT().UpdateLimits(models.LimitsPatch{MaxInstances: &maxInstances}).
		Return(models.Limits{MaxInstances: 5, QueueTimeout: time.Minute})

	err := rc.UpdateLimits(c)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))

	var gotResp dto.LimitsUpdate
	err = json.NewDecoder(rec.Body).Decode(&gotResp)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(gotResp.Limits.MaxInstances).To(Equal(5))

	rs.AssertExpectations(t)
}

func TestResourcesController_ClearQueue(t *testing.T) {
	g := NewWithT(t)

	rs := new(mocks.ResourceService)
	rc := NewResourcesController(rs)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/resources/queue", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	rs.EXPECT().ClearQueue().Return(3)

	err := rc.ClearQueue(c)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))

	var gotResp dto.QueueClear
	err = json.NewDecoder(rec.Body).Decode(&gotResp)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(gotResp.Cleared).To(Equal(3))

	rs.AssertExpectations(t)
}
