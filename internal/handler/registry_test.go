package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"
	"github.com/SergeyBogomolovv/pedidos-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/pedidos-service/internal/handler/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	clientID = "44444444-4444-4444-4444-444444444444"
	workerID = "55555555-5555-5555-5555-555555555555"
)

func TestBagHandler(t *testing.T) {
	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		mockBehavior func(svc *mocks.MockBagService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "list available",
			method: http.MethodGet,
			target: "/bags?estado=disponible",
			mockBehavior: func(svc *mocks.MockBagService) {
				status := entities.BagDisponible
				svc.EXPECT().ListBags(mock.Anything, &status).
					Return([]entities.Bag{{ID: "1", Status: entities.BagDisponible}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"id":"1","estado":"DISPONIBLE"}]`,
		},
		{
			name:       "list with unknown status",
			method:     http.MethodGet,
			target:     "/bags?estado=rota",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"estado":"oneof"`,
		},
		{
			name:   "register",
			method: http.MethodPost,
			target: "/bags",
			body:   `{"id":"A12"}`,
			mockBehavior: func(svc *mocks.MockBagService) {
				svc.EXPECT().RegisterBag(mock.Anything, "A12").
					Return(entities.Bag{ID: "A12", Status: entities.BagDisponible}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":"A12"`,
		},
		{
			name:       "register with long code",
			method:     http.MethodPost,
			target:     "/bags",
			body:       `{"id":"ABCDEFGHIJK"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"id":"max"`,
		},
		{
			name:   "register duplicate",
			method: http.MethodPost,
			target: "/bags",
			body:   `{"id":"A12"}`,
			mockBehavior: func(svc *mocks.MockBagService) {
				svc.EXPECT().RegisterBag(mock.Anything, "A12").Return(entities.Bag{}, entities.ErrBagExists).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"bag already exists"`,
		},
		{
			name:   "remove occupied",
			method: http.MethodDelete,
			target: "/bags/A12",
			mockBehavior: func(svc *mocks.MockBagService) {
				svc.EXPECT().RemoveBag(mock.Anything, "A12").Return(entities.ErrBagOccupied).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "remove",
			method: http.MethodDelete,
			target: "/bags/A12",
			mockBehavior: func(svc *mocks.MockBagService) {
				svc.EXPECT().RemoveBag(mock.Anything, "A12").Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockBagService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}
			r := newRouter(handler.NewBagHandler(discardLogger(), svc), entities.RoleAdmin)

			status, body := serve(t, r, tc.method, tc.target, tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestClientHandler(t *testing.T) {
	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		mockBehavior func(svc *mocks.MockClientService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "list",
			method: http.MethodGet,
			target: "/clients?search=ana&page=1&limit=20",
			mockBehavior: func(svc *mocks.MockClientService) {
				svc.EXPECT().ListClients(mock.Anything, entities.ClientFilter{Search: "ana", Page: 1, PageSize: 20}).
					Return(entities.NewPage([]entities.Client{{ID: clientID, Name: "Ana"}}, 1, 1, 20), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"nombre":"Ana"`,
		},
		{
			name:       "list with bad page",
			method:     http.MethodGet,
			target:     "/clients?page=0",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"page":"gte=1"`,
		},
		{
			name:       "list with huge page",
			method:     http.MethodGet,
			target:     "/clients?page=9223372036854775807",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"page":"max"`,
		},
		{
			name:   "search",
			method: http.MethodGet,
			target: "/clients/search?term=010",
			mockBehavior: func(svc *mocks.MockClientService) {
				svc.EXPECT().SearchClients(mock.Anything, "010").
					Return([]entities.Client{{ID: clientID, NationalID: "0102030405"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"cedula":"0102030405"`,
		},
		{
			name:       "search without term",
			method:     http.MethodGet,
			target:     "/clients/search",
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:   "get missing",
			method: http.MethodGet,
			target: "/clients/" + clientID,
			mockBehavior: func(svc *mocks.MockClientService) {
				svc.EXPECT().GetClient(mock.Anything, clientID).Return(entities.Client{}, entities.ErrClientNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"client not found"`,
		},
		{
			name:   "update",
			method: http.MethodPatch,
			target: "/clients/" + clientID,
			body:   `{"telefono":"0990000000"}`,
			mockBehavior: func(svc *mocks.MockClientService) {
				svc.EXPECT().UpdateClient(mock.Anything, clientID, mock.MatchedBy(func(c entities.ClientChanges) bool {
					return c.Phone != nil && *c.Phone == "0990000000" && c.Name == nil && c.NationalID == nil
				})).Return(entities.Client{ID: clientID, Phone: "0990000000"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"telefono":"0990000000"`,
		},
		{
			name:   "remove with orders",
			method: http.MethodDelete,
			target: "/clients/" + clientID,
			mockBehavior: func(svc *mocks.MockClientService) {
				svc.EXPECT().RemoveClient(mock.Anything, clientID).Return(entities.ErrClientHasOrders).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"client has associated orders"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockClientService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}
			r := newRouter(handler.NewClientHandler(discardLogger(), svc), entities.RoleAdmin)

			status, body := serve(t, r, tc.method, tc.target, tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestWorkerHandler(t *testing.T) {
	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		mockBehavior func(svc *mocks.MockWorkerService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "list active",
			method: http.MethodGet,
			target: "/workers?activo=true&search=lu",
			mockBehavior: func(svc *mocks.MockWorkerService) {
				svc.EXPECT().ListWorkers(mock.Anything, mock.MatchedBy(func(f entities.WorkerFilter) bool {
					return f.Active != nil && *f.Active && f.Search == "lu"
				})).Return([]entities.Worker{{ID: workerID, Name: "Luis", Active: true}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"nombre":"Luis"`,
		},
		{
			name:       "list with bad flag",
			method:     http.MethodGet,
			target:     "/workers?activo=maybe",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"activo":"boolean"`,
		},
		{
			name:   "create",
			method: http.MethodPost,
			target: "/workers",
			body:   `{"nombre":" Luis "}`,
			mockBehavior: func(svc *mocks.MockWorkerService) {
				svc.EXPECT().CreateWorker(mock.Anything, "Luis").
					Return(entities.Worker{ID: workerID, Name: "Luis", Active: true}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"activo":true`,
		},
		{
			name:   "create duplicate",
			method: http.MethodPost,
			target: "/workers",
			body:   `{"nombre":"Luis"}`,
			mockBehavior: func(svc *mocks.MockWorkerService) {
				svc.EXPECT().CreateWorker(mock.Anything, "Luis").Return(entities.Worker{}, entities.ErrWorkerExists).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "deactivate",
			method: http.MethodPatch,
			target: "/workers/" + workerID,
			body:   `{"activo":false}`,
			mockBehavior: func(svc *mocks.MockWorkerService) {
				svc.EXPECT().UpdateWorker(mock.Anything, workerID, mock.MatchedBy(func(c entities.WorkerChanges) bool {
					return c.Active != nil && !*c.Active && c.Name == nil
				})).Return(entities.Worker{ID: workerID, Name: "Luis"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"activo":false`,
		},
		{
			name:   "remove",
			method: http.MethodDelete,
			target: "/workers/" + workerID,
			mockBehavior: func(svc *mocks.MockWorkerService) {
				svc.EXPECT().RemoveWorker(mock.Anything, workerID).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockWorkerService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}
			r := newRouter(handler.NewWorkerHandler(discardLogger(), svc), entities.RoleAdmin)

			status, body := serve(t, r, tc.method, tc.target, tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestWorkerHandler_GetWorker(t *testing.T) {
	svc := mocks.NewMockWorkerService(t)
	svc.EXPECT().GetWorker(mock.Anything, workerID).Return(entities.Worker{ID: workerID, Name: "Luis", Active: true}, nil).Once()
	r := newRouter(handler.NewWorkerHandler(discardLogger(), svc), entities.RoleAdmin)

	status, body := serve(t, r, http.MethodGet, "/workers/"+workerID, "")
	require.Equal(t, http.StatusOK, status)

	var worker map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &worker))
	assert.Equal(t, "Luis", worker["nombre"])
}
