package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"
	"github.com/SergeyBogomolovv/pedidos-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/pedidos-service/internal/handler/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const orderID = "22222222-2222-2222-2222-222222222222"

const createOrderBody = `{
	"tipo": "BORDADO",
	"descripcion": "logo",
	"cantidadPrendas": 3,
	"abono": "10.00",
	"total": "30.00",
	"fechaEntrega": "2026-11-01T00:00:00Z",
	"bolsaId": "A1",
	"trabajadorId": "33333333-3333-3333-3333-333333333333",
	"cliente": {"nombre": "Ana", "cedula": "0102030405", "telefono": "0991234567"}
}`

func newOrderRouter(t *testing.T, role entities.Role) (http.Handler, *mocks.MockOrderService, *mocks.MockReceiptGenerator) {
	svc := mocks.NewMockOrderService(t)
	receipts := mocks.NewMockReceiptGenerator(t)
	h := handler.NewOrderHandler(discardLogger(), svc, receipts)
	return newRouter(h, role), svc, receipts
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: createOrderBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(in entities.NewOrder) bool {
					return in.BagID == "A1" && in.Client.NationalID == "0102030405" &&
						in.Deposit.StringFixed(2) == "10.00" && in.Image == nil
				})).Return(entities.Order{ID: orderID, BagID: "A1", Status: entities.StatusPendiente}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"bolsaId":"A1"`,
		},
		{
			name:       "missing fields",
			body:       `{"tipo": "BORDADO"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"abono":"required"`,
		},
		{
			name:       "negative amount",
			body:       `{"tipo":"OTROS","descripcion":"x","cantidadPrendas":1,"abono":"-1","total":"5","fechaEntrega":"2026-11-01T00:00:00Z","bolsaId":"A1","trabajadorId":"33333333-3333-3333-3333-333333333333","cliente":{"nombre":"a","cedula":"1","telefono":"2"}}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"abono":"gte"`,
		},
		{
			name:       "sub-cent total",
			body:       `{"tipo":"OTROS","descripcion":"x","cantidadPrendas":1,"abono":"1","total":"5.001","fechaEntrega":"2026-11-01T00:00:00Z","bolsaId":"A1","trabajadorId":"33333333-3333-3333-3333-333333333333","cliente":{"nombre":"a","cedula":"1","telefono":"2"}}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"total":"decimals"`,
		},
		{
			name:       "unknown type",
			body:       `{"tipo":"TEJIDO"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"tipo":"oneof"`,
		},
		{
			name: "bag occupied",
			body: createOrderBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrBagOccupied).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"bag is already occupied"`,
		},
		{
			name: "worker not found",
			body: createOrderBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, errors.Join(errors.New("failed to get worker"), entities.ErrWorkerNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"worker not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc, _ := newOrderRouter(t, entities.RoleAdmin)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			status, body := serve(t, r, http.MethodPost, "/orders", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestOrderHandler_CreateOrder_Multipart(t *testing.T) {
	r, svc, _ := newOrderRouter(t, entities.RoleAdmin)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("data", createOrderBody))
	part, err := mw.CreateFormFile("imagen", "design.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	svc.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(in entities.NewOrder) bool {
		return in.Image != nil && in.Image.Filename == "design.png" && in.Image.Size == 4
	})).Return(entities.Order{ID: orderID, BagID: "A1", ImagePath: "uploads/x.png"}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/orders", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"imagenUrl":"uploads/x.png"`)
}

func TestOrderHandler_GetOrder(t *testing.T) {
	testCases := []struct {
		name         string
		id           string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			id:   orderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, orderID).
					Return(entities.Order{ID: orderID, Status: entities.StatusEnProceso}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"estado":"EN_PROCESO"`,
		},
		{
			name:       "invalid id",
			id:         "not-a-uuid",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"id":"uuid"`,
		},
		{
			name: "not found",
			id:   orderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, orderID).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name: "internal error",
			id:   orderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, orderID).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc, _ := newOrderRouter(t, entities.RoleAdmin)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			status, body := serve(t, r, http.MethodGet, "/orders/"+tc.id, "")

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, orderID, resp["id"])
				assert.Nil(t, resp["imagenUrl"])
			}
		})
	}
}

func TestOrderHandler_ChangeStatus(t *testing.T) {
	testCases := []struct {
		name         string
		role         entities.Role
		slug         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "start production",
			role: entities.RoleAdmin,
			slug: "en-produccion",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ChangeStatus(mock.Anything, orderID, entities.StatusEnProduccion).
					Return(entities.Order{ID: orderID, Status: entities.StatusEnProduccion}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"estado":"EN_PRODUCCION"`,
		},
		{
			name:       "ready requires super admin",
			role:       entities.RoleAdmin,
			slug:       "listo-entrega",
			wantStatus: http.StatusForbidden,
			wantBody:   `"insufficient role"`,
		},
		{
			name: "ready as super admin",
			role: entities.RoleSuperAdmin,
			slug: "listo-entrega",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ChangeStatus(mock.Anything, orderID, entities.StatusListoParaEntrega).
					Return(entities.Order{ID: orderID, Status: entities.StatusListoParaEntrega}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"estado":"LISTO_PARA_ENTREGA"`,
		},
		{
			name: "illegal transition",
			role: entities.RoleAdmin,
			slug: "entregado",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ChangeStatus(mock.Anything, orderID, entities.StatusEntregado).
					Return(entities.Order{}, entities.ErrInvalidTransition).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"FORBIDDEN"`,
		},
		{
			name:       "unknown target",
			role:       entities.RoleAdmin,
			slug:       "pendiente",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc, _ := newOrderRouter(t, tc.role)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			status, body := serve(t, r, http.MethodPatch, "/orders/"+orderID+"/status/"+tc.slug, "")

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestOrderHandler_CancelBatch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, svc, _ := newOrderRouter(t, entities.RoleAdmin)
		svc.EXPECT().CancelBatch(mock.Anything, []string{"A1", "B2"}).
			Return([]entities.Order{
				{ID: "o-1", BagID: "A1", Status: entities.StatusCancelado},
				{ID: "o-2", BagID: "B2", Status: entities.StatusCancelado},
			}, nil).Once()

		status, body := serve(t, r, http.MethodPatch, "/orders/cancel-batch", `{"bagIds":["A1","B2"]}`)

		assert.Equal(t, http.StatusOK, status)
		var orders []map[string]any
		require.NoError(t, json.Unmarshal([]byte(body), &orders))
		assert.Len(t, orders, 2)
	})

	t.Run("bag without active order", func(t *testing.T) {
		r, svc, _ := newOrderRouter(t, entities.RoleAdmin)
		svc.EXPECT().CancelBatch(mock.Anything, []string{"A1", "Z9"}).
			Return(nil, entities.NewBatchError(entities.ErrNotFound, "no active order for bags", []string{"Z9"})).Once()

		status, body := serve(t, r, http.MethodPatch, "/orders/cancel-batch", `{"bagIds":["A1","Z9"]}`)

		assert.Equal(t, http.StatusNotFound, status)
		assert.Contains(t, body, `"details":{"ids":["Z9"]}`)
	})

	t.Run("empty list", func(t *testing.T) {
		r, _, _ := newOrderRouter(t, entities.RoleAdmin)

		status, body := serve(t, r, http.MethodPatch, "/orders/cancel-batch", `{"bagIds":[]}`)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, `"bagIds":"min"`)
	})
}

func TestOrderHandler_DeleteOrders(t *testing.T) {
	body := `{"orderIds":["` + orderID + `"]}`

	t.Run("admin is refused", func(t *testing.T) {
		r, _, _ := newOrderRouter(t, entities.RoleAdmin)

		status, _ := serve(t, r, http.MethodDelete, "/orders/delete-multiple", body)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("order in flow", func(t *testing.T) {
		r, svc, _ := newOrderRouter(t, entities.RoleSuperAdmin)
		svc.EXPECT().DeleteOrders(mock.Anything, []string{orderID}).
			Return(entities.NewBatchError(entities.ErrForbidden, "only delivered or cancelled orders can be deleted", []string{orderID})).Once()

		status, resp := serve(t, r, http.MethodDelete, "/orders/delete-multiple", body)
		assert.Equal(t, http.StatusForbidden, status)
		assert.Contains(t, resp, orderID)
	})

	t.Run("success", func(t *testing.T) {
		r, svc, _ := newOrderRouter(t, entities.RoleSuperAdmin)
		svc.EXPECT().DeleteOrders(mock.Anything, []string{orderID}).Return(nil).Once()

		status, _ := serve(t, r, http.MethodDelete, "/orders/delete-multiple", body)
		assert.Equal(t, http.StatusNoContent, status)
	})
}

func TestOrderHandler_ResetAll(t *testing.T) {
	r, svc, _ := newOrderRouter(t, entities.RoleSuperAdmin)
	svc.EXPECT().ResetAll(mock.Anything).Return(nil).Once()

	status, _ := serve(t, r, http.MethodDelete, "/orders/reset", "")
	assert.Equal(t, http.StatusNoContent, status)
}

func TestOrderHandler_UpdateOrder_RemoveImage(t *testing.T) {
	r, svc, _ := newOrderRouter(t, entities.RoleAdmin)
	svc.EXPECT().UpdateOrder(mock.Anything, orderID,
		mock.MatchedBy(func(c entities.OrderChanges) bool {
			return c.Description != nil && *c.Description == "nuevo"
		}),
		entities.ImageUpdate{Remove: true},
	).Return(entities.Order{ID: orderID, Description: "nuevo"}, nil).Once()

	status, body := serve(t, r, http.MethodPatch, "/orders/"+orderID, `{"descripcion":"nuevo","imagenUrl":null}`)

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"descripcion":"nuevo"`)
}

func TestOrderHandler_UpdateOrder_NotEditable(t *testing.T) {
	r, svc, _ := newOrderRouter(t, entities.RoleAdmin)
	svc.EXPECT().UpdateOrder(mock.Anything, orderID, mock.Anything, entities.ImageUpdate{}).
		Return(entities.Order{}, entities.ErrOrderNotEditable).Once()

	status, body := serve(t, r, http.MethodPatch, "/orders/"+orderID, `{"descripcion":"nuevo"}`)

	assert.Equal(t, http.StatusForbidden, status)
	assert.Contains(t, body, "PENDIENTE")
}

func TestOrderHandler_FindOrders(t *testing.T) {
	t.Run("filters", func(t *testing.T) {
		r, svc, _ := newOrderRouter(t, entities.RoleAdmin)
		svc.EXPECT().FindOrders(mock.Anything, entities.OrderFilter{
			Search:    "ana",
			Statuses:  []entities.OrderStatus{entities.StatusPendiente, entities.StatusEnProceso},
			Page:      2,
			PageSize:  5,
			SortField: entities.SortByDueDate,
			SortDesc:  false,
		}).Return(entities.NewPage([]entities.Order{{ID: orderID}}, 6, 2, 5), nil).Once()

		status, body := serve(t, r, http.MethodGet,
			"/orders?search=ana&estado=pendiente,EN_PROCESO&page=2&limit=5&orderBy=fechaEntrega&orderDirection=asc", "")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"lastPage":2`)
		assert.Contains(t, body, `"total":6`)
	})

	t.Run("invalid params", func(t *testing.T) {
		r, _, _ := newOrderRouter(t, entities.RoleAdmin)

		status, body := serve(t, r, http.MethodGet, "/orders?estado=PERDIDO&limit=500&orderDirection=up", "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, `"estado":"oneof"`)
		assert.Contains(t, body, `"limit":"max"`)
		assert.Contains(t, body, `"orderDirection":"oneof"`)
	})

	t.Run("page beyond max", func(t *testing.T) {
		r, _, _ := newOrderRouter(t, entities.RoleAdmin)

		status, body := serve(t, r, http.MethodGet, "/orders?page=9223372036854775807", "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, `"page":"max"`)
	})
}

func TestOrderHandler_Dashboard(t *testing.T) {
	r, svc, _ := newOrderRouter(t, entities.RoleAdmin)
	svc.EXPECT().Dashboard(mock.Anything).
		Return(entities.NewStatusCounts(map[entities.OrderStatus]int{entities.StatusPendiente: 4}), nil).Once()
	svc.EXPECT().InFlowCount(mock.Anything).Return(4, nil).Once()

	status, body := serve(t, r, http.MethodGet, "/dashboard", "")
	require.Equal(t, http.StatusOK, status)

	var counts map[string]int
	require.NoError(t, json.Unmarshal([]byte(body), &counts))
	assert.Len(t, counts, len(entities.OrderStatuses))
	assert.Equal(t, 4, counts["PENDIENTE"])
	assert.Equal(t, 0, counts["CANCELADO"])

	status, body = serve(t, r, http.MethodGet, "/dashboard/in-flow-count", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"count":4}`, body)
}

func TestOrderHandler_GetReceipt(t *testing.T) {
	r, svc, receipts := newOrderRouter(t, entities.RoleAdmin)
	order := entities.Order{ID: orderID, BagID: "A1"}
	svc.EXPECT().GetOrder(mock.Anything, orderID).Return(order, nil).Once()
	receipts.EXPECT().Generate(order).Return([]byte("%PDF-1.3"), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/orders/"+orderID+"/receipt", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "pedido-A1.pdf")
	assert.Equal(t, "%PDF-1.3", rr.Body.String())
}
