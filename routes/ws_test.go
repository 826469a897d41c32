package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomasbagu/POSapp/entity"
)

type boardFrame struct {
	entity.Order
	IsNew   bool   `json:"isNew"`
	Elapsed string `json:"elapsed"`
}

func (e *testEnv) dialWS(t *testing.T, srv *httptest.Server, path, token string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + path + "?token=" + token
	return websocket.DefaultDialer.Dial(url, nil)
}

func (e *testEnv) submitOrder(t *testing.T, client string, table string) uint {
	t.Helper()
	d := e.seedDish(t, "Tacos", 9.5)
	w := e.do(t, http.MethodPost, "/cart/items", client, gin.H{"dishId": d.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = e.do(t, http.MethodPost, "/orders", client, gin.H{"tableNumber": table})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data entity.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created.Data.ID
}

func TestBoardFeedStreamsSnapshots(t *testing.T) {
	env := newTestEnv(t)
	client := env.token(t, 7, entity.RoleClient)
	chef := env.token(t, 8, entity.RoleChef)
	id := env.submitOrder(t, client, "3")

	srv := httptest.NewServer(env.router)
	defer srv.Close()

	conn, _, err := env.dialWS(t, srv, "/ws/orders", chef)
	require.NoError(t, err)
	defer conn.Close()

	var board []boardFrame
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	require.NoError(t, conn.ReadJSON(&board))
	require.Len(t, board, 1)
	assert.Equal(t, id, board[0].ID)
	assert.Equal(t, entity.StatusOrdered, board[0].Status)
	assert.True(t, board[0].IsNew, "an order before Cooking is new")
	assert.True(t, strings.HasPrefix(board[0].Elapsed, "Hace "), "elapsed %q", board[0].Elapsed)

	w := env.do(t, http.MethodPatch, fmt.Sprintf("/orders/%d/status", id), chef, gin.H{"status": entity.StatusCooking})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The ticker may slip an older frame in between; read until the
	// transition shows up.
	deadline := time.Now().Add(3 * time.Second)
	for {
		require.NoError(t, conn.SetReadDeadline(deadline))
		require.NoError(t, conn.ReadJSON(&board), "board update never arrived")
		require.Len(t, board, 1)
		if board[0].Status == entity.StatusCooking {
			assert.False(t, board[0].IsNew, "entering Cooking clears the new flag")
			return
		}
	}
}

func TestBoardFeedRejectsDiners(t *testing.T) {
	env := newTestEnv(t)
	srv := httptest.NewServer(env.router)
	defer srv.Close()

	_, resp, err := env.dialWS(t, srv, "/ws/orders", env.token(t, 7, entity.RoleClient))
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	_, resp, err = env.dialWS(t, srv, "/ws/orders", "")
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestOrderFeedFollowsOneOrder(t *testing.T) {
	env := newTestEnv(t)
	client := env.token(t, 7, entity.RoleClient)
	chef := env.token(t, 8, entity.RoleChef)
	id := env.submitOrder(t, client, "5")

	srv := httptest.NewServer(env.router)
	defer srv.Close()

	conn, _, err := env.dialWS(t, srv, fmt.Sprintf("/ws/orders/%d", id), client)
	require.NoError(t, err)
	defer conn.Close()

	var got entity.Order
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, id, got.ID)
	assert.Equal(t, entity.StatusOrdered, got.Status)

	w := env.do(t, http.MethodPatch, fmt.Sprintf("/orders/%d/status", id), chef, gin.H{"status": entity.StatusReadyForPickup})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, entity.StatusReadyForPickup, got.Status)
	assert.Contains(t, got.Timestamps, entity.StatusReadyForPickup)
}

func TestOrderFeedGuardsForeignOrders(t *testing.T) {
	env := newTestEnv(t)
	owner := env.token(t, 7, entity.RoleClient)
	other := env.token(t, 8, entity.RoleClient)
	id := env.submitOrder(t, owner, "2")

	srv := httptest.NewServer(env.router)
	defer srv.Close()

	_, resp, err := env.dialWS(t, srv, fmt.Sprintf("/ws/orders/%d", id), other)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	_, resp, err = env.dialWS(t, srv, "/ws/orders/999", owner)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
