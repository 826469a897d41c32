package ws

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomasbagu/POSapp/configs"
	"github.com/tomasbagu/POSapp/entity"
	"github.com/tomasbagu/POSapp/repository"
	"github.com/tomasbagu/POSapp/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newHub(t *testing.T) *OrderHub {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))

	orders := services.NewOrderService(repository.NewOrderRepository(db), services.NewCartService(), services.NewOrderBroker())
	return NewOrderHub(orders)
}

// holdConn hands back a live client-side connection against a server that
// just drains it.
func holdConn(t *testing.T) *websocket.Conn {
	t.Helper()
	up := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestWatcherKeyPrunedOnLastDisconnect(t *testing.T) {
	h := newHub(t)
	sub := subscription{conn: holdConn(t), orderID: 42}

	h.add(sub)
	require.Contains(t, h.watchers, uint(42))

	h.remove(sub)
	assert.NotContains(t, h.watchers, uint(42), "empty watcher sets must not accumulate")
}

func TestWatcherKeyKeptWhileOthersRemain(t *testing.T) {
	h := newHub(t)
	first := subscription{conn: holdConn(t), orderID: 42}
	second := subscription{conn: holdConn(t), orderID: 42}

	h.add(first)
	h.add(second)
	h.remove(first)

	require.Contains(t, h.watchers, uint(42))
	assert.Len(t, h.watchers[42], 1)
}

func TestBoardPayloadDerivedFields(t *testing.T) {
	now := time.Now()
	placed := now.Add(-45 * time.Second)

	fresh := entity.Order{
		Model:      gorm.Model{ID: 1, CreatedAt: placed},
		Status:     entity.StatusOrdered,
		Timestamps: entity.StatusTimes{entity.StatusOrdered: placed.UnixMilli()},
	}
	cooking := fresh
	cooking.ID = 2
	cooking.Timestamps = entity.StatusTimes{
		entity.StatusOrdered: placed.UnixMilli(),
		entity.StatusCooking: now.UnixMilli(),
	}
	cooking.Status = entity.StatusCooking

	entries := boardPayload([]entity.Order{fresh, cooking}, now)
	require.Len(t, entries, 2)

	assert.True(t, entries[0].IsNew)
	assert.Equal(t, "Hace 45 seg", entries[0].Elapsed)

	assert.False(t, entries[1].IsNew, "a Cooking timestamp clears the new flag")
	assert.Equal(t, "Hace 45 seg", entries[1].Elapsed)
}
