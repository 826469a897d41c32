package ws

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/tomasbagu/POSapp/entity"
	"github.com/tomasbagu/POSapp/services"
	"github.com/tomasbagu/POSapp/utils"
)

// OrderHub pushes live order snapshots to connected screens: the kitchen
// and cashier boards get the whole collection, a diner gets the one order
// they are tracking. Snapshots arrive from the order broker; a one second
// ticker re-renders the board with fresh elapsed-time text without touching
// the store.
type OrderHub struct {
	orders *services.OrderService

	register   chan subscription
	unregister chan subscription
	updates    chan []entity.Order

	board    map[*websocket.Conn]bool
	watchers map[uint]map[*websocket.Conn]bool

	lastBoard []entity.Order
}

type subscription struct {
	conn    *websocket.Conn
	orderID uint // 0 means the full board
}

// boardEntry decorates an order with the two derived display properties the
// kitchen board needs.
type boardEntry struct {
	entity.Order
	IsNew   bool   `json:"isNew"`
	Elapsed string `json:"elapsed"`
}

func NewOrderHub(orders *services.OrderService) *OrderHub {
	h := &OrderHub{
		orders:     orders,
		register:   make(chan subscription),
		unregister: make(chan subscription),
		updates:    make(chan []entity.Order, 16),
		board:      make(map[*websocket.Conn]bool),
		watchers:   make(map[uint]map[*websocket.Conn]bool),
	}

	// A burst of writes may coalesce into fewer pushes; the ticker and the
	// next mutation catch the board up, so dropping here is safe.
	orders.SubscribeAll(func(all []entity.Order) {
		select {
		case h.updates <- all:
		default:
		}
	})
	return h
}

func (h *OrderHub) Run() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case sub := <-h.register:
			h.add(sub)

		case sub := <-h.unregister:
			h.remove(sub)

		case all := <-h.updates:
			h.lastBoard = all
			h.broadcastBoard(time.Now())
			h.broadcastWatched(all)

		case now := <-ticker.C:
			h.broadcastBoard(now)
		}
	}
}

func (h *OrderHub) add(sub subscription) {
	if sub.orderID == 0 {
		h.board[sub.conn] = true
		if h.lastBoard == nil {
			if all, err := h.orders.ListAll(); err == nil {
				h.lastBoard = all
			}
		}
		h.send(sub.conn, boardPayload(h.lastBoard, time.Now()))
		return
	}

	if h.watchers[sub.orderID] == nil {
		h.watchers[sub.orderID] = make(map[*websocket.Conn]bool)
	}
	h.watchers[sub.orderID][sub.conn] = true
	if o, err := h.orders.Get(sub.orderID); err == nil {
		h.send(sub.conn, o)
	}
}

func (h *OrderHub) remove(sub subscription) {
	if sub.orderID == 0 {
		if h.board[sub.conn] {
			delete(h.board, sub.conn)
			sub.conn.Close()
		}
		return
	}
	if h.watchers[sub.orderID][sub.conn] {
		delete(h.watchers[sub.orderID], sub.conn)
		if len(h.watchers[sub.orderID]) == 0 {
			delete(h.watchers, sub.orderID)
		}
		sub.conn.Close()
	}
}

func (h *OrderHub) broadcastBoard(now time.Time) {
	if len(h.board) == 0 {
		return
	}
	payload := boardPayload(h.lastBoard, now)
	for conn := range h.board {
		if err := conn.WriteJSON(payload); err != nil {
			log.Printf("ws write error: %v", err)
			conn.Close()
			delete(h.board, conn)
		}
	}
}

func (h *OrderHub) broadcastWatched(all []entity.Order) {
	for orderID, conns := range h.watchers {
		if len(conns) == 0 {
			continue
		}
		for _, o := range all {
			if o.ID != orderID {
				continue
			}
			for conn := range conns {
				if err := conn.WriteJSON(o); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(conns, conn)
				}
			}
			if len(conns) == 0 {
				delete(h.watchers, orderID)
			}
			break
		}
	}
}

func (h *OrderHub) send(conn *websocket.Conn, v any) {
	if err := conn.WriteJSON(v); err != nil {
		log.Printf("ws write error: %v", err)
	}
}

func boardPayload(orders []entity.Order, now time.Time) []boardEntry {
	out := make([]boardEntry, 0, len(orders))
	for _, o := range orders {
		out = append(out, boardEntry{
			Order:   o,
			IsNew:   o.IsNew(),
			Elapsed: utils.FormatElapsed(o.CreatedAt, now),
		})
	}
	return out
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS /ws/orders — full board feed for kitchen and cashier.
func (h *OrderHub) HandleBoard(c *gin.Context) {
	role := utils.CurrentRole(c)
	if role != entity.RoleChef && role != entity.RoleCashier {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{conn: conn}
	h.register <- sub
	go h.listen(sub)
}

// WS /ws/orders/:id — single-order status feed for the diner's screen.
func (h *OrderHub) HandleOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.orders.Get(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	if utils.CurrentRole(c) == entity.RoleClient && order.UserID != utils.CurrentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your order"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{conn: conn, orderID: uint(id)}
	h.register <- sub
	go h.listen(sub)
}

// listen drains the connection until the peer goes away, then tears the
// subscription down so the listener does not leak.
func (h *OrderHub) listen(sub subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			return
		}
	}
}
