package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	Hub   *services.RealtimeHub
	Goals *services.GoalService
}

func NewRealtimeController(hub *services.RealtimeHub, goals *services.GoalService) *RealtimeController {
	return &RealtimeController{Hub: hub, Goals: goals}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// DashboardWS upgrades to a websocket and streams dashboard refreshes.
// The current dashboard is sent immediately so the page renders without
// a separate fetch.
func (rc *RealtimeController) DashboardWS(c *gin.Context) {
	uid := c.GetUint("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{UserID: uid, Conn: conn}
	rc.Hub.Register(cl)

	go pushDashboard(rc.Goals, rc.Hub, uid)

	// ping to keep connections alive through proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := rc.Hub.Ping(cl); err != nil {
				rc.Hub.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error, then unregister
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.Hub.Unregister(cl)
			return
		}
	}
}
