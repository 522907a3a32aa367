package Server

import (
	"Encore/Requests"
	"Encore/Utils"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (

	Event_Initial = "INITIAL_STATE"
	Event_Outcome = "REQUEST_OUTCOME"

)

var Upgrader = websocket.Upgrader{

	CheckOrigin: func(r *http.Request) bool {

		return true

	},

}

// Subscriber is one websocket client. Only its writer goroutine touches the connection for writes.
type Subscriber struct {

	Socket *websocket.Conn
	Filter string // guild id, "" for every guild

	Send chan []byte

}

// Hub fans request outcomes out to websocket subscribers. Broadcast never waits on a client: a
// subscriber whose buffer is full, or whose write misses WriteTimeout, is dropped.
type Hub struct {

	Subscribers map[*Subscriber]struct{}
	SocketMutex sync.Mutex

	SendBuffer   int
	WriteTimeout time.Duration

}

func NewHub() *Hub {

	return &Hub{

		Subscribers:  make(map[*Subscriber]struct{}),
		SendBuffer:   64,
		WriteTimeout: 10 * time.Second,

	}

}

func (H *Hub) Count() int {

	H.SocketMutex.Lock()
	defer H.SocketMutex.Unlock()

	return len(H.Subscribers)

}

// Broadcast queues the outcome for every matching subscriber.
func (H *Hub) Broadcast(Outcome Requests.Outcome) {

	Payload, ErrorMarshaling := json.Marshal(gin.H{"Event": Event_Outcome, "Data": Outcome})

	if ErrorMarshaling != nil {

		Utils.Logger.Error("Failed to encode outcome", zap.Error(ErrorMarshaling))
		return

	}

	H.SocketMutex.Lock()
	defer H.SocketMutex.Unlock()

	for Client := range H.Subscribers {

		if Client.Filter != "" && Client.Filter != Outcome.GuildID {

			continue

		}

		select {

			case Client.Send <- Payload:

			default:

				Utils.Logger.Warn("Dropping slow websocket subscriber", zap.String("guild", Client.Filter))
				H.remove(Client)

		}

	}

}

// remove unregisters Client and closes its queue, which stops the writer. Caller holds SocketMutex.
func (H *Hub) remove(Client *Subscriber) {

	if _, Registered := H.Subscribers[Client]; !Registered {

		return

	}

	delete(H.Subscribers, Client)
	close(Client.Send)

}

func (H *Hub) unregister(Client *Subscriber) {

	H.SocketMutex.Lock()
	H.remove(Client)
	H.SocketMutex.Unlock()

}

func (H *Hub) write(Client *Subscriber) {

	defer Client.Socket.Close()

	for Payload := range Client.Send {

		_ = Client.Socket.SetWriteDeadline(time.Now().Add(H.WriteTimeout))

		if ErrorWriting := Client.Socket.WriteMessage(websocket.TextMessage, Payload); ErrorWriting != nil {

			H.unregister(Client)
			return

		}

	}

	_ = Client.Socket.SetWriteDeadline(time.Now().Add(time.Second))
	_ = Client.Socket.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))

}

func (H *Hub) HandleSocket(Context *gin.Context) {

	GuildIDStr := Context.Query("guild_id")

	if GuildIDStr != "" {

		if _, ErrorParsing := snowflake.Parse(GuildIDStr); ErrorParsing != nil {

			Context.JSON(http.StatusBadRequest, gin.H{"error": "invalid guild_id"})
			return

		}

	}

	Socket, ErrorUpgrading := Upgrader.Upgrade(Context.Writer, Context.Request, nil)

	if ErrorUpgrading != nil {

		Utils.Logger.Error("Failed to upgrade websocket", zap.Error(ErrorUpgrading))
		return

	}

	Client := &Subscriber{Socket: Socket, Filter: GuildIDStr, Send: make(chan []byte, H.SendBuffer+1)}

	// Initial state goes first in the queue, so it precedes any outcome

	Initial, _ := json.Marshal(gin.H{"Event": Event_Initial, "Data": gin.H{"guild_id": GuildIDStr}})
	Client.Send <- Initial

	H.SocketMutex.Lock()
	H.Subscribers[Client] = struct{}{}
	H.SocketMutex.Unlock()

	go H.write(Client)

	// Keep connection alive and listen for close

	for {

		if _, _, ErrorReading := Socket.ReadMessage(); ErrorReading != nil {

			break

		}

	}

	H.unregister(Client)

}
