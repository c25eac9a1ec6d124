package preview

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ReloadPath is the websocket endpoint browsers connect to.
const ReloadPath = "/_xhtml/reload"

const writeTimeout = 5 * time.Second

// ReloadMessageType tells the browser what to do.
type ReloadMessageType string

const (
	ReloadTypeFull  ReloadMessageType = "reload"
	ReloadTypeError ReloadMessageType = "error"
	ReloadTypeClear ReloadMessageType = "clear"
)

// ReloadMessage is the JSON frame sent to browsers.
type ReloadMessage struct {
	Type  ReloadMessageType `json:"type"`
	Error string            `json:"error,omitempty"`
	File  string            `json:"file,omitempty"`
}

// peer is one connected browser. Writes are serialized per connection.
type peer struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (p *peer) send(frame []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return p.conn.WriteMessage(websocket.TextMessage, frame)
}

// ReloadServer tracks preview browsers and pushes reload and error frames
// to them.
type ReloadServer struct {
	mu       sync.Mutex
	peers    map[*peer]struct{}
	upgrader websocket.Upgrader
}

// NewReloadServer creates an empty hub.
func NewReloadServer() *ReloadServer {
	return &ReloadServer{
		peers: make(map[*peer]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  512,
			WriteBufferSize: 1024,
			// The preview server only listens for the local author.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// HandleWebSocket upgrades the request and holds the connection until the
// browser goes away. Incoming frames are discarded.
func (r *ReloadServer) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}
	p := &peer{conn: conn}
	r.add(p)
	defer r.drop(p)

	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func (r *ReloadServer) add(p *peer) {
	r.mu.Lock()
	r.peers[p] = struct{}{}
	r.mu.Unlock()
}

func (r *ReloadServer) drop(p *peer) {
	r.mu.Lock()
	_, ok := r.peers[p]
	delete(r.peers, p)
	r.mu.Unlock()
	if ok {
		p.conn.Close()
	}
}

// NotifyReload asks every browser to reload after file changed.
func (r *ReloadServer) NotifyReload(file string) {
	r.broadcast(ReloadMessage{Type: ReloadTypeFull, File: file})
}

// NotifyError shows msg in every browser's error overlay.
func (r *ReloadServer) NotifyError(file, msg string) {
	r.broadcast(ReloadMessage{Type: ReloadTypeError, Error: msg, File: file})
}

// ClearError removes the error overlay.
func (r *ReloadServer) ClearError() {
	r.broadcast(ReloadMessage{Type: ReloadTypeClear})
}

func (r *ReloadServer) broadcast(msg ReloadMessage) {
	frame, err := json.Marshal(msg)
	if err != nil {
		return
	}
	for _, p := range r.snapshot() {
		if err := p.send(frame); err != nil {
			r.drop(p)
		}
	}
}

func (r *ReloadServer) snapshot() []*peer {
	r.mu.Lock()
	defer r.mu.Unlock()
	peers := make([]*peer, 0, len(r.peers))
	for p := range r.peers {
		peers = append(peers, p)
	}
	return peers
}

// ClientCount returns the number of connected browsers.
func (r *ReloadServer) ClientCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.peers)
}

// Close disconnects every browser.
func (r *ReloadServer) Close() {
	for _, p := range r.snapshot() {
		r.drop(p)
	}
}

// ReloadScript is injected before </body> of previewed documents. The body
// is kept in a CDATA section and avoids markup characters so that the page
// stays well-formed.
const ReloadScript = `<script type="text/javascript">
//<![CDATA[
(function() {
    var delay = 1000;

    function overlay(text) {
        clear();
        var pre = document.createElement('pre');
        pre.id = 'xhtml-error-overlay';
        pre.style.cssText = 'position:fixed;top:0;left:0;right:0;bottom:0;margin:0;padding:20px;background:rgba(0,0,0,0.9);color:#ff5555;font:14px monospace;white-space:pre-wrap;overflow:auto;z-index:999999;';
        pre.textContent = text;
        document.body.appendChild(pre);
    }

    function clear() {
        var el = document.getElementById('xhtml-error-overlay');
        if (el) {
            el.parentNode.removeChild(el);
        }
    }

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(protocol + '//' + location.host + '/_xhtml/reload');

        ws.onopen = function() {
            delay = 1000;
        };

        ws.onmessage = function(e) {
            var msg = JSON.parse(e.data);
            if (msg.type === 'reload') {
                location.reload();
            } else if (msg.type === 'error') {
                overlay(msg.error);
            } else if (msg.type === 'clear') {
                clear();
            }
        };

        ws.onclose = function() {
            setTimeout(function() {
                delay = Math.min(delay * 2, 30000);
                connect();
            }, delay);
        };
    }

    connect();
})();
//]]>
</script>`
