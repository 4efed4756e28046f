/*
Package server implements msgpack IPC for the spell check services.

The protocol is a synchronous request response model over stdin/stdout.
Each request carries an ID, a command and a word; the matching response
carries the same ID plus the result and timing info.

A spell request and its response:

	{"id": "req_001", "c": "spell", "w": "koirra"}
	{"id": "req_001", "ok": false, "t": 2}

A suggest request with a result limit:

	{"id": "req_002", "c": "suggest", "w": "koirra", "l": 3}
	{"id": "req_002", "ok": false, "s": ["koira", "koirra-"], "t": 14}

An analyze response returns one attribute map per reading:

	{"id": "req_003", "c": "analyze", "w": "koira"}
	{"id": "req_003", "ok": true, "a": [{"CLASS": "nimisana", ...}], "t": 3}

Failures produce an error message instead of a response:

	{"id": "req_004", "e": "unknown command: complete", "code": 400}

On start the server emits {"status": "ready"} so clients know when to
begin sending. The "quit" command and EOF on stdin both shut the server
down cleanly. Field names are kept short since every editor keystroke can
turn into a request.
*/
package server

// Request is one incoming command frame.
type Request struct {
	ID      string `msgpack:"id"`
	Command string `msgpack:"c"`
	Word    string `msgpack:"w,omitempty"`
	Limit   int    `msgpack:"l,omitempty"`
}

// Response answers a spell, suggest or analyze request.
type Response struct {
	ID string `msgpack:"id"`
	// Ok reports whether the word is correctly spelled. For suggest it
	// refers to the input word, not the suggestions.
	Ok          bool                `msgpack:"ok"`
	Suggestions []string            `msgpack:"s,omitempty"`
	Analyses    []map[string]string `msgpack:"a,omitempty"`
	// TimeTaken is the request processing time in milliseconds.
	TimeTaken int64 `msgpack:"t"`
}

// ErrorResponse reports a request that could not be served.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"code"`
}

// readyMessage is the handshake emitted once at startup.
type readyMessage struct {
	Status string `msgpack:"status"`
}
