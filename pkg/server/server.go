package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/louhiala/sanakko/internal/logger"
	"github.com/louhiala/sanakko/pkg/morph"
	"github.com/louhiala/sanakko/pkg/sanakko"
)

// maxWordLength bounds the word field of a request. Longer input is
// rejected before it reaches the speller.
const maxWordLength = 255

// Server serves spell, suggest and analyze requests over a msgpack
// stream. Requests are processed one at a time on the calling goroutine;
// the handle's option setters must not run while Serve does.
type Server struct {
	handle *sanakko.Handle
	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
	log    *log.Logger
}

// NewServer builds a server over stdin and stdout.
func NewServer(handle *sanakko.Handle) *Server {
	return NewServerWithIO(handle, os.Stdin, os.Stdout)
}

// NewServerWithIO builds a server over the given stream pair. Tests use
// it with in-memory buffers.
func NewServerWithIO(handle *sanakko.Handle, r io.Reader, w io.Writer) *Server {
	return &Server{
		handle: handle,
		dec:    msgpack.NewDecoder(r),
		enc:    msgpack.NewEncoder(w),
		log:    logger.New("ipc"),
	}
}

// Serve emits the ready handshake and processes requests until EOF or a
// quit command.
func (s *Server) Serve() error {
	s.log.Debug("Server starting")
	if err := s.enc.Encode(readyMessage{Status: "ready"}); err != nil {
		return err
	}

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Input closed, shutting down")
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return err
		}
		if req.Command == "quit" {
			s.log.Debug("Quit requested, shutting down")
			return nil
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	if req.Command != "spell" && req.Command != "suggest" && req.Command != "analyze" {
		s.sendError(req.ID, fmt.Sprintf("unknown command: %s", req.Command), 400)
		return
	}
	if req.Word == "" {
		s.sendError(req.ID, "missing 'w' field", 400)
		return
	}
	if len([]rune(req.Word)) > maxWordLength {
		s.sendError(req.ID, "word exceeds maximum length", 400)
		return
	}

	start := time.Now()
	resp := Response{ID: req.ID, Ok: s.handle.Spell(req.Word)}

	switch req.Command {
	case "suggest":
		if !resp.Ok {
			resp.Suggestions = s.handle.Suggest(req.Word)
			if req.Limit > 0 && len(resp.Suggestions) > req.Limit {
				resp.Suggestions = resp.Suggestions[:req.Limit]
			}
		}
	case "analyze":
		resp.Analyses = analysisMaps(s.handle.Analyze(req.Word))
	}
	resp.TimeTaken = time.Since(start).Milliseconds()

	s.send(resp)
}

func analysisMaps(analyses []*morph.Analysis) []map[string]string {
	out := make([]map[string]string, 0, len(analyses))
	for _, a := range analyses {
		m := make(map[string]string, a.Len())
		for _, key := range a.Keys() {
			m[key] = a.Value(key)
		}
		out = append(out, m)
	}
	return out
}

func (s *Server) send(v any) {
	if err := s.enc.Encode(v); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.log.Debugf("Request %s rejected: %s", id, message)
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
