package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/spellfix/internal/logger"
	"github.com/bastiangx/spellfix/pkg/config"
	"github.com/bastiangx/spellfix/pkg/corrector"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Dictionary is the lookup side the server needs.
type Dictionary interface {
	IsWord(word string) bool
	NumWords() int
}

// Server handles msgpack IPC for spelling corrections.
type Server struct {
	corr     corrector.Corrector
	dict     Dictionary
	name     string
	cfg      config.ServerConfig
	dec      *msgpack.Decoder
	writer   *bufio.Writer
	enc      *msgpack.Encoder
	log      *log.Logger
	requests int
}

// NewServer creates a server reading requests from r and writing responses
// to w. name labels the corrector in stats replies. Non-positive limits in cfg
// fall back to the defaults.
func NewServer(c corrector.Corrector, d Dictionary, name string, cfg config.ServerConfig, r io.Reader, w io.Writer) (*Server, error) {
	if c == nil || d == nil {
		return nil, fmt.Errorf("server needs a corrector and a dictionary: %w", corrector.ErrInvalidArgument)
	}
	if r == nil || w == nil {
		return nil, fmt.Errorf("server needs input and output streams: %w", corrector.ErrInvalidArgument)
	}
	defaults := config.DefaultConfig().Server
	if cfg.MaxWordLen <= 0 {
		cfg.MaxWordLen = defaults.MaxWordLen
	}
	if cfg.MaxSuggestions <= 0 {
		cfg.MaxSuggestions = defaults.MaxSuggestions
	}
	bw := bufio.NewWriter(w)
	return &Server{
		corr:   c,
		dict:   d,
		name:   name,
		cfg:    cfg,
		dec:    msgpack.NewDecoder(bufio.NewReader(r)),
		writer: bw,
		enc:    msgpack.NewEncoder(bw),
		log:    logger.New("server"),
	}, nil
}

// Requests returns how many requests have been handled.
func (s *Server) Requests() int {
	return s.requests
}

// Start serves requests until the input ends. A clean end of input returns
// nil; a broken stream returns the read error.
func (s *Server) Start() error {
	s.log.Debug("Starting server")
	for {
		raw, err := s.dec.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debugf("Input closed after %d requests", s.requests)
				return nil
			}
			return fmt.Errorf("reading request: %w", err)
		}
		if err := s.handleRequest(raw); err != nil {
			return err
		}
	}
}

// handleRequest decodes one raw message and writes exactly one response.
func (s *Server) handleRequest(raw msgpack.RawMessage) error {
	s.requests++
	var req Request
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		s.log.Debugf("Unmarshaling request: %v", err)
		return s.sendError("", "invalid msgpack request", CodeBadRequest)
	}

	switch req.Action {
	case ActionCorrect:
		return s.handleCorrect(req)
	case ActionIsWord:
		return s.send(WordResponse{ID: req.ID, Known: s.dict.IsWord(req.Word)})
	case ActionStats:
		return s.send(StatsResponse{
			ID:        req.ID,
			Words:     s.dict.NumWords(),
			Requests:  s.requests,
			Corrector: s.name,
		})
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), CodeBadRequest)
	}
}

func (s *Server) handleCorrect(req Request) error {
	if req.Word == "" {
		return s.sendError(req.ID, "missing 'w' parameter", CodeBadRequest)
	}
	if utf8.RuneCountInString(req.Word) > s.cfg.MaxWordLen {
		return s.sendError(req.ID, fmt.Sprintf("word exceeds maximum length of %d", s.cfg.MaxWordLen), CodeBadRequest)
	}

	start := time.Now()
	resp := CorrectionResponse{ID: req.ID, Suggestions: []string{}}
	if s.dict.IsWord(req.Word) {
		resp.Known = true
	} else {
		found, err := s.corr.Corrections(req.Word)
		if errors.Is(err, corrector.ErrInvalidArgument) {
			return s.sendError(req.ID, err.Error(), CodeBadRequest)
		}
		if err != nil {
			s.log.Errorf("Correcting %q: %v", req.Word, err)
			return s.sendError(req.ID, "internal server error", CodeInternal)
		}
		resp.Suggestions = corrector.Sorted(found)
		if len(resp.Suggestions) > s.cfg.MaxSuggestions {
			resp.Suggestions = resp.Suggestions[:s.cfg.MaxSuggestions]
		}
	}
	resp.Count = len(resp.Suggestions)
	resp.TimeTaken = time.Since(start).Microseconds()
	return s.send(resp)
}

// send encodes one response and flushes it so clients see it immediately.
func (s *Server) send(response any) error {
	if err := s.enc.Encode(response); err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	if err := s.writer.Flush(); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(CorrectionError{ID: id, Error: message, Code: code})
}
