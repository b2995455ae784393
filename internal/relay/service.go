package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/BetterCallFirewall/nlog-proxy/internal/models"
	"github.com/BetterCallFirewall/nlog-proxy/internal/nlog"
	"github.com/BetterCallFirewall/nlog-proxy/internal/openpanel"
	"github.com/BetterCallFirewall/nlog-proxy/internal/requestid"
	"github.com/BetterCallFirewall/nlog-proxy/internal/utils"
)

const (
	// MaxBodyBytes ограничение на размер входящего JSON (10MB)
	MaxBodyBytes = 10 << 20

	DefaultUserAgent = "nlog-proxy-server"

	EventTypeRelay = "relay"
)

var ErrInvalidJSON = errors.New("body is not valid JSON")

type Tracker interface {
	Track(ctx context.Context, req openpanel.TrackRequest) (*openpanel.TrackResponse, error)
	TrackURL() string
}

type Broadcaster interface {
	Broadcast(msgType string, data interface{})
}

type Service struct {
	tracker     Tracker
	converter   nlog.Converter
	ids         requestid.Generator
	broadcaster Broadcaster
}

type Option func(*Service)

func WithConverter(c nlog.Converter) Option {
	return func(s *Service) { s.converter = c }
}

func WithIDGenerator(g requestid.Generator) Option {
	return func(s *Service) { s.ids = g }
}

func WithBroadcaster(b Broadcaster) Option {
	return func(s *Service) { s.broadcaster = b }
}

func NewService(tracker Tracker, opts ...Option) *Service {
	s := &Service{
		tracker:   tracker,
		converter: nlog.Identity,
		ids:       requestid.UUIDGenerator{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HandleProxy POST /proxy - пересылка JSON как есть, с User-Agent клиента
func (s *Service) HandleProxy(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()

	payload, err := readJSONBody(w, r)
	if err != nil {
		log.Printf("❌ Bad /proxy body: %v", err)
		utils.WriteInternalError(w, err)
		return
	}

	requestID := s.ids.NewID()
	log.Println("\n=== New Request ===")
	log.Println("Request ID:", requestID)
	log.Println("Payload:", indent(payload))
	log.Println("Forwarding to:", s.tracker.TrackURL())

	userAgent := r.Header.Get("User-Agent")
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	resp, err := s.tracker.Track(r.Context(), openpanel.TrackRequest{
		Payload:   payload,
		UserAgent: userAgent,
	})
	if err != nil {
		s.fail(w, "/proxy", requestID, startTime, err)
		log.Println("=== Request Failed ===")
		return
	}

	log.Println("OpenPanel status:", resp.StatusCode)
	log.Printf("OpenPanel response: %v", resp.Body)
	s.succeed(w, "/proxy", requestID, startTime, resp, "")
	log.Println("=== Request Complete ===")
}

// HandleNlog POST /nlog - payload проходит через конвертер, User-Agent не передается
func (s *Service) HandleNlog(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()

	payload, err := readJSONBody(w, r)
	if err != nil {
		log.Printf("❌ Bad /nlog body: %v", err)
		utils.WriteInternalError(w, err)
		return
	}

	requestID := s.ids.NewID()
	log.Println("\n=== Nlog Request ===")
	log.Println("Request ID:", requestID)
	log.Println("Nlog data:", indent(payload))

	converted, err := s.converter.Convert(r.Context(), payload)
	if err != nil {
		s.fail(w, "/nlog", requestID, startTime, fmt.Errorf("converting nlog payload: %w", err))
		log.Println("=== Nlog Request Failed ===")
		return
	}

	resp, err := s.tracker.Track(r.Context(), openpanel.TrackRequest{Payload: converted})
	if err != nil {
		s.fail(w, "/nlog", requestID, startTime, err)
		log.Println("=== Nlog Request Failed ===")
		return
	}

	log.Println("OpenPanel response:", resp.StatusCode)
	s.succeed(w, "/nlog", requestID, startTime, resp, models.NlogNote)
	log.Println("=== Nlog Request Complete ===")
}

func (s *Service) succeed(w http.ResponseWriter, endpoint, requestID string, startTime time.Time, resp *openpanel.TrackResponse, note string) {
	elapsed := utils.Elapsed(startTime)
	log.Println("Processing time:", elapsed, "ms")

	utils.WriteJSON(w, resp.StatusCode, models.RelaySuccess{
		ProxyStatus:       models.ProxyStatusSuccess,
		RequestID:         requestID,
		OpenPanelStatus:   resp.StatusCode,
		OpenPanelResponse: resp.Body,
		ProcessingTimeMs:  elapsed,
		Note:              note,
	})

	s.publish(models.RelayEvent{
		RequestID:        requestID,
		Endpoint:         endpoint,
		ProxyStatus:      models.ProxyStatusSuccess,
		OpenPanelStatus:  resp.StatusCode,
		ProcessingTimeMs: elapsed,
	})
}

func (s *Service) fail(w http.ResponseWriter, endpoint, requestID string, startTime time.Time, err error) {
	elapsed := utils.Elapsed(startTime)
	log.Printf("❌ Error: %v", err)
	log.Println("Processing time:", elapsed, "ms")

	utils.WriteJSON(w, http.StatusInternalServerError, models.RelayError{
		ProxyStatus:      models.ProxyStatusError,
		RequestID:        requestID,
		Error:            err.Error(),
		ProcessingTimeMs: elapsed,
	})

	s.publish(models.RelayEvent{
		RequestID:        requestID,
		Endpoint:         endpoint,
		ProxyStatus:      models.ProxyStatusError,
		Error:            err.Error(),
		ProcessingTimeMs: elapsed,
	})
}

func (s *Service) publish(event models.RelayEvent) {
	if s.broadcaster != nil {
		s.broadcaster.Broadcast(EventTypeRelay, event)
	}
}

func readJSONBody(w http.ResponseWriter, r *http.Request) (json.RawMessage, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	if !json.Valid(body) {
		return nil, ErrInvalidJSON
	}
	return json.RawMessage(body), nil
}

func indent(payload json.RawMessage) string {
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return string(payload)
	}
	return string(out)
}
