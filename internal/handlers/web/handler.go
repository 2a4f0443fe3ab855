package web

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/stumped/internal/events"
	"github.com/KirkDiggler/stumped/internal/services/archive"
	"github.com/KirkDiggler/stumped/internal/services/game"
	"github.com/KirkDiggler/stumped/internal/services/monitor"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	// SessionHeader carries the opaque session token on every request
	SessionHeader = "X-Session-Token"

	// sessionQuery is the fallback for websocket clients that cannot set headers
	sessionQuery = "session"

	sessionKey = "session"

	// DefaultRateLimit is the sustained actions per second allowed per session
	DefaultRateLimit = 5

	// DefaultRateBurst is the burst of actions allowed per session
	DefaultRateBurst = 10
)

var (
	ErrNilConfig     = errors.New("config cannot be nil")
	ErrNilGame       = errors.New("game service cannot be nil")
	ErrNilMonitor    = errors.New("monitor cannot be nil")
	ErrNilSubscriber = errors.New("subscriber cannot be nil")
)

// Config holds the dependencies of the HTTP transport
type Config struct {
	Game       game.Service
	Monitor    monitor.Service
	Subscriber events.Subscriber

	// Archive serves past results; the route is left out when nil
	Archive archive.Service

	Logger zerolog.Logger

	// AllowedOrigins for CORS; empty allows any origin
	AllowedOrigins []string

	// PublicURL is the base of the join link encoded in QR codes
	PublicURL string

	RateLimit rate.Limit
	RateBurst int

	// PingInterval keeps websocket connections alive; zero means 30s
	PingInterval time.Duration
}

// Handler serves the JSON API and the websocket push channel
type Handler struct {
	game       game.Service
	monitor    monitor.Service
	subscriber events.Subscriber
	archive    archive.Service
	logger     zerolog.Logger

	allowedOrigins []string
	publicURL      string
	pingInterval   time.Duration

	limiter  *limiter
	upgrader websocket.Upgrader
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Game == nil {
		return nil, ErrNilGame
	}

	if cfg.Monitor == nil {
		return nil, ErrNilMonitor
	}

	if cfg.Subscriber == nil {
		return nil, ErrNilSubscriber
	}

	limit := cfg.RateLimit
	if limit <= 0 {
		limit = DefaultRateLimit
	}

	burst := cfg.RateBurst
	if burst <= 0 {
		burst = DefaultRateBurst
	}

	ping := cfg.PingInterval
	if ping <= 0 {
		ping = 30 * time.Second
	}

	h := &Handler{
		game:           cfg.Game,
		monitor:        cfg.Monitor,
		subscriber:     cfg.Subscriber,
		archive:        cfg.Archive,
		logger:         cfg.Logger.With().Str("component", "http").Logger(),
		allowedOrigins: cfg.AllowedOrigins,
		publicURL:      strings.TrimSuffix(cfg.PublicURL, "/"),
		pingInterval:   ping,
		limiter:        newLimiter(limit, burst),
	}

	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}

	return h, nil
}

// Router builds the gin engine with every route mounted
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(h.requestLogger())

	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type",
			SessionHeader,
			"Upgrade",
			"Connection",
			"Sec-WebSocket-Key",
			"Sec-WebSocket-Version",
			"Sec-WebSocket-Extensions",
			"Sec-WebSocket-Protocol",
		},
		MaxAge: 12 * time.Hour,
	}
	if len(h.allowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = h.allowedOrigins
	}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/codes/:code", h.getRoomByCode)

	public := r.Group("/rooms/:id")
	public.GET("/standings", h.getStandings)
	public.GET("/qr", h.getQRCode)
	if h.archive != nil {
		public.GET("/results", h.listResults)
	}

	authed := r.Group("/", h.requireSession())
	authed.GET("/rooms/:id", h.getRoom)
	authed.GET("/rooms/:id/ws", h.serveSocket)

	actions := authed.Group("/", h.rateLimit())
	actions.POST("/rooms", h.createRoom)
	actions.POST("/join", h.joinRoom)
	actions.POST("/rooms/:id/start", h.startGame)
	actions.POST("/rooms/:id/answer", h.chooseAnswer)
	actions.POST("/rooms/:id/questions", h.askQuestion)
	actions.POST("/rooms/:id/questions/:entryId/answer", h.answerQuestion)
	actions.POST("/rooms/:id/guesses", h.submitGuess)
	actions.POST("/rooms/:id/pass", h.passTurn)
	actions.POST("/rooms/:id/advance", h.advanceRound)
	actions.POST("/rooms/:id/end", h.endGame)
	actions.POST("/rooms/:id/restart", h.restartGame)
	actions.POST("/rooms/:id/leave", h.leaveRoom)
	actions.DELETE("/rooms/:id/players/:playerId", h.kickPlayer)

	return r
}

// requireSession rejects requests without a session token
func (h *Handler) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader(SessionHeader))
		if token == "" {
			token = strings.TrimSpace(c.Query(sessionQuery))
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session token"})
			return
		}
		c.Set(sessionKey, token)
		c.Next()
	}
}

// rateLimit throttles each session's actions
func (h *Handler) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.limiter.allow(c.GetString(sessionKey)) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "slow down"})
			return
		}
		c.Next()
	}
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		h.logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	if len(h.allowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	for _, allowed := range h.allowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}

// statusFor maps a game error category to an HTTP status
func statusFor(err error) int {
	switch game.Category(err) {
	case game.ErrIllegalAction, game.ErrCapacityExceeded:
		return http.StatusConflict
	case game.ErrValidation:
		return http.StatusBadRequest
	case game.ErrNotFound:
		return http.StatusNotFound
	case game.ErrStorage:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	status := statusFor(err)

	body := gin.H{"error": err.Error()}
	if category := game.Category(err); category != "" {
		body["category"] = string(category)
	}

	// Storage details stay in the logs
	if status >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		body["error"] = "temporarily unavailable"
	}

	c.AbortWithStatusJSON(status, body)
}
