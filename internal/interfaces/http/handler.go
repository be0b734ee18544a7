// @title           Bond Projector API
// @version         1.0
// @description     Projects savings bond returns over configurable horizons, with and without early buyout.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	appcatalog "bondprojector/internal/application/service/catalog"
	appprojection "bondprojector/internal/application/service/projection"
	domainbonds "bondprojector/internal/domain/entity/bonds"
	domainprojection "bondprojector/internal/domain/entity/projection"
	"bondprojector/internal/domain/interfaces"
	"bondprojector/internal/interfaces/report"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	apiBasePath       = "/api/v1"
	defaultYearsLimit = 100
)

var (
	errMissingUID          = errors.New("missing uid")
	errInconsistentInputs  = errors.New("start_cash must equal start_bonds * 100")
	errRateLimited         = errors.New("rate limit exceeded")
	errInvalidQueryInteger = errors.New("query param must be an integer")
)

// Options configures the HTTP handler.
type Options struct {
	Cache      interfaces.ProjectionCache
	CacheTTL   time.Duration
	Limiter    *RateLimiter
	Logger     *logrus.Logger
	StartCash  int64
	MaxYears   int
	YearsLimit int
	Currency   string
}

type Handler struct {
	router     *gin.Engine
	catalog    *appcatalog.Service
	projection *appprojection.Service
	renderer   *report.Renderer
	cache      interfaces.ProjectionCache
	cacheTTL   time.Duration
	logger     *logrus.Logger
	defaults   domainprojection.Inputs
	maxYears   int
	yearsLimit int
}

var _ http.Handler = (*Handler)(nil)

func NewHandler(catalog *appcatalog.Service, projection *appprojection.Service, opts Options) (*Handler, error) {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.YearsLimit <= 0 {
		opts.YearsLimit = defaultYearsLimit
	}
	if opts.MaxYears <= 0 || opts.MaxYears > opts.YearsLimit {
		opts.MaxYears = min(12, opts.YearsLimit)
	}
	if opts.StartCash == 0 {
		opts.StartCash = domainprojection.DefaultStartCash
	}

	renderer, err := report.New(opts.Currency)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(opts.Logger))

	h := &Handler{
		router:     router,
		catalog:    catalog,
		projection: projection,
		renderer:   renderer,
		cache:      opts.Cache,
		cacheTTL:   opts.CacheTTL,
		logger:     opts.Logger,
		defaults:   domainprojection.SyncFromCash(opts.StartCash),
		maxYears:   opts.MaxYears,
		yearsLimit: opts.YearsLimit,
	}
	h.registerRoutes(opts.Limiter)
	return h, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes(limiter *RateLimiter) {
	h.router.GET("/healthz", h.health)
	h.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := h.router.Group(apiBasePath)
	if limiter != nil {
		api.Use(rateLimitMiddleware(limiter))
	}

	bonds := api.Group("/bonds")
	{
		bonds.GET("", h.listBonds)
		bonds.GET("/:uid", h.getBond)
		bonds.GET("/:uid/projection", h.getBondProjection)
	}

	projections := api.Group("/projections")
	{
		projections.GET("", h.getProjections)
		if h.cache != nil {
			projections.GET("/report", h.cacheMiddleware(), h.getReport)
		} else {
			projections.GET("/report", h.getReport)
		}
	}

	inputs := api.Group("/inputs")
	{
		inputs.POST("/start-cash", h.commitStartCash)
		inputs.POST("/start-bonds", h.commitStartBonds)
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Catalog handlers

// listBonds lists the bond catalog
// @Summary      List bonds
// @Description  List the bond catalog in its seeded order, optionally filtered by capitalization period
// @Tags         bonds
// @Produce      json
// @Param        capitalization  query     string  false  "monthly or yearly"
// @Success      200             {array}   domainbonds.Bond
// @Failure      400             {object}  map[string]string
// @Failure      500             {object}  map[string]string
// @Router       /bonds [get]
func (h *Handler) listBonds(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		list []domainbonds.Bond
		err  error
	)
	if raw := c.Query("capitalization"); raw != "" {
		period, perr := domainbonds.NewCapitalizationPeriod(raw)
		if perr != nil {
			writeError(c, http.StatusBadRequest, perr)
			return
		}
		list, err = h.catalog.Filter(ctx, period)
	} else {
		list, err = h.catalog.List(ctx)
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// getBond returns a bond by UID
// @Summary      Get bond
// @Description  Get a catalog bond by UID
// @Tags         bonds
// @Produce      json
// @Param        uid  path      string  true  "Bond UID"
// @Success      200  {object}  domainbonds.Bond
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /bonds/{uid} [get]
func (h *Handler) getBond(c *gin.Context) {
	uid, err := parseUIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	bond, err := h.catalog.Get(c.Request.Context(), uid)
	if err != nil {
		writeError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, bond)
}

// Projection handlers

// getBondProjection projects a single bond
// @Summary      Project bond
// @Description  Project one bond over the requested horizons
// @Tags         projections
// @Produce      json
// @Param        uid          path      string  true   "Bond UID"
// @Param        start_cash   query     int     false  "Starting cash, rounded down to whole bonds"
// @Param        start_bonds  query     int     false  "Starting bond count"
// @Param        years        query     string  false  "Comma separated horizons in years"
// @Success      200          {object}  map[string]interface{}
// @Failure      400          {object}  map[string]string
// @Failure      404          {object}  map[string]string
// @Router       /bonds/{uid}/projection [get]
func (h *Handler) getBondProjection(c *gin.Context) {
	uid, err := parseUIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	in, horizons, err := h.parseProjectionQuery(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	row, err := h.projection.Row(c.Request.Context(), uid, in, horizons)
	if err != nil {
		writeError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// getProjections projects the whole catalog
// @Summary      Projection table
// @Description  Project every bond over the requested horizons, with and without early buyout
// @Tags         projections
// @Produce      json
// @Param        start_cash   query     int     false  "Starting cash, rounded down to whole bonds"
// @Param        start_bonds  query     int     false  "Starting bond count"
// @Param        years        query     string  false  "Comma separated horizons in years"
// @Success      200          {object}  domainprojection.Table
// @Failure      400          {object}  map[string]string
// @Failure      500          {object}  map[string]string
// @Router       /projections [get]
func (h *Handler) getProjections(c *gin.Context) {
	in, horizons, err := h.parseProjectionQuery(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	table, err := h.projection.Table(c.Request.Context(), in, horizons)
	if err != nil {
		writeError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// getReport renders the projection table as HTML
// @Summary      Projection report
// @Description  Render the projection table as an HTML page
// @Tags         projections
// @Produce      html
// @Param        start_cash   query     int     false  "Starting cash, rounded down to whole bonds"
// @Param        start_bonds  query     int     false  "Starting bond count"
// @Param        years        query     string  false  "Comma separated horizons in years"
// @Success      200          {string}  string
// @Failure      400          {object}  map[string]string
// @Failure      500          {object}  map[string]string
// @Router       /projections/report [get]
func (h *Handler) getReport(c *gin.Context) {
	in, horizons, err := h.parseProjectionQuery(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	table, err := h.projection.Table(c.Request.Context(), in, horizons)
	if err != nil {
		writeError(c, http.StatusInternalServerError, err)
		return
	}
	page, err := h.renderer.HTML(table)
	if err != nil {
		writeError(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// Input synchronization handlers

// commitStartCash rounds the starting cash and derives the bond count
// @Summary      Commit start cash
// @Description  Round cash down to a multiple of 100 and derive the bond count
// @Tags         inputs
// @Accept       json
// @Produce      json
// @Param        inputs  body      startCashPayload  true  "Starting cash"
// @Success      200     {object}  domainprojection.Inputs
// @Failure      400     {object}  map[string]string
// @Router       /inputs/start-cash [post]
func (h *Handler) commitStartCash(c *gin.Context) {
	var payload startCashPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	in := domainprojection.SyncFromCash(*payload.StartCash)
	if err := in.Validate(); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, in)
}

// commitStartBonds derives the starting cash from the bond count
// @Summary      Commit start bonds
// @Description  Derive the starting cash from the bond count
// @Tags         inputs
// @Accept       json
// @Produce      json
// @Param        inputs  body      startBondsPayload  true  "Starting bond count"
// @Success      200     {object}  domainprojection.Inputs
// @Failure      400     {object}  map[string]string
// @Router       /inputs/start-bonds [post]
func (h *Handler) commitStartBonds(c *gin.Context) {
	var payload startBondsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	in := domainprojection.SyncFromBonds(*payload.StartBonds)
	if err := in.Validate(); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, in)
}

type startCashPayload struct {
	StartCash *int64 `json:"start_cash" binding:"required"`
}

type startBondsPayload struct {
	StartBonds *int64 `json:"start_bonds" binding:"required"`
}

// parseProjectionQuery reads start_cash, start_bonds and years. A missing
// input is derived from the other one; both missing falls back to the defaults.
func (h *Handler) parseProjectionQuery(c *gin.Context) (domainprojection.Inputs, domainprojection.Horizons, error) {
	cash, hasCash, err := optionalInt64Query(c, "start_cash")
	if err != nil {
		return domainprojection.Inputs{}, nil, err
	}
	count, hasBonds, err := optionalInt64Query(c, "start_bonds")
	if err != nil {
		return domainprojection.Inputs{}, nil, err
	}

	in := h.defaults
	switch {
	case hasCash && hasBonds:
		in = domainprojection.Inputs{StartCash: cash, StartBonds: count}
		if !in.Consistent() {
			return domainprojection.Inputs{}, nil, errInconsistentInputs
		}
	case hasCash:
		in = domainprojection.SyncFromCash(cash)
	case hasBonds:
		in = domainprojection.SyncFromBonds(count)
	}
	if err := in.Validate(); err != nil {
		return domainprojection.Inputs{}, nil, err
	}

	horizons := domainprojection.Range(h.maxYears)
	if raw := c.Query("years"); raw != "" {
		horizons, err = domainprojection.ParseHorizons(raw)
		if err != nil {
			return domainprojection.Inputs{}, nil, err
		}
	}
	if err := horizons.Validate(h.yearsLimit); err != nil {
		return domainprojection.Inputs{}, nil, err
	}
	return in, horizons, nil
}

func optionalInt64Query(c *gin.Context, key string) (int64, bool, error) {
	value, ok := c.GetQuery(key)
	if !ok || value == "" {
		return 0, false, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", key, errInvalidQueryInteger)
	}
	return parsed, true, nil
}

func parseUIDParam(c *gin.Context) (uuid.UUID, error) {
	raw := c.Param("uid")
	if raw == "" {
		return uuid.Nil, errMissingUID
	}
	uid, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid uid %q: %w", raw, err)
	}
	return uid, nil
}

func statusFor(err error) int {
	if errors.Is(err, domainbonds.ErrBondNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, status int, err error) {
	if err == nil {
		status = http.StatusInternalServerError
		err = errors.New("unknown error")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// requestLogger logs one structured line per request.
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"latency":  time.Since(start).String(),
			"clientIP": c.ClientIP(),
		}).Info("request handled")
	}
}

// cacheMiddleware caches successful GET responses.
func (h *Handler) cacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.cache == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := h.cacheKey(c)
		ctx := c.Request.Context()

		cached, ok, err := h.cache.Get(ctx, key)
		if err != nil {
			h.logger.WithError(err).WithField("key", key).Warn("response cache read failed")
		}
		if ok {
			c.Data(http.StatusOK, "text/html; charset=utf-8", cached)
			c.Abort()
			return
		}

		recorder := &responseRecorder{
			ResponseWriter: c.Writer,
			status:         http.StatusOK,
			body:           &bytes.Buffer{},
		}
		c.Writer = recorder

		c.Next()

		if recorder.status >= 200 && recorder.status < 300 && recorder.body.Len() > 0 {
			if err := h.cache.Set(ctx, key, recorder.body.Bytes(), h.cacheTTL); err != nil {
				h.logger.WithError(err).WithField("key", key).Warn("response cache write failed")
			}
		}
	}
}

type responseRecorder struct {
	gin.ResponseWriter
	body   *bytes.Buffer
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(data []byte) (int, error) {
	if len(data) > 0 {
		r.body.Write(data)
	}
	return r.ResponseWriter.Write(data)
}

func (h *Handler) cacheKey(c *gin.Context) string {
	return fmt.Sprintf("cache:%s:%s?%s", c.Request.Method, c.FullPath(), c.Request.URL.RawQuery)
}
