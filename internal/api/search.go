package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathlab/pathfinder"
	"github.com/katalvlaran/pathlab/search"
)

// DefaultSearchTimeout bounds a single search request.
const DefaultSearchTimeout = 10 * time.Second

// SearchController runs searches on request-supplied boards.
type SearchController struct {
	depthLimit int
	timeout    time.Duration
	log        logrus.FieldLogger
	runs       *history
}

// ControllerOption configures a SearchController.
type ControllerOption func(*SearchController)

// WithTimeout sets the per-request search deadline. A non-positive d
// leaves searches bounded only by the client connection.
func WithTimeout(d time.Duration) ControllerOption {
	return func(sc *SearchController) { sc.timeout = d }
}

// NewSearchController initializes a SearchController. depthLimit is the
// DLS budget used when a request does not carry one.
func NewSearchController(depthLimit int, log logrus.FieldLogger, opts ...ControllerOption) *SearchController {
	if log == nil {
		log = logrus.StandardLogger()
	}
	sc := &SearchController{
		depthLimit: depthLimit,
		timeout:    DefaultSearchTimeout,
		log:        log,
		runs:       newHistory(DefaultHistory),
	}
	for _, opt := range opts {
		opt(sc)
	}
	return sc
}

// runContext derives the search context from the request.
func (sc *SearchController) runContext(ctx *gin.Context) (context.Context, context.CancelFunc) {
	if sc.timeout <= 0 {
		return context.WithCancel(ctx.Request.Context())
	}
	return context.WithTimeout(ctx.Request.Context(), sc.timeout)
}

// RegisterPublic registers public routes.
func (sc *SearchController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/algorithms", sc.algorithms)
	searches := route.Group("/search")
	{
		searches.POST("", sc.search)
		searches.POST("/stream", sc.stream)
		searches.GET("/:ID", sc.runInfo)
	}
}

// algorithms lists the six searches in menu order.
func (sc *SearchController) algorithms(ctx *gin.Context) {
	out := make([]AlgorithmInfo, 0, len(pathfinder.Algorithms()))
	for _, a := range pathfinder.Algorithms() {
		out = append(out, AlgorithmInfo{Key: string(a.Key()), Name: a.String(), Title: a.Title()})
	}
	ctx.JSON(http.StatusOK, out)
}

// search runs the requested algorithm and answers with the report.
func (sc *SearchController) search(ctx *gin.Context) {
	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := sc.session(request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	runCtx, cancel := sc.runContext(ctx)
	defer cancel()
	rep, err := session.Run(runCtx, request.Algorithm, nil)
	if err != nil {
		sc.fail(ctx, err)
		return
	}
	resp := newSearchResponse(rep)
	sc.runs.put(rep.RunID, resp)
	ctx.JSON(http.StatusOK, resp)
}

// stream runs the requested algorithm and sends every snapshot as a
// server-sent "snapshot" event, then the report as a "result" event.
// A failure after streaming has begun is sent as an "error" event.
func (sc *SearchController) stream(ctx *gin.Context) {
	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := sc.session(request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Status(http.StatusOK)

	obs := func(s search.Snapshot) error {
		ctx.SSEvent("snapshot", newSnapshotEvent(s))
		ctx.Writer.Flush()
		return nil
	}
	runCtx, cancel := sc.runContext(ctx)
	defer cancel()
	rep, err := session.Run(runCtx, request.Algorithm, obs)
	if err != nil {
		ctx.SSEvent("error", gin.H{"error": err.Error()})
		ctx.Writer.Flush()
		return
	}
	resp := newSearchResponse(rep)
	sc.runs.put(rep.RunID, resp)
	ctx.SSEvent("result", resp)
	ctx.Writer.Flush()
}

// runInfo returns a recent report by run id.
func (sc *SearchController) runInfo(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid run id"})
		return
	}
	resp, ok := sc.runs.get(ID)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// session builds a board from the request through the click placement rule.
func (sc *SearchController) session(request SearchRequest) (*pathfinder.Session, error) {
	depth := sc.depthLimit
	if request.DepthLimit != nil {
		depth = *request.DepthLimit
	}
	session, err := pathfinder.NewSession(
		pathfinder.WithSize(request.Size),
		pathfinder.WithDepthLimit(depth),
		pathfinder.WithLogger(sc.log),
	)
	if err != nil {
		return nil, err
	}

	if request.Start == request.Target {
		return nil, errors.New("start and target must differ")
	}
	for _, at := range append([]Coord{request.Start, request.Target}, request.Walls...) {
		if _, err := session.Click(at[0], at[1]); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// fail maps a run error to a status code.
func (sc *SearchController) fail(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, pathfinder.ErrUnknownAlgorithm),
		errors.Is(err, pathfinder.ErrNotReady),
		errors.Is(err, search.ErrOptionViolation):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		sc.log.WithField("timeout", sc.timeout).Warn("search exceeded time limit")
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "search exceeded time limit"})
	case errors.Is(err, context.Canceled):
		ctx.JSON(http.StatusRequestTimeout, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while searching"})
	}
}
