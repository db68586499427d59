package server

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/golinq/engine"
	"github.com/kbukum/golinq/errors"
	"github.com/kbukum/golinq/linq"
	"github.com/kbukum/golinq/logger"
	"github.com/kbukum/golinq/operator"
	"github.com/kbukum/golinq/plan"
)

// QueryRequest is the body of POST /v1/query.
type QueryRequest struct {
	Input []any      `json:"input"`
	Plan  *plan.Plan `json:"plan"`
}

// QueryHandler evaluates plans against request input.
type QueryHandler struct {
	mode     operator.SequenceEqualMode
	observer engine.Observer
	log      *logger.Logger
}

// NewQueryHandler creates a handler. observer may be nil.
func NewQueryHandler(mode operator.SequenceEqualMode, observer engine.Observer, log *logger.Logger) *QueryHandler {
	return &QueryHandler{
		mode:     mode,
		observer: observer,
		log:      log.WithComponent("query"),
	}
}

// Query handles POST /v1/query.
func (h *QueryHandler) Query(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, bindError(err))
		return
	}
	if req.Plan == nil {
		RespondWithError(c, errors.InvalidInput("plan", "plan is required"))
		return
	}

	prog, err := plan.Compile(req.Plan)
	if err != nil {
		RespondWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	opts := []linq.Option{
		linq.WithContext(ctx),
		linq.WithSequenceEqualMode(h.mode),
		linq.WithLogger(h.log),
	}
	if h.observer != nil {
		opts = append(opts, linq.WithObserver(h.observer))
	}

	res, err := prog.Execute(linq.From(plan.Normalize(req.Input), opts...))
	if err != nil {
		h.log.WithContext(ctx).Debug("plan failed", logger.ErrorFields("query", err))
		RespondWithError(c, err)
		return
	}

	kinds := prog.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	RespondOKWithMeta(c, res.Value, &Meta{Kind: res.Kind, Operators: names})
}

func bindError(err error) error {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return err
	}
	return errors.InvalidInput("body", "request body must be a JSON object {input, plan}").WithCause(err)
}
