package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/n0rdy/palindromes"
	"github.com/n0rdy/palindromes/ratelimiter"
	"github.com/n0rdy/palindromes/search"
	"github.com/n0rdy/palindromes/types"
)

// LegacyErrorBody is the whole body of every failed legacy response.
const LegacyErrorBody = "Error"

var errInvalidQuery = errors.New("min and max query parameters must be unsigned integers")

// GroupResponse is one palindromic product with its factor pairs, each pair as [a, b].
type GroupResponse struct {
	Value   uint64      `json:"value"`
	Factors [][2]uint64 `json:"factors"`
}

type PalindromesResponse struct {
	Min GroupResponse `json:"min"`
	Max GroupResponse `json:"max"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (s *Server) legacy(c *gin.Context) {
	min, max, err := rangeQuery(c)
	if err != nil {
		c.String(http.StatusBadRequest, LegacyErrorBody)
		return
	}

	res, err := s.search(c.Request.Context(), min, max)
	if err != nil {
		c.String(statusOf(err), LegacyErrorBody)
		return
	}
	if res == nil {
		c.String(http.StatusOK, LegacyErrorBody)
		return
	}

	c.String(http.StatusOK, "min %d max %d", res.Min.Value(), res.Max.Value())
}

func (s *Server) products(c *gin.Context) {
	min, max, err := rangeQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		return
	}

	res, err := s.search(c.Request.Context(), min, max)
	if err != nil {
		c.JSON(statusOf(err), MessageResponse{Message: err.Error()})
		return
	}
	if res == nil {
		c.JSON(http.StatusNotFound, MessageResponse{Message: "none found"})
		return
	}

	c.JSON(http.StatusOK, PalindromesResponse{
		Min: NewGroupResponse(res.Min),
		Max: NewGroupResponse(res.Max),
	})
}

func (s *Server) health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (s *Server) search(ctx context.Context, min, max uint64) (*types.Result, error) {
	if err := ratelimiter.AcquireContextSafely(ctx, s.limiter); err != nil {
		return nil, err
	}
	defer ratelimiter.ReleaseSafely(s.limiter)

	res, err := s.searcher.Search(ctx, min, max)
	if err != nil && !errors.Is(err, palindromes.ErrOutOfRange) {
		s.logger.Warn(fmt.Sprintf("search of [%d, %d] failed", min, max), err)
	}
	return res, err
}

func rangeQuery(c *gin.Context) (uint64, uint64, error) {
	min, err := strconv.ParseUint(c.Query("min"), 10, 64)
	if err != nil {
		return 0, 0, errInvalidQuery
	}
	max, err := strconv.ParseUint(c.Query("max"), 10, 64)
	if err != nil {
		return 0, 0, errInvalidQuery
	}
	return min, max, nil
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, palindromes.ErrOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, search.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.Canceled):
		// the client is gone, nobody reads the status anyway
		return 499
	default:
		return http.StatusInternalServerError
	}
}

// NewGroupResponse converts a group to its JSON form with the factor pairs sorted.
func NewGroupResponse(g *types.PalindromeGroup) GroupResponse {
	factors := g.Factors()
	resp := GroupResponse{
		Value:   g.Value(),
		Factors: make([][2]uint64, 0, len(factors)),
	}
	for _, p := range factors {
		resp.Factors = append(resp.Factors, [2]uint64{p.A, p.B})
	}
	return resp
}
