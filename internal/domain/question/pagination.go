package question

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	apperrors "github.com/yanqian/question-board/pkg/errors"
)

// UnboundedEnd is the sentinel used when no bounds are supplied. It means
// "no upper bound"; it is only ever clamped against a collection length and
// never used in arithmetic.
const UnboundedEnd = math.MaxInt

// Pagination holds the requested sub-range of the collection. Start <= End
// always holds for values produced by ResolvePagination.
type Pagination struct {
	Start int
	End   int
}

// ResolvePagination interprets the start/end query parameters.
//
// Both present: each must parse as a non-negative integer and start must not
// exceed end. Neither present: the full range. Exactly one present: an error,
// the parameters only make sense as a pair.
func ResolvePagination(query url.Values) (Pagination, error) {
	hasStart := query.Has("start")
	hasEnd := query.Has("end")

	switch {
	case hasStart && hasEnd:
		start, err := parseBound(query.Get("start"))
		if err != nil {
			return Pagination{}, apperrors.Wrap(CodeParseError, "Cannot parse parameter", err)
		}
		end, err := parseBound(query.Get("end"))
		if err != nil {
			return Pagination{}, apperrors.Wrap(CodeParseError, "Cannot parse parameter", err)
		}
		if start > end {
			return Pagination{}, apperrors.Wrap(CodeStartGreaterEnd,
				fmt.Sprintf("Start greater end: start %d, end %d", start, end), nil)
		}
		return Pagination{Start: start, End: end}, nil
	case !hasStart && !hasEnd:
		return Pagination{Start: 0, End: UnboundedEnd}, nil
	default:
		return Pagination{}, apperrors.Wrap(CodeMissingParameter, "Missing parameter", nil)
	}
}

func parseBound(raw string) (int, error) {
	// ParseUint rejects negative values and anything beyond the int range,
	// and its error carries the offending input for the response body.
	value, err := strconv.ParseUint(raw, 10, strconv.IntSize-1)
	if err != nil {
		return 0, err
	}
	return int(value), nil
}

// Bounds clamps the pagination against a collection length, yielding the
// half-open index range [min(start,L), min(end,L)). The result is always
// in-bounds and possibly empty, never an error.
func (p Pagination) Bounds(length int) (lo, hi int) {
	lo = min(p.Start, length)
	hi = min(p.End, length)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
