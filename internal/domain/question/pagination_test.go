package question

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/question-board/pkg/errors"
)

func TestResolvePagination_BothBounds(t *testing.T) {
	got, err := ResolvePagination(url.Values{"start": {"2"}, "end": {"10"}})
	require.NoError(t, err)
	require.Equal(t, Pagination{Start: 2, End: 10}, got)
}

func TestResolvePagination_EqualBounds(t *testing.T) {
	got, err := ResolvePagination(url.Values{"start": {"3"}, "end": {"3"}})
	require.NoError(t, err)
	require.Equal(t, Pagination{Start: 3, End: 3}, got)
}

func TestResolvePagination_NoBounds(t *testing.T) {
	got, err := ResolvePagination(url.Values{})
	require.NoError(t, err)
	require.Equal(t, Pagination{Start: 0, End: UnboundedEnd}, got)
}

func TestResolvePagination_StartGreaterEnd(t *testing.T) {
	_, err := ResolvePagination(url.Values{"start": {"3"}, "end": {"1"}})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, CodeStartGreaterEnd))
	require.Contains(t, err.Error(), "Start greater end")
	require.Contains(t, err.Error(), "start 3")
	require.Contains(t, err.Error(), "end 1")
}

func TestResolvePagination_SingleBound(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
	}{
		{"only start", url.Values{"start": {"2"}}},
		{"only end", url.Values{"end": {"7"}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolvePagination(tc.query)
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, CodeMissingParameter))
			require.EqualError(t, err, "Missing parameter")
		})
	}
}

func TestResolvePagination_Unparsable(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
	}{
		{"alphabetic start", url.Values{"start": {"abc"}, "end": {"5"}}},
		{"alphabetic end", url.Values{"start": {"0"}, "end": {"xyz"}}},
		{"negative start", url.Values{"start": {"-1"}, "end": {"5"}}},
		{"empty start", url.Values{"start": {""}, "end": {"5"}}},
		{"fractional end", url.Values{"start": {"0"}, "end": {"1.5"}}},
		{"overflowing end", url.Values{"start": {"0"}, "end": {"99999999999999999999"}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolvePagination(tc.query)
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, CodeParseError))
			require.Contains(t, err.Error(), "Cannot parse parameter")
		})
	}
}

func TestBounds_ClampsToLength(t *testing.T) {
	for length := 0; length <= 6; length++ {
		for start := 0; start <= 8; start++ {
			for end := start; end <= 8; end++ {
				lo, hi := Pagination{Start: start, End: end}.Bounds(length)
				require.Equal(t, min(start, length), lo)
				require.Equal(t, min(end, length), hi)
				require.LessOrEqual(t, lo, hi)
				require.LessOrEqual(t, hi, length)
			}
		}
	}
}

func TestBounds_UnboundedSentinel(t *testing.T) {
	for _, length := range []int{0, 1, 5, 1000} {
		lo, hi := Pagination{Start: 0, End: UnboundedEnd}.Bounds(length)
		require.Equal(t, 0, lo)
		require.Equal(t, length, hi)
	}
}

func TestBounds_EmptyWhenStartBeyondLength(t *testing.T) {
	lo, hi := Pagination{Start: 9, End: 12}.Bounds(5)
	require.Equal(t, 5, lo)
	require.Equal(t, 5, hi)
}
