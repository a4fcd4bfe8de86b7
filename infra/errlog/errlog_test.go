package errlog_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kahawa/coffee-balancing/entity"
	"github.com/kahawa/coffee-balancing/infra/errlog"
)

func TestLogMostRecentFirst(t *testing.T) {
	l := errlog.New(10)
	at := time.Now()

	l.Append(entity.ReportError{Kind: entity.ErrorKindNetwork, Message: "first", OccurredAt: at})
	l.Append(entity.ReportError{Kind: entity.ErrorKindAuth, Message: "second", OccurredAt: at})

	recent := l.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, "second", recent[0].Message)
	assert.Equal(t, "first", recent[1].Message)
}

func TestLogBounded(t *testing.T) {
	l := errlog.New(3)
	for i := 0; i < 10; i++ {
		l.Append(entity.ReportError{Message: fmt.Sprintf("e%d", i)})
	}

	recent := l.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, "e9", recent[0].Message)
	assert.Equal(t, "e7", recent[2].Message)
	assert.Equal(t, 3, l.Len())
}

func TestLogRecentReturnsCopy(t *testing.T) {
	l := errlog.New(5)
	l.Append(entity.ReportError{Message: "original"})

	recent := l.Recent()
	recent[0].Message = "mutated"
	assert.Equal(t, "original", l.Recent()[0].Message)
}
