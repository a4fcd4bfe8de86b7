package balancing

import (
	"errors"
	"net"
	"strings"
	"time"

	"github.com/kahawa/coffee-balancing/entity"
	"github.com/kahawa/coffee-balancing/infra/db/dao"
)

// ReportFailure is a classified error that aborts a report run. Non-fatal
// errors (a failed chunk pass) travel inside the report instead.
type ReportFailure struct {
	Err entity.ReportError
}

func (f *ReportFailure) Error() string {
	return string(f.Err.Kind) + ": " + f.Err.Message
}

// classify maps an arbitrary failure onto the report error taxonomy and
// attaches a remediation hint. The result is also appended to the shared
// error log.
func (u *balancingUsecase) classify(err error, context string) entity.ReportError {
	reportErr := classifyError(err, context, u.now())
	u.errlog.Append(reportErr)
	return reportErr
}

func classifyError(err error, context string, at time.Time) entity.ReportError {
	e := entity.ReportError{
		Kind:       entity.ErrorKindUnknown,
		Message:    err.Error(),
		Details:    context,
		OccurredAt: at,
	}

	msg := strings.ToLower(err.Error())
	var netErr net.Error

	switch {
	case errors.Is(err, dao.ErrNoSession), errors.Is(err, dao.ErrSessionExpired):
		e.Kind = entity.ErrorKindAuth
		e.Hint = "sign in again and retry"

	case errors.Is(err, ErrInvalidRange):
		e.Kind = entity.ErrorKindValidation
		e.Hint = "the from date must not be after the to date"

	case errors.As(err, &netErr),
		strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "no such host"),
		strings.Contains(msg, "network is unreachable"),
		strings.Contains(msg, "connection reset"):
		e.Kind = entity.ErrorKindNetwork
		e.Hint = "check connectivity to the data service"

	case strings.Contains(msg, "permission denied"),
		strings.Contains(msg, "row-level security"),
		strings.Contains(msg, "insufficient_privilege"):
		e.Kind = entity.ErrorKindRls
		e.Hint = "the service rejected the request; check your role's read access"

	case strings.Contains(msg, "pq:"), strings.Contains(msg, "sqlstate"):
		e.Kind = entity.ErrorKindService
		e.Hint = "the data service returned an error; retry or inspect the details"
	}

	return e
}

func validationFailure(message string, at time.Time) *ReportFailure {
	return &ReportFailure{Err: entity.ReportError{
		Kind:       entity.ErrorKindValidation,
		Message:    message,
		OccurredAt: at,
	}}
}
