package request

import (
	"errors"
	"strconv"
	"strings"

	"contabilidad_orquestador/internal/usecase"
)

var (
	ErrInvalidTop = errors.New("invalid top value")
)

// ReportQuery carries the query string of the delinquency report endpoints.
type ReportQuery struct {
	Top string `form:"top"`
}

// ResolveTop returns 0 when top is absent, meaning "use the configured default".
func (q ReportQuery) ResolveTop() (int, error) {
	v := strings.TrimSpace(q.Top)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > usecase.MaxTopDelinquents {
		return 0, ErrInvalidTop
	}
	return n, nil
}
