package balancing

import (
	"errors"
	"fmt"
	"time"

	"github.com/kahawa/coffee-balancing/consts"
	"github.com/kahawa/coffee-balancing/entity"
)

var ErrInvalidRange = errors.New("from date is after to date")

// ResolveRange turns a preset plus optional explicit dates into a concrete
// inclusive date range. A named preset wins over explicit dates; explicit
// dates with no named preset mean "custom". An empty request defaults to
// daily.
func ResolveRange(preset, fromStr, toStr string, now time.Time) (entity.DateRange, error) {
	today := truncateToDate(now)

	if preset == "" {
		if fromStr != "" || toStr != "" {
			preset = consts.PresetCustom
		} else {
			preset = consts.PresetDaily
		}
	}

	switch preset {
	case consts.PresetDaily:
		return entity.DateRange{From: today, To: today}, nil

	case consts.PresetWeekly:
		// ISO week: Monday start. Sunday counts as the end of the
		// previous week, so the start is 6 days back.
		offset := int(now.Weekday()) - 1
		if now.Weekday() == time.Sunday {
			offset = 6
		}
		return entity.DateRange{From: today.AddDate(0, 0, -offset), To: today}, nil

	case consts.PresetMonthly:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return entity.DateRange{From: first, To: today}, nil

	case consts.PresetCustom:
		from, err := time.Parse(consts.DateLayout, fromStr)
		if err != nil {
			return entity.DateRange{}, fmt.Errorf("invalid from date %q: %w", fromStr, err)
		}
		to, err := time.Parse(consts.DateLayout, toStr)
		if err != nil {
			return entity.DateRange{}, fmt.Errorf("invalid to date %q: %w", toStr, err)
		}
		if from.After(to) {
			return entity.DateRange{}, ErrInvalidRange
		}
		return entity.DateRange{From: from, To: to}, nil
	}

	return entity.DateRange{}, fmt.Errorf("unknown date preset %q", preset)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
