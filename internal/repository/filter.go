package repository

import (
	"fmt"
	"strings"

	"github.com/sfdatalab/incident_analytics/internal/models"
)

// buildWhere renders the normalized dashboard filter as a WHERE clause with
// positional arguments. The filter always carries year and hour bounds;
// empty multi-selects mean "all" and produce no condition.
func buildWhere(f *models.Filter) (string, []any) {
	conds := make([]string, 0, 5)
	args := make([]any, 0, 7)

	args = append(args, f.YearFrom, f.YearTo)
	conds = append(conds, fmt.Sprintf("year BETWEEN $%d AND $%d", len(args)-1, len(args)))

	args = append(args, f.HourFrom, f.HourTo)
	conds = append(conds, fmt.Sprintf("hour BETWEEN $%d AND $%d", len(args)-1, len(args)))

	if len(f.Neighborhoods) > 0 {
		args = append(args, f.Neighborhoods)
		conds = append(conds, fmt.Sprintf("neighborhood = ANY($%d)", len(args)))
	}
	if len(f.Categories) > 0 {
		args = append(args, f.Categories)
		conds = append(conds, fmt.Sprintf("category = ANY($%d)", len(args)))
	}
	if len(f.Weekdays) > 0 {
		args = append(args, f.Weekdays)
		conds = append(conds, fmt.Sprintf("weekday = ANY($%d)", len(args)))
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}
