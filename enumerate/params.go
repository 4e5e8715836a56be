package enumerate

import (
	"strconv"
	"strings"
)

// parseParams extracts the period, preperiod, and degree fields a pipeline
// stage formatted into its params string (see cyclerParams/tcyclerParams/
// bouncerParams in pipeline.go). Missing fields default to 0, which never
// trips a positive MinX filter.
func parseParams(params string) (period, preperiod int64, degree int) {
	for _, field := range strings.Fields(params) {
		key, val, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		switch key {
		case "period":
			period, _ = strconv.ParseInt(val, 10, 64)
		case "preperiod":
			preperiod, _ = strconv.ParseInt(val, 10, 64)
		case "degree":
			degree, _ = strconv.Atoi(val)
		}
	}

	return period, preperiod, degree
}
