package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"PriceTracker/internal/model"
)

// FileName encodes a period as "<month>.<year><ext>", e.g. "2.2023.csv".
func FileName(p model.Period, ext string) string {
	return fmt.Sprintf("%d.%d%s", int(p.Month), p.Year, ext)
}

// Stem is the "<month>.<year>" part used as a date label.
func Stem(p model.Period) string {
	return fmt.Sprintf("%d.%d", int(p.Month), p.Year)
}

// ParseFileName decodes a "<month>.<year>.<ext>" base name.
func ParseFileName(name string) (model.Period, error) {
	parts := strings.SplitN(name, ".", 3)
	if len(parts) < 3 {
		return model.Period{}, fmt.Errorf("%w: file name %q", model.ErrMalformedPeriod, name)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return model.Period{}, fmt.Errorf("%w: month in file name %q", model.ErrMalformedPeriod, name)
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 4 {
		return model.Period{}, fmt.Errorf("%w: year in file name %q", model.ErrMalformedPeriod, name)
	}
	return model.Period{Year: year, Month: time.Month(month)}, nil
}
