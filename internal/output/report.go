package output

import (
	"github.com/rpgo/investment-calculator/internal/domain"
)

// GenerateReport writes results in the named format to a timestamped file in dir and returns its
// path. The format "all" writes every registered formatter and returns the last path.
func GenerateReport(results *domain.ScenarioComparison, format, dir string, loc ReportLocale) (string, error) {
	if NormalizeFormatName(format) == "all" {
		var last string
		for _, f := range builtInFormatters {
			path, err := WriteFormatted(GetLocalizedFormatter(f.Name(), loc), results, dir, FileExtension(f.Name()))
			if err != nil {
				return "", err
			}
			last = path
		}
		return last, nil
	}

	f := GetLocalizedFormatter(format, loc)
	if f == nil {
		return "", UnsupportedFormatError(format)
	}
	return WriteFormatted(f, results, dir, FileExtension(f.Name()))
}
