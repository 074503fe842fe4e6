package config

import (
	"strconv"
	"strings"
	"time"
)

// FormatPrompt expands the interactive prompt placeholders %datetime, %date,
// %time, %counter, %usage and %effort. The result always ends with a space
// and a literal \n becomes a newline.
func FormatPrompt(str string, counter, usage int, effort string, now time.Time) string {
	if str == "" {
		return ""
	}

	replacer := strings.NewReplacer(
		"%datetime", now.Format("2006-01-02 15:04:05"),
		"%date", now.Format("2006-01-02"),
		"%time", now.Format("15:04:05"),
		"%counter", strconv.Itoa(counter),
		"%usage", strconv.Itoa(usage),
		"%effort", effort,
		"\\n", "\n",
	)
	str = replacer.Replace(str)

	if !strings.HasSuffix(str, " ") {
		str += " "
	}

	return str
}
