package impl

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// NewTrackingNumber builds "JP" + the last 8 digits of the millisecond clock +
// 4 random digits.
func NewTrackingNumber(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}

	return strings.ToUpper(fmt.Sprintf("JP%s%04d", ms, rand.IntN(10000)))
}

// FormatStatusTime renders the combined status date and time the way
// customer emails show it. Unparseable input is returned as entered.
func FormatStatusTime(date, clock string) string {
	raw := strings.TrimSpace(date + " " + clock)
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t.Format("1/2/2006, 3:04:05 PM")
		}
	}

	return raw
}
