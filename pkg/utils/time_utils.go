// utils/time_utils.go
package utils

import "time"

const dayLayout = "2006-01-02"

func NowUTC() time.Time { return time.Now().UTC() }

// DayUTC truncates t to midnight UTC. Message and exercise timestamps
// are stored at day granularity.
func DayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func FormatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dayLayout)
}

func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatDOB converts a YYYY-MM-DD date of birth into the stored full form
// plus the 6-digit MMDDYY form used as a lightweight second factor.
func FormatDOB(dob string) (string, string, error) {
	t, err := time.Parse(dayLayout, dob)
	if err != nil {
		return "", "", ErrInvalidDate
	}
	return t.Format(dayLayout), t.Format("010206"), nil
}
