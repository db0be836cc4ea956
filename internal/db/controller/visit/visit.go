// Package visit records privacy-preserving page-view events and answers the
// aggregate analytics queries behind the admin dashboard.
package visit

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/clientinfo"
	"github.com/gofolio/gofolio/internal/db/models"
)

const (
	// maxFieldLen bounds path, referrer and user agent before storage.
	maxFieldLen = 500

	// DefaultRetentionDays is how long visits are kept by the purge job.
	DefaultRetentionDays = 90
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// Capture is the raw per-request input to Record.
type Capture struct {
	Path           string
	Referrer       string
	UserAgent      string
	IP             string
	AcceptLanguage string
}

// HashIP returns the one-way digest stored instead of the raw IP. The digest
// is deliberately unsalted: the same IP always hashes identically within a
// deployment, which is what makes distinct-visitor counting work.
func HashIP(ip string) string {
	if ip == "" {
		ip = "unknown"
	}

	sum := sha256.Sum256([]byte(ip))

	return hex.EncodeToString(sum[:])
}

// Record persists one page-view event built from the capture: text fields
// truncated, IP hashed, locale label derived from the first Accept-Language
// tag. The raw IP never reaches the database.
func Record(db *gorm.DB, capture Capture, now time.Time) (*models.PageVisit, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	country := ""
	if tag := clientinfo.PrimaryLanguage(capture.AcceptLanguage); tag != "" {
		country = clientinfo.ParseLocale(tag)
	}

	pv := &models.PageVisit{
		Path:      truncate(capture.Path, maxFieldLen),
		Referrer:  truncate(capture.Referrer, maxFieldLen),
		UserAgent: truncate(capture.UserAgent, maxFieldLen),
		IPHash:    HashIP(capture.IP),
		Country:   country,
		VisitedAt: now.UTC(),
	}

	if result := db.Create(pv); result.Error != nil {
		return nil, result.Error
	}

	return pv, nil
}

// Count returns the total number of recorded visits.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var n int64
	result := db.Model(&models.PageVisit{}).Count(&n)

	return n, result.Error
}

// CountSince returns the number of visits recorded at or after t.
func CountSince(db *gorm.DB, t time.Time) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var n int64
	result := db.Model(&models.PageVisit{}).Where("visited_at >= ?", t.UTC()).Count(&n)

	return n, result.Error
}

// DistinctVisitors returns the number of distinct ip hashes seen.
func DistinctVisitors(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var n int64
	result := db.Model(&models.PageVisit{}).Distinct("ip_hash").Count(&n)

	return n, result.Error
}

// BucketCount is one value/frequency pair of a top-N query.
type BucketCount struct {
	Value string
	Count int64
}

// TopPaths returns the n most visited paths by frequency.
func TopPaths(db *gorm.DB, n int) ([]BucketCount, error) {
	return topColumn(db, "path", n, false)
}

// TopReferrers returns the n most frequent non-empty referrers.
func TopReferrers(db *gorm.DB, n int) ([]BucketCount, error) {
	return topColumn(db, "referrer", n, true)
}

// TopLocales returns the n most frequent non-empty locale labels.
func TopLocales(db *gorm.DB, n int) ([]BucketCount, error) {
	return topColumn(db, "country", n, true)
}

func topColumn(db *gorm.DB, column string, n int, skipEmpty bool) ([]BucketCount, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	query := db.Model(&models.PageVisit{}).
		Select(column + " AS value, COUNT(*) AS count").
		Group(column).
		Order("count DESC").
		Limit(n)

	if skipEmpty {
		query = query.Where(column+" <> ?", "")
	}

	var out []BucketCount
	result := query.Scan(&out)

	return out, result.Error
}

// DayCount is one day of the daily time series.
type DayCount struct {
	// Date is the calendar date label, formatted 2006-01-02, in UTC.
	Date string
	// Count is the number of visits on that date.
	Count int64
}

// DailySeries returns a fixed-length series of visit counts for the trailing
// days calendar days ending today (UTC), zero-filling days with no traffic.
// Bucketing happens in Go so the query stays portable across engines.
func DailySeries(db *gorm.DB, days int, now time.Time) ([]DayCount, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	today := now.UTC().Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, -(days - 1))

	var stamps []time.Time
	result := db.Model(&models.PageVisit{}).
		Where("visited_at >= ?", start).
		Pluck("visited_at", &stamps)
	if result.Error != nil {
		return nil, result.Error
	}

	perDay := make(map[string]int64, days)
	for _, ts := range stamps {
		perDay[ts.UTC().Format(time.DateOnly)]++
	}

	series := make([]DayCount, 0, days)
	for d := 0; d < days; d++ {
		date := start.AddDate(0, 0, d).Format(time.DateOnly)
		series = append(series, DayCount{Date: date, Count: perDay[date]})
	}

	return series, nil
}

// BounceRate returns the percentage of distinct visitors with exactly one
// recorded page view, 0 when there are no visitors.
func BounceRate(db *gorm.DB) (float64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	visitors, err := DistinctVisitors(db)
	if err != nil {
		return 0, err
	}

	if visitors == 0 {
		return 0, nil
	}

	singleVisit := db.Model(&models.PageVisit{}).
		Select("ip_hash").
		Group("ip_hash").
		Having("COUNT(*) = 1")

	var single int64
	result := db.Table("(?) AS single_visitors", singleVisit).Count(&single)
	if result.Error != nil {
		return 0, result.Error
	}

	return float64(single) / float64(visitors) * 100, nil
}

// UsageBreakdown holds the browser/OS/device frequency maps derived from the
// stored user-agent strings.
type UsageBreakdown struct {
	Browsers map[string]int64
	Systems  map[string]int64
	Devices  map[string]int64
}

// Breakdowns classifies every stored user-agent string. Classification runs
// in Go because the ordered substring rules live in clientinfo, not in SQL.
func Breakdowns(db *gorm.DB) (*UsageBreakdown, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var agents []string
	result := db.Model(&models.PageVisit{}).Pluck("user_agent", &agents)
	if result.Error != nil {
		return nil, result.Error
	}

	out := &UsageBreakdown{
		Browsers: make(map[string]int64),
		Systems:  make(map[string]int64),
		Devices:  make(map[string]int64),
	}

	for _, ua := range agents {
		info := clientinfo.ParseUserAgent(ua)
		out.Browsers[info.Browser]++
		out.Systems[info.OS]++
		out.Devices[info.Device]++
	}

	return out, nil
}

// RecentVisits returns the n most recent visits, newest first.
func RecentVisits(db *gorm.DB, n int) ([]models.PageVisit, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var visits []models.PageVisit
	result := db.Order("visited_at DESC").Limit(n).Find(&visits)

	return visits, result.Error
}

// Purge deletes all visits older than the given number of days and reports
// how many rows were removed. Zero or negative days falls back to the
// default retention.
func Purge(db *gorm.DB, days int, now time.Time) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	if days <= 0 {
		days = DefaultRetentionDays
	}

	cutoff := now.UTC().AddDate(0, 0, -days)

	result := db.Where("visited_at < ?", cutoff).Delete(&models.PageVisit{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max])
}
