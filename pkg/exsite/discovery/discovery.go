// Package discovery finds a site row in a workbook without a fixed schema.
//
// Every cell long enough to be an identifier is a candidate. Sheets with too
// few candidates are not lookup tables and are dropped. The first retained
// sheet holding the target identifier wins, and the fields are read from the
// columns right after the match.
package discovery

import (
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/exsite-go/pkg/exsite/models"
	"go.uber.org/zap"
)

// minPoolSize is the smallest candidate count a lookup table can have.
const minPoolSize = 3

// sampleSize bounds the sample ids reported per sheet on a miss.
const sampleSize = 10

// Options configures candidate scanning.
type Options struct {
	// MinIdentifierLength is the minimum trimmed length of a candidate.
	MinIdentifierLength int
	// ExcludeKeywords removes sheets whose name contains any keyword,
	// compared case-insensitively.
	ExcludeKeywords []string
	// Logger receives scan diagnostics. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns the default scanning options.
func DefaultOptions() Options {
	return Options{
		MinIdentifierLength: 4,
		ExcludeKeywords:     []string{"template", "variables", "config"},
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// IsExcluded reports whether a sheet name contains an exclusion keyword.
func (o Options) IsExcluded(sheetName string) bool {
	lower := strings.ToLower(sheetName)
	for _, kw := range o.ExcludeKeywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// ScanSheet collects the candidates of one sheet in row-major order.
func ScanSheet(sheet models.Sheet, minLength int) models.CandidatePool {
	pool := models.CandidatePool{Sheet: sheet}
	for rowIdx, row := range sheet.Rows {
		for colIdx, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			text := cell.Trimmed()
			if utf8.RuneCountInString(text) < minLength {
				continue
			}
			pool.Candidates = append(pool.Candidates, models.Candidate{
				Sheet: sheet.Name,
				Row:   rowIdx,
				Col:   colIdx,
				Text:  text,
			})
		}
	}
	return pool
}

// Scan returns the retained candidate pools of a workbook in sheet order.
func Scan(wb *models.Workbook, opts Options) []models.CandidatePool {
	log := opts.logger()
	var pools []models.CandidatePool

	for _, sheet := range wb.Sheets {
		if opts.IsExcluded(sheet.Name) {
			log.Debug("skipping template/config sheet", zap.String("sheet", sheet.Name))
			continue
		}
		pool := ScanSheet(sheet, opts.MinIdentifierLength)
		if !IsLookupTable(pool) {
			log.Debug("sheet is not a lookup table",
				zap.String("sheet", sheet.Name),
				zap.Int("candidates", len(pool.Candidates)))
			continue
		}
		log.Debug("lookup table candidate",
			zap.String("sheet", sheet.Name),
			zap.Int("candidates", len(pool.Candidates)),
			zap.Strings("sample", pool.Sample(5)))
		pools = append(pools, pool)
	}

	return pools
}

// IsLookupTable reports whether a pool holds enough candidates to be a
// lookup table.
func IsLookupTable(pool models.CandidatePool) bool {
	return len(pool.Candidates) >= minPoolSize
}

// Discover finds targetID in the workbook and reads its site row.
// It returns a *NotFoundError when no retained sheet holds the identifier.
func Discover(wb *models.Workbook, targetID string, opts Options) (*models.RawRecord, error) {
	pools := Scan(wb, opts)
	return Lookup(pools, targetID, opts.logger())
}

// Lookup searches already scanned pools in order; the first sheet with an
// exact match wins.
func Lookup(pools []models.CandidatePool, targetID string, logger *zap.Logger) (*models.RawRecord, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, pool := range pools {
		match, ok := pool.Find(targetID)
		if !ok {
			continue
		}
		logger.Info("identifier found",
			zap.String("site_id", targetID),
			zap.String("sheet", match.Sheet),
			zap.Int("row", match.Row),
			zap.Int("col", match.Col))
		return readRow(pool.Sheet, match), nil
	}

	notFound := &NotFoundError{Target: targetID}
	for _, pool := range pools {
		notFound.Samples = append(notFound.Samples, SheetSample{
			Sheet: pool.Sheet.Name,
			IDs:   pool.Sample(sampleSize),
		})
	}
	return nil, notFound
}

// readRow maps the text cells of the matched row to fields by their offset
// from the identifier column. Other columns are ignored.
func readRow(sheet models.Sheet, match models.Candidate) *models.RawRecord {
	rec := &models.RawRecord{
		Sheet:  match.Sheet,
		Row:    match.Row,
		Col:    match.Col,
		Fields: map[models.Field]string{models.FieldSiteID: match.Text},
	}

	for colIdx, cell := range sheet.Row(match.Row) {
		field, ok := models.FieldOffsets[colIdx-match.Col]
		if !ok || field == models.FieldSiteID {
			continue
		}
		if cell.IsEmpty() || !cell.IsText() || cell.Len() <= 2 {
			continue
		}
		rec.Fields[field] = cell.String()
	}

	return rec
}
