package models

// Candidate is a cell long enough to be a site identifier.
type Candidate struct {
	// Sheet is the sheet owning the cell.
	Sheet string `json:"sheet"`
	// Row is the zero-based row index.
	Row int `json:"row"`
	// Col is the zero-based column index.
	Col int `json:"col"`
	// Text is the stringified, trimmed cell value.
	Text string `json:"text"`
}

// CandidatePool holds the candidates found in one sheet, in row-major order.
type CandidatePool struct {
	// Sheet is the sheet the pool was scanned from.
	Sheet Sheet `json:"-"`
	// Candidates lists every candidate in scan order.
	Candidates []Candidate `json:"candidates"`
}

// Find returns the first candidate whose text equals id exactly.
func (p CandidatePool) Find(id string) (Candidate, bool) {
	for _, c := range p.Candidates {
		if c.Text == id {
			return c, true
		}
	}
	return Candidate{}, false
}

// Sample returns up to n distinct candidate texts in scan order.
func (p CandidatePool) Sample(n int) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, c := range p.Candidates {
		if len(out) >= n {
			break
		}
		if _, ok := seen[c.Text]; ok {
			continue
		}
		seen[c.Text] = struct{}{}
		out = append(out, c.Text)
	}
	return out
}
