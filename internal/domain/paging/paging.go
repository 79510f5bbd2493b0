package paging

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page is a 1-indexed page request.
type Page struct {
	Number int
	Limit  int
}

// New clamps page to >= 1 and limit to [1, MaxLimit]; a zero or negative
// limit falls back to DefaultLimit.
func New(number, limit int) Page {
	if number < 1 {
		number = 1
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Number: number, Limit: limit}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// Pages is ceil(total / limit).
func (p Page) Pages(total int64) int {
	if p.Limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}

// Info is the pagination block returned next to a listing.
type Info struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func (p Page) Info(total int64) Info {
	return Info{
		Page:  p.Number,
		Limit: p.Limit,
		Total: total,
		Pages: p.Pages(total),
	}
}
