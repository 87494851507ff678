package offline

import (
	"fmt"
	"strconv"
	"time"
)

const startYear = 1950

type Season struct {
	Season string `json:"season"`
	URL    string `json:"url"`
}

type Page struct {
	Count   int      `json:"count"`
	Items   []Season `json:"items"`
	Offline bool     `json:"offline"`
}

// Seasons builds the substitute season listing served when the Ergast API is
// unreachable: every championship year from 1950 through the current UTC year,
// sliced [offset, offset+limit) the same way the upstream pages its results.
// Pure function of the clock and its arguments.
func Seasons(limit, offset int) Page {
	currentYear := time.Now().UTC().Year()

	all := make([]Season, 0, currentYear-startYear+1)
	for y := startYear; y <= currentYear; y++ {
		all = append(all, Season{
			Season: strconv.Itoa(y),
			URL:    fmt.Sprintf("https://en.wikipedia.org/wiki/%d_Formula_One_World_Championship", y),
		})
	}

	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	if offset > len(all) {
		offset = len(all)
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	paged := all[offset:end]
	return Page{Count: len(paged), Items: paged, Offline: true}
}
