package pdf

import (
	"strconv"
	"strings"
)

// ParsePageSpec parses a page specification string and returns a list of
// 1-based page numbers.
// Supports formats: "1", "1,3", "1-5", "1,3-5,7" and descending ranges
// like "7-4" (yielding 7,6,5,4). Order and duplicates are kept exactly as
// typed; validation against the document's page count happens at
// extraction time, so negative or oversized numbers pass through here.
func ParsePageSpec(spec string) ([]int, error) {
	pageList := []int{}
	if spec == "" {
		return pageList, nil
	}

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			// Tolerate trailing commas and stray separators.
			continue
		}

		if strings.Contains(part, "-") {
			// Range like "3-5" or "7-4", split at the first dash.
			startStr, endStr, _ := strings.Cut(part, "-")

			start, err := strconv.Atoi(strings.TrimSpace(startStr))
			if err != nil {
				return nil, &ParseError{Token: part, Reason: "range start is not a number"}
			}

			end, err := strconv.Atoi(strings.TrimSpace(endStr))
			if err != nil {
				return nil, &ParseError{Token: part, Reason: "range end is not a number"}
			}

			pageList = append(pageList, PageRange(start, end)...)
		} else {
			// Single page like "3"
			pageNum, err := strconv.Atoi(part)
			if err != nil {
				return nil, &ParseError{Token: part, Reason: "not a number"}
			}
			pageList = append(pageList, pageNum)
		}
	}

	return pageList, nil
}

// PageRange expands an inclusive start..end range into the page list it
// selects, counting down when start > end.
func PageRange(start, end int) []int {
	step := 1
	if start > end {
		step = -1
	}

	pages := make([]int, 0, (end-start)*step+1)
	for p := start; p != end+step; p += step {
		pages = append(pages, p)
	}
	return pages
}
