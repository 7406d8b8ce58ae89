package ingest

import (
	"regexp"
	"strings"

	"github.com/MalithGihan/order-extractor/pkg/types"
)

var (
	// size codes anchor the row boundaries of the table region
	reSizeCode = regexp.MustCompile(`[A-Z]{1,3}\d{2,4}`)
	// what follows a size code: optional letters, quantity, color, fabric type.
	// Spaced rows take whole words in any case; run-together rows split on
	// capitals.
	reRowSpaced = regexp.MustCompile(`^\s*([A-Za-z]*)\s*(\d+)\s+([A-Z]+|[A-Z]?[a-z]+)\s+([A-Z]+|[A-Z]?[a-z]+)(?:\s|$)`)
	reRowJoined = regexp.MustCompile(`^\s*([A-Za-z]*)\s*(\d+)\s*([A-Z][a-z]+)\s*([A-Z][a-z]+)`)

	rowTails = []*regexp.Regexp{reRowSpaced, reRowJoined}
)

// ParseItems segments a table region into line items. Every size code is a
// row anchor: the text before it is the product name, the text after it must
// read as quantity, color and fabric type. Anchors whose tail does not read
// that way produce no item.
//
// A size code keeps the shortest digit run (two to four digits) that lets its
// tail parse, so "ABC1210Blue..." is size ABC12 with quantity 10. Whatever the
// tail pattern does not consume starts the next product name.
func ParseItems(region string) []types.Item {
	anchors := reSizeCode.FindAllStringIndex(region, -1)
	items := make([]types.Item, 0, len(anchors))
	nameStart := 0
	for i, a := range anchors {
		rowEnd := len(region)
		if i+1 < len(anchors) {
			rowEnd = anchors[i+1][0]
		}
		name := strings.TrimSpace(region[nameStart:a[0]])
		nameStart = a[1]

		sizeEnd, m := splitSizeCode(region, a, rowEnd)
		if m == nil {
			continue
		}
		tail := region[sizeEnd:rowEnd]
		items = append(items, types.Item{
			ProductName: name,
			Size:        region[a[0]:sizeEnd],
			Quantity:    tail[m[4]:m[5]],
			Color:       tail[m[6]:m[7]],
			FabricType:  tail[m[8]:m[9]],
		})
		nameStart = sizeEnd + m[1]
	}
	return items
}

// splitSizeCode tries each digit count the code allows, shortest first, and
// returns where the size ends plus the submatch indexes of the tail pattern
// relative to that end. m is nil when no split parses.
func splitSizeCode(region string, anchor []int, rowEnd int) (sizeEnd int, m []int) {
	code := region[anchor[0]:anchor[1]]
	letters := 0
	for letters < len(code) && code[letters] >= 'A' && code[letters] <= 'Z' {
		letters++
	}
	for n := 2; letters+n <= len(code); n++ {
		end := anchor[0] + letters + n
		for _, re := range rowTails {
			if m := re.FindStringSubmatchIndex(region[end:rowEnd]); m != nil {
				return end, m
			}
		}
	}
	return anchor[1], nil
}
