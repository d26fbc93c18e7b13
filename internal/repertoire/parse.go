package repertoire

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// Extract collects candidate code points from the LGR page's tables.
//
// The page lists each repertoire character in its own short table cell; the
// extraction rule keeps non-ASCII runes from cells of at most two runes and
// dedups them preserving first-seen order.
func Extract(r io.Reader) ([]rune, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse LGR page: %w", err)
	}

	var candidates []rune
	seen := map[rune]struct{}{}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "td" {
			text := strings.TrimSpace(cellText(n))
			runes := []rune(text)
			if len(runes) > 0 && len(runes) <= 2 {
				for _, cp := range runes {
					if cp <= 127 {
						continue
					}
					if _, ok := seen[cp]; ok {
						continue
					}
					seen[cp] = struct{}{}
					candidates = append(candidates, cp)
				}
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	if len(candidates) == 0 {
		return nil, fmt.Errorf("no candidate code points found in LGR page")
	}
	return candidates, nil
}

// ExtractFile reads and extracts candidates from a local copy of the page.
func ExtractFile(path string) ([]rune, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open LGR page: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Extract(f)
}

func cellText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}
