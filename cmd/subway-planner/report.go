package main

import (
	"fmt"
	"log"
	"sort"
	"strings"

	lib "github.com/theoremus-urban-solutions/subway-planner"
)

const bannerWidth = 60

func banner(title string) {
	log.Println(strings.Repeat("=", bannerWidth))
	log.Println(title)
	log.Println(strings.Repeat("=", bannerWidth))
}

func reportLines(p *lib.Planner) {
	banner("QUESTION 1: Subway Routes")
	for _, ln := range p.ListSubwayLines() {
		log.Printf("  - %s", ln.Name)
	}
}

func reportStops(p *lib.Planner) {
	log.Println("Stops available for -start and -end:")
	for _, name := range p.StopNames() {
		log.Printf("  - %s", name)
	}
}

func reportExtremesAndTransfers(p *lib.Planner) {
	ext := p.StopExtremes()
	banner("QUESTION 2: Route Statistics")
	logExtreme("Route(s) with most stops", ext.MaxLines, ext.MaxCount)
	logExtreme("Route(s) with fewest stops", ext.MinLines, ext.MinCount)

	transfers := p.TransferStops()
	if len(transfers) == 0 {
		log.Println("No stops connect multiple routes.")
		return
	}
	log.Printf("Transfer Stations (%d total):", len(transfers))
	log.Println(strings.Repeat("-", bannerWidth))

	names := make([]string, 0, len(transfers))
	width := 0
	for name := range transfers {
		names = append(names, name)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		// dotted padding keeps the line columns readable in plain logs
		padding := strings.Repeat(".", width-len(name)+2)
		log.Printf("  %s %s [%s]", name, padding, strings.Join(transfers[name], ", "))
	}
}

func logExtreme(label string, lines []lib.Line, count int) {
	for _, ln := range lines {
		log.Printf("%s: %s (%d stops)", label, ln.Name, count)
	}
}

func reportRoute(p *lib.Planner, start, end string) error {
	route, err := p.FindRoute(start, end)
	if err != nil {
		return err
	}
	banner(fmt.Sprintf("QUESTION 3: Route from %s to %s", start, end))
	cat := p.Catalog()
	if len(route.Hops) == 0 {
		log.Printf("  Already at %s, no travel needed.", cat.StopName(route.Start))
		return nil
	}
	from := route.Start
	for _, hop := range route.Hops {
		log.Printf("  %s --[%s]--> %s", cat.StopName(from), cat.LineName(hop.Line), cat.StopName(hop.Stop))
		from = hop.Stop
	}
	return nil
}
