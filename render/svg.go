package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"

	"github.com/halvard/graphgram/graph"
)

const (
	nodeRadius    = 14.0
	canvasMargin  = 40.0
	minRadius     = 60.0
	selfLoopSize  = 22.0
	arrowMarkerID = "arrow"
)

// SVG renders g as a standalone SVG document. Nodes are placed evenly
// around a circle sized to the node count; tags are drawn as text
// labels; directed graphs get arrowheads.
func SVG(g *graph.Graph) string {
	nodes := g.Nodes()
	pos := layout(nodes)

	size := 2 * (layoutRadius(len(nodes)) + canvasMargin + nodeRadius)

	var b bytes.Buffer
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%.0f\" height=\"%.0f\" viewBox=\"0 0 %.0f %.0f\">\n",
		size, size, size, size)

	if g.Directed() {
		writeArrowMarker(&b)
	}

	for _, e := range g.Edges() {
		writeEdge(&b, e, pos, g.Directed())
	}
	for _, id := range nodes {
		tag, _ := g.NodeTag(id)
		writeNode(&b, id, pos[id], tag)
	}

	b.WriteString("</svg>\n")
	return b.String()
}

type point struct{ x, y float64 }

func layoutRadius(n int) float64 {
	if n <= 1 {
		return 0
	}
	spacing := 2*nodeRadius + 12
	circumference := float64(n) * spacing
	r := circumference / (2 * math.Pi)
	if r < minRadius {
		return minRadius
	}
	return r
}

func layout(nodes []int) map[int]point {
	n := len(nodes)
	r := layoutRadius(n)
	center := r + canvasMargin + nodeRadius
	pos := make(map[int]point, n)

	if n == 1 {
		pos[nodes[0]] = point{center, center}
		return pos
	}
	for i, id := range nodes {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pos[id] = point{
			x: center + r*math.Cos(theta),
			y: center + r*math.Sin(theta),
		}
	}
	return pos
}

func writeArrowMarker(b *bytes.Buffer) {
	fmt.Fprintf(b, `<defs><marker id="%s" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="6" markerHeight="6" orient="auto-start-reverse"><path d="M 0 0 L 10 5 L 0 10 z" fill="black"/></marker></defs>`+"\n", arrowMarkerID)
}

func writeEdge(b *bytes.Buffer, e graph.Edge, pos map[int]point, directed bool) {
	from, to := pos[e.From], pos[e.To]

	if e.From == e.To {
		writeSelfLoop(b, from, e.Tag)
		return
	}

	marker := ""
	if directed {
		marker = fmt.Sprintf(` marker-end="url(#%s)"`, arrowMarkerID)
	}
	fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="black"%s/>`+"\n",
		from.x, from.y, to.x, to.y, marker)

	if e.Tag != nil {
		mx, my := (from.x+to.x)/2, (from.y+to.y)/2
		writeLabel(b, mx, my, *e.Tag)
	}
}

func writeSelfLoop(b *bytes.Buffer, p point, tag *string) {
	cx, cy := p.x, p.y-nodeRadius-selfLoopSize/2
	fmt.Fprintf(b, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="black"/>`+"\n",
		cx, cy, selfLoopSize/2)
	if tag != nil {
		writeLabel(b, cx, cy-selfLoopSize, *tag)
	}
}

func writeNode(b *bytes.Buffer, id int, p point, tag *string) {
	fmt.Fprintf(b, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="white" stroke="black"/>`+"\n",
		p.x, p.y, nodeRadius)
	label := fmt.Sprintf("%d", id)
	if tag != nil {
		label = *tag
	}
	writeLabel(b, p.x, p.y+4, label)
}

func writeLabel(b *bytes.Buffer, x, y float64, text string) {
	b.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-size="11">`, x, y))
	xml.EscapeText(b, []byte(text))
	b.WriteString("</text>\n")
}
