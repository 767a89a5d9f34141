package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/osse101/ArcPlanner_Go/internal/crafting"
)

const (
	branchMid  = "├─ "
	branchLast = "└─ "
	pipeMid    = "│  "
	pipeBlank  = "   "
)

// Renderer writes plan sections to w
type Renderer struct {
	w      io.Writer
	styles Styles
}

// NewRenderer creates a renderer writing to w
func NewRenderer(w io.Writer, styles Styles) *Renderer {
	return &Renderer{w: w, styles: styles}
}

// Plan writes every tree followed by the raw material table and sources
func (r *Renderer) Plan(plan *crafting.Plan) error {
	var sb strings.Builder

	sb.WriteString(r.styles.Title.Render("Crafting trees"))
	sb.WriteString("\n")
	for _, root := range plan.Roots {
		sb.WriteString(r.tree(root))
	}
	sb.WriteString("\n")
	sb.WriteString(r.requirements(plan.Requirements))
	sb.WriteString("\n")
	sb.WriteString(r.sources(plan.Requirements, plan.Sources))
	sb.WriteString("\n")
	sb.WriteString(r.styles.Muted.Render(fmt.Sprintf("Equipped: %d items, %s kg, value %s",
		plan.Totals.Items, formatNumber(plan.Totals.WeightKg), formatNumber(plan.Totals.Value))))
	sb.WriteString("\n")

	_, err := io.WriteString(r.w, sb.String())
	return err
}

// Tree writes a single crafting tree
func (r *Renderer) Tree(root *crafting.Node) error {
	_, err := io.WriteString(r.w, r.tree(root))
	return err
}

// Predecessor writes the tier below an item
func (r *Renderer) Predecessor(info *crafting.PredecessorInfo) error {
	line := info.ItemID + " has no lower tier"
	switch {
	case info.Predecessor != nil:
		line = fmt.Sprintf("%s upgrades from %s (%s)", info.ItemID,
			r.styles.itemName(info.Predecessor, info.PredecessorID), info.PredecessorID)
	case info.HasPredecessor:
		line = fmt.Sprintf("%s upgrades from %s", info.ItemID, r.styles.itemName(nil, info.PredecessorID))
	}
	_, err := io.WriteString(r.w, line+"\n")
	return err
}

func (r *Renderer) tree(root *crafting.Node) string {
	if root == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(r.nodeLabel(root))
	sb.WriteString("\n")
	r.writeChildren(&sb, root, "")
	return sb.String()
}

func (r *Renderer) writeChildren(sb *strings.Builder, n *crafting.Node, prefix string) {
	for i, child := range n.Children {
		last := i == len(n.Children)-1
		branch, pipe := branchMid, pipeMid
		if last {
			branch, pipe = branchLast, pipeBlank
		}
		sb.WriteString(r.styles.Muted.Render(prefix + branch))
		sb.WriteString(r.nodeLabel(child))
		sb.WriteString("\n")
		r.writeChildren(sb, child, prefix+pipe)
	}
}

func (r *Renderer) nodeLabel(n *crafting.Node) string {
	label := r.styles.Quantity.Render(fmt.Sprintf("%d×", n.Quantity)) + " " + r.styles.itemName(n.Item, n.ItemID)
	if n.Total != n.Quantity {
		label += r.styles.Muted.Render(fmt.Sprintf(" (total %s)", quantity(n.Total, n.Saturated)))
	}
	if n.IsUpgrade {
		label += r.styles.Muted.Render(" [upgrade]")
	}
	if n.Truncated {
		label += r.styles.Warning.Render(" [" + n.TruncatedReason + "]")
	}
	return label
}

func (r *Renderer) requirements(reqs []crafting.Requirement) string {
	t := newTable("Raw materials", "Item", "ID", "Quantity")
	for _, req := range reqs {
		t.addRow(r.styles.itemName(req.Item, req.ItemID), req.ItemID, quantity(req.Quantity, req.Saturated))
	}
	return t.render(r.styles)
}

// quantity renders a clamped count as a lower bound, e.g. ">=9223372036854775807"
func quantity(n int, saturated bool) string {
	if saturated {
		return ">=" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func (r *Renderer) sources(reqs []crafting.Requirement, sources map[string][]crafting.Source) string {
	var sb strings.Builder
	sb.WriteString(r.styles.Title.Render("Recycling sources"))
	sb.WriteString("\n")

	ids := make([]string, 0, len(sources))
	seen := make(map[string]bool, len(reqs))
	for _, req := range reqs {
		ids = append(ids, req.ItemID)
		seen[req.ItemID] = true
	}
	var extra []string
	for id := range sources {
		if !seen[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	ids = append(ids, extra...)

	for _, id := range ids {
		list := sources[id]
		if len(list) == 0 {
			sb.WriteString(fmt.Sprintf("%s: %s\n", id, r.styles.Muted.Render("none")))
			continue
		}
		names := make([]string, 0, len(list))
		for _, src := range list {
			names = append(names, fmt.Sprintf("%s (%d)", r.styles.itemName(src.Item, src.Item.ID), src.Yield))
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", id, strings.Join(names, ", ")))
	}
	return sb.String()
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

type table struct {
	title   string
	headers []string
	rows    [][]string
}

func newTable(title string, headers ...string) *table {
	return &table{title: title, headers: headers}
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render(styles Styles) string {
	var sb strings.Builder
	if t.title != "" {
		sb.WriteString(styles.Title.Render(t.title))
		sb.WriteString("\n")
	}
	if len(t.rows) == 0 {
		sb.WriteString(styles.Muted.Render("nothing required"))
		sb.WriteString("\n")
		return sb.String()
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	// Cell padding adds one column on each side
	for i := range widths {
		widths[i] += 2
	}

	writeRow := func(cells []string, style lipgloss.Style) {
		for i := range t.headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			sb.WriteString(style.Width(widths[i]).Render(cell))
			if i < len(t.headers)-1 {
				sb.WriteString(styles.Muted.Render(styles.Separator))
			}
		}
		sb.WriteString("\n")
	}

	writeRow(t.headers, styles.Header)
	for i, w := range widths {
		sb.WriteString(styles.Muted.Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			sb.WriteString(styles.Muted.Render("┼"))
		}
	}
	sb.WriteString("\n")
	for _, row := range t.rows {
		writeRow(row, styles.Cell)
	}
	return sb.String()
}
