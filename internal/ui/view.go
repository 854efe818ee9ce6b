package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/tiledeck/internal/engine"
	"github.com/atomicstack/tiledeck/internal/tiles"
)

const (
	categoryLabelWidth = 14
	tileCellWidth      = 16
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 24)
	if m.eng.Degenerate() {
		lines = append(lines, styledLine{text: "tiledeck", style: styles.Header})
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "No tiles yet.", style: styles.Info})
		lines = append(lines, styledLine{text: "Press enter to create your first tile.", style: styles.Info})
	} else {
		lines = append(lines, styledLine{text: m.headerLine(), style: styles.Header})
		lines = append(lines, styledLine{})
		lines = append(lines, m.gridLines()...)
	}
	if mode := m.modeLine(); mode != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: mode, style: styles.HoldIndicator})
	}
	if m.dialogActive() {
		lines = append(lines, styledLine{})
		lines = append(lines, m.dialogLines()...)
	} else if detail := m.detailLines(); len(detail) > 0 {
		lines = append(lines, styledLine{})
		lines = append(lines, detail...)
	}
	if toast, isErr := m.currentToast(); toast != "" {
		toastStyle := styles.Toast
		if isErr {
			toastStyle = styles.Error
		}
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: toast, style: toastStyle})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.footerLine(), style: styles.Footer})
	}

	bottomRows := 0
	if m.searching {
		bottomRows = 1
	}
	lines = limitHeight(lines, m.height-bottomRows, m.width)
	lines = applyWidth(lines, m.width)
	out := renderLines(lines)
	if m.searching {
		out += "\n" + m.searchLine()
	}
	return out
}

func (m *Model) headerLine() string {
	cat := m.eng.SelectedCategory()
	if cat == nil {
		return "tiledeck"
	}
	total := len(m.eng.Tree().Categories)
	return fmt.Sprintf("tiledeck — %s (%d/%d)", cat.Name, m.eng.SelectedCategoryIndex()+1, total)
}

// gridLines renders one row per visible category: the label column and the
// horizontal tile cells.
func (m *Model) gridLines() []styledLine {
	tree := m.eng.Tree()
	if tree == nil {
		return nil
	}
	rows := tree.Categories
	visible := m.maxVisibleRows()
	start := 0
	if visible > 0 && len(rows) > visible {
		start = m.syncRowViewport(len(rows), visible)
		end := start + visible
		if end > len(rows) {
			end = len(rows)
		}
		rows = rows[start:end]
	}
	lines := make([]styledLine, 0, len(rows))
	for i, cat := range rows {
		lines = append(lines, styledLine{text: m.renderCategoryRow(cat, start+i), raw: true})
	}
	return lines
}

// syncRowViewport keeps the selected category row inside the viewport and
// returns the first visible row index.
func (m *Model) syncRowViewport(total, visible int) int {
	sel := m.eng.SelectedCategoryIndex()
	if m.rowOffset > sel {
		m.rowOffset = sel
	}
	if sel >= m.rowOffset+visible {
		m.rowOffset = sel - visible + 1
	}
	if m.rowOffset > total-visible {
		m.rowOffset = total - visible
	}
	if m.rowOffset < 0 {
		m.rowOffset = 0
	}
	return m.rowOffset
}

func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // header + separator
	used += 4 // detail or dialog block
	if m.showFooter {
		used += 2
	}
	if m.searching {
		used++
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) renderCategoryRow(cat *tiles.Category, catIdx int) string {
	label := truncate.StringWithTail(cat.Name, uint(categoryLabelWidth-1), "…")
	if pad := categoryLabelWidth - runewidth.StringWidth(label); pad > 0 {
		label += strings.Repeat(" ", pad)
	}
	var b strings.Builder
	if catIdx == m.eng.SelectedCategoryIndex() {
		b.WriteString(styles.CategoryLabel.Render(label))
	} else {
		b.WriteString(styles.Info.Render(label))
	}
	if len(cat.Tiles) == 0 {
		b.WriteString(styles.Info.Render("(empty)"))
		return b.String()
	}
	for _, tile := range cat.Tiles {
		b.WriteString(m.renderTileCell(tile))
		b.WriteByte(' ')
	}
	return strings.TrimRight(b.String(), " ")
}

func (m *Model) renderTileCell(tile *tiles.Tile) string {
	name := truncate.StringWithTail(tile.Name, uint(tileCellWidth-3), "…")
	cell := " " + name
	if pad := tileCellWidth - runewidth.StringWidth(cell) - 1; pad > 0 {
		cell += strings.Repeat(" ", pad)
	}
	cell += " "
	return m.tileCellStyle(tile).Render(cell)
}

// tileCellStyle picks the cell style from the engine's style descriptor:
// the carried tile while moving, the selection highlight, the dimmed rest
// of the grid during a move, or the tile's own colors.
func (m *Model) tileCellStyle(tile *tiles.Tile) lipgloss.Style {
	desc := m.eng.StyleOf(tile)
	selected := tile == m.eng.SelectedTile()
	switch {
	case selected && m.eng.State() == engine.Moving:
		return *styles.CarriedTile
	case selected:
		return *styles.SelectedTile
	case desc.Dimmed:
		return *styles.DimmedTile
	}
	style := *styles.Tile
	if desc.BackgroundColor != "" {
		style = style.Background(lipgloss.Color(desc.BackgroundColor))
	}
	if desc.TextColor != "" {
		style = style.Foreground(lipgloss.Color(desc.TextColor))
	}
	return style
}

func (m *Model) modeLine() string {
	switch m.eng.State() {
	case engine.Moving:
		if tile := m.eng.SelectedTile(); tile != nil {
			return fmt.Sprintf("Moving %s — arrows place, enter drops", tile.Name)
		}
		return "Moving — arrows place, enter drops"
	case engine.Holding:
		if m.eng.HoldActive() {
			return "Holding…"
		}
	}
	return ""
}

func (m *Model) dialogLines() []styledLine {
	d := m.dlg
	lines := make([]styledLine, 0, 2)
	if prompt := d.Prompt(); prompt != "" {
		lines = append(lines, styledLine{text: prompt, style: styles.DialogPrompt})
	}
	var b strings.Builder
	for i, action := range d.Actions() {
		if i > 0 {
			b.WriteString("  ")
		}
		caption := action.Caption
		if action.Icon != "" {
			caption = action.Icon + " " + caption
		}
		if i == d.Index() {
			b.WriteString(styles.DialogSelected.Render(" " + caption + " "))
		} else {
			b.WriteString(styles.DialogAction.Render(" " + caption + " "))
		}
	}
	lines = append(lines, styledLine{text: b.String(), raw: true})
	return lines
}

func (m *Model) detailLines() []styledLine {
	tile := m.eng.SelectedTile()
	if tile == nil {
		return nil
	}
	lines := []styledLine{
		{text: tile.Name, style: styles.DetailTitle},
		{text: "command: " + tile.Command, style: styles.DetailBody},
	}
	if tile.BackgroundColor != "" || tile.TextColor != "" {
		lines = append(lines, styledLine{
			text:  fmt.Sprintf("colors: %s on %s", orDash(tile.TextColor), orDash(tile.BackgroundColor)),
			style: styles.DetailBody,
		})
	}
	if tile.Image != "" {
		lines = append(lines, styledLine{text: "image: " + tile.Image, style: styles.DetailBody})
	}
	return lines
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

func (m *Model) footerLine() string {
	if m.dialogActive() {
		return "←/→ choose  enter confirm  esc cancel"
	}
	if m.eng.State() == engine.Moving {
		return "arrows place tile  enter drop  ctrl+c quit"
	}
	return "arrows move  enter launch  hold enter edit  / search  esc quit"
}

func (m *Model) searchLine() string {
	line := m.searchInput.View()
	if query := m.searchInput.Value(); strings.TrimSpace(query) != "" {
		line += styles.SearchMatch.Render(fmt.Sprintf("  (%d matches)", len(m.searchMatches())))
	}
	if m.width > 0 {
		line = truncate.StringWithTail(line, uint(m.width), "…")
	}
	return line
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if w := lipgloss.Width(text); w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw || line.style == nil {
			out[i] = line.text
			continue
		}
		out[i] = line.style.Render(line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
