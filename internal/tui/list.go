package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-clip-keeper/models"
)

// PreviewWidth is the number of runes of a preview shown in the list.
const PreviewWidth = 60

// RenderItems formats items as a table with one row per item. now is used
// for the relative age column.
func RenderItems(items []models.ItemView, locked bool, now time.Time) string {
	if len(items) == 0 {
		return helpStyle.Render("clipboard history is empty") + "\n"
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		pin := ""
		if it.IsPinned {
			pin = "*"
		}

		preview := it.Preview
		if preview == "" && it.Kind == models.KindText && locked {
			preview = "(locked)"
		}

		rows = append(rows, []string{
			strconv.FormatInt(it.ID, 10),
			pin,
			it.Kind.String(),
			formatSize(it.Size),
			formatAge(time.UnixMilli(it.CreatedAt), now),
			valueOrDash(fitText(oneLine(preview), PreviewWidth)),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(items) && items[row].IsPinned:
				return pinnedStyle
			default:
				return cellStyle
			}
		}).
		Headers("ID", "PIN", "KIND", "SIZE", "CREATED", "PREVIEW").
		Rows(rows...)

	return t.Render() + "\n"
}
