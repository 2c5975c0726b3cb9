package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"bevauto/format"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderSummary 는 실행 결과를 콘솔 표로 만듭니다.
func renderSummary(res *runResult) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("작업 완료") + "\n")
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("run %s · %.2f초 · %s", res.RunID, res.Elapsed.Seconds(), res.RunDir)) + "\n\n")

	if len(res.Summaries) > 0 {
		rows := make([][]string, 0, len(res.Summaries))
		for _, s := range res.Summaries {
			rows = append(rows, []string{
				s.CompanyCode,
				s.CompanyNameOriginal,
				fmt.Sprintf("%d", s.ItemTypeCount),
				format.Quantity(s.TotalQuantity),
			})
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("업체코드", "업체명", "품목 수", "총 수량").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				if col >= 2 {
					return cellStyle.Align(lipgloss.Right)
				}
				return cellStyle
			})
		sb.WriteString(t.Render() + "\n")
		sb.WriteString(fmt.Sprintf("주문 %d행 → %d행 (제외 %d)\n",
			res.Filter.Original, res.Filter.Retained, res.Filter.Removed))
	}

	if len(res.Unmapped) > 0 {
		sb.WriteString(warnStyle.Render(fmt.Sprintf("매핑되지 않은 업체 %d곳: %s",
			len(res.Unmapped), strings.Join(res.Unmapped, ", "))) + "\n")
	}
	if res.Emit != nil {
		sb.WriteString(fmt.Sprintf("문서 %d개 생성", len(res.Emit.Artifacts)))
		if n := len(res.Emit.Failures); n > 0 {
			sb.WriteString(warnStyle.Render(fmt.Sprintf(", 실패 %d건", n)))
		}
		sb.WriteString("\n")
	}
	if res.Inventory != nil {
		sb.WriteString(fmt.Sprintf("재고표 %d개 품목", len(res.Inventory.Records)))
		if n := len(res.Inventory.Failures); n > 0 {
			sb.WriteString(warnStyle.Render(fmt.Sprintf(", 실패 %d건", n)))
		}
		sb.WriteString("\n")
	}
	for _, path := range res.Exports {
		sb.WriteString(mutedStyle.Render("  "+path) + "\n")
	}
	return sb.String()
}
