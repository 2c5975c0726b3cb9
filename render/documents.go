package render

import (
	"fmt"
	"html"
	"strings"
	"time"

	"bevauto/format"
	"bevauto/model"
)

// labelLineRunes 를 넘는 제품명은 라벨에서 두 줄로 나눕니다.
const labelLineRunes = 20

const baseStyle = `@page { size: A4; margin: 15mm 20mm; }
body { margin: 0; color: #000; }
h1 { text-align: center; font-size: 24pt; margin: 0 0 12px; }
.info { font-size: 14pt; margin: 0 0 12px; line-height: 1.6; }
.summary { font-size: 11pt; margin: 0 0 18px; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 0.5pt solid #000; padding: 4px 6px; }
th { background: #808080; color: #f5f5f5; font-size: 12pt; text-align: center; }
td { font-size: 10pt; text-align: center; }
tbody tr:nth-child(even) td { background: #d3d3d3; }
td.name { text-align: left; }
td.num { text-align: right; }
`

func writeHead(sb *strings.Builder, title string, font FontConfig, extraStyle string) {
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"ko\">\n<head>\n<meta charset=\"utf-8\">\n")
	sb.WriteString(fmt.Sprintf("<title>%s</title>\n<style>\n", html.EscapeString(title)))
	sb.WriteString(font.fontFace())
	sb.WriteString(fmt.Sprintf("body { font-family: %s; }\n", font.CSSFamily()))
	sb.WriteString(baseStyle)
	sb.WriteString(extraStyle)
	sb.WriteString("</style>\n</head>\n<body>\n")
}

// OrderSheetHTML 은 업체 1곳의 주문서입니다.
func OrderSheetHTML(doc model.CompanyDocument, font FontConfig) string {
	var sb strings.Builder
	s := doc.Summary
	writeHead(&sb, s.CompanyCode+" 주문서", font, "")

	sb.WriteString("<h1>주문서</h1>\n")
	sb.WriteString(fmt.Sprintf(`<p class="info"><b>업체코드:</b> %s<br><b>업체명:</b> %s</p>`+"\n",
		html.EscapeString(s.CompanyCode), html.EscapeString(s.CompanyNameOriginal)))
	sb.WriteString(fmt.Sprintf(`<p class="summary"><b>총 품목 수:</b> %d개 | <b>총 수량:</b> %s</p>`+"\n",
		s.ItemTypeCount, format.Quantity(s.TotalQuantity)))

	sb.WriteString(`<table><colgroup><col style="width:2cm"><col style="width:12cm"><col style="width:3cm"></colgroup>` + "\n")
	sb.WriteString("<thead><tr><th>No.</th><th>제품명</th><th>수량</th></tr></thead>\n<tbody>\n")
	for i, o := range doc.Orders {
		sb.WriteString(fmt.Sprintf(`<tr><td>%d</td><td class="name">%s</td><td class="num">%s</td></tr>`+"\n",
			i+1, html.EscapeString(o.ProductName), format.Quantity(o.Quantity)))
	}
	sb.WriteString("</tbody></table>\n</body>\n</html>\n")
	return sb.String()
}

const labelStyle = `@page { size: A4; margin: 0; }
.label { box-sizing: border-box; width: 210mm; height: 297mm; padding: 10mm; page-break-after: always; }
.label:last-child { page-break-after: auto; }
.frame { box-sizing: border-box; height: 100%; border: 1pt solid #000;
  display: flex; flex-direction: column; align-items: center; justify-content: center; text-align: center; }
.product { font-size: 48pt; line-height: 2cm; margin-bottom: 2cm; }
.qty { font-size: 72pt; font-weight: bold; margin-bottom: 2cm; }
.code { font-size: 36pt; }
`

// LabelsHTML 은 주문 행마다 A4 한 장짜리 팔레트 라벨을 만듭니다.
func LabelsHTML(doc model.CompanyDocument, font FontConfig) string {
	var sb strings.Builder
	code := doc.Summary.CompanyCode
	writeHead(&sb, code+" 라벨", font, labelStyle)

	for _, o := range doc.Orders {
		first, second := splitLabelName(o.ProductName)
		sb.WriteString(`<section class="label"><div class="frame">` + "\n")
		sb.WriteString(`<div class="product">` + html.EscapeString(first))
		if second != "" {
			sb.WriteString("<br>" + html.EscapeString(second))
		}
		sb.WriteString("</div>\n")
		sb.WriteString(fmt.Sprintf(`<div class="qty">%d</div>`+"\n", o.Quantity))
		sb.WriteString(fmt.Sprintf(`<div class="code">%s</div>`+"\n", html.EscapeString(code)))
		sb.WriteString("</div></section>\n")
	}
	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

// splitLabelName 은 긴 제품명을 두 줄로 나눕니다.
// 공백이 있으면 단어 수의 절반에서, 없으면 글자 수의 절반에서 자릅니다.
func splitLabelName(name string) (string, string) {
	runes := []rune(name)
	if len(runes) <= labelLineRunes {
		return name, ""
	}
	if strings.Contains(name, " ") {
		words := strings.Split(name, " ")
		mid := len(words) / 2
		return strings.Join(words[:mid], " "), strings.Join(words[mid:], " ")
	}
	mid := len(runes) / 2
	return string(runes[:mid]), string(runes[mid:])
}

// InventoryReportHTML 은 소비기한별로 합친 재고표입니다.
func InventoryReportHTML(records []model.InventoryRecord, date time.Time, font FontConfig) string {
	var sb strings.Builder
	title := fmt.Sprintf("재고 현황표 (%s)", date.Format("2006-01-02"))
	writeHead(&sb, title, font, "h1 { font-size: 20pt; }\ntd { font-size: 8pt; }\nth { font-size: 10pt; }\n")

	sb.WriteString("<h1>" + html.EscapeString(title) + "</h1>\n")
	sb.WriteString(fmt.Sprintf(`<p class="summary"><b>총 품목 수:</b> %d개</p>`+"\n", len(records)))
	sb.WriteString("<table>\n<thead><tr><th>No.</th><th>제품코드</th><th>제품명</th><th>아주</th><th>일반</th><th>잔량</th></tr></thead>\n<tbody>\n")
	for i, r := range records {
		sb.WriteString(fmt.Sprintf(`<tr><td>%d</td><td>%s</td><td class="name">%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`+"\n",
			i+1,
			html.EscapeString(r.ProductCode),
			html.EscapeString(r.ProductName),
			html.EscapeString(r.TokenA),
			html.EscapeString(r.Placeholder),
			html.EscapeString(r.TokenB)))
	}
	sb.WriteString("</tbody></table>\n</body>\n</html>\n")
	return sb.String()
}
