package services

import (
	"fmt"
	"html/template"
	"strings"
)

// RenderPrintHTML renders the full print-ready quote page from the
// shared renderer model. The browser owns pagination and the actual
// print/PDF output; this just has to be a complete document.
func RenderPrintHTML(data RenderData) (string, error) {
	var b strings.Builder
	if err := printTemplate.Execute(&b, printView{
		RenderData:  data,
		TotalsLines: TotalsLines(data.Totals, data.Settings),
	}); err != nil {
		return "", fmt.Errorf("render print page: %w", err)
	}
	return b.String(), nil
}

type printView struct {
	RenderData
	TotalsLines []TotalsLine
}

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: "Helvetica Neue", Arial, sans-serif; color: #1f2937; margin: 2rem; }
  header { display: flex; justify-content: space-between; align-items: flex-start; border-bottom: 2px solid #1f2937; padding-bottom: 1rem; }
  header img { max-width: 96px; max-height: 96px; object-fit: contain; }
  h1 { margin: 0; font-size: 1.8rem; }
  .date { color: #6b7280; margin-top: .25rem; }
  .contacts { display: grid; grid-template-columns: 1fr 1fr; gap: 2rem; margin: 1.5rem 0; }
  .contacts h2 { font-size: 1.05rem; border-bottom: 1px solid #d1d5db; padding-bottom: .4rem; }
  table { width: 100%; border-collapse: collapse; }
  th { background: #f3f4f6; text-transform: uppercase; font-size: .75rem; color: #4b5563; padding: .6rem; }
  td { padding: .6rem; border-bottom: 1px solid #e5e7eb; vertical-align: top; font-size: .85rem; }
  td img { width: 48px; height: 48px; object-fit: contain; }
  .model { color: #6b7280; }
  .detail { font-size: .8rem; color: #4b5563; }
  .align-left { text-align: left; } .align-center { text-align: center; } .align-right { text-align: right; }
  .totals { width: 34%; margin-left: auto; margin-top: 1.2rem; }
  .totals div { display: flex; justify-content: space-between; padding: .15rem 0; color: #4b5563; }
  .totals .grand { font-weight: 700; font-size: 1.1rem; color: #111827; border-top: 1px solid #1f2937; margin-top: .4rem; padding-top: .4rem; }
  .terms { margin-top: 2rem; border-top: 1px solid #d1d5db; padding-top: 1rem; }
  .terms p { white-space: pre-wrap; color: #4b5563; }
  @media print { body { margin: 0; } }
</style>
</head>
<body>
<header>
  <div>
    <h1>{{.Title}}</h1>
    <p class="date">Date: {{.Date}}</p>
  </div>
  {{if .Logo}}<img src="{{.Logo}}" alt="logo">{{end}}
</header>
<section class="contacts">
  <div>
    <h2>Customer</h2>
    <p><strong>Name:</strong> {{.Customer.Name}}</p>
    <p><strong>Phone:</strong> {{.Customer.Phone}}</p>
    <p><strong>Address:</strong> {{.Customer.Address}}</p>
  </div>
  <div>
    <h2>Sales Representative</h2>
    <p><strong>Name:</strong> {{.Sales.Name}}</p>
    <p><strong>Phone:</strong> {{.Sales.Phone}}</p>
  </div>
</section>
<table>
  <thead>
    <tr>
      {{range .Columns}}<th class="align-{{.Align}}">{{.Label}}</th>{{end}}
    </tr>
  </thead>
  <tbody>
    {{range $row := .Rows}}
    <tr>
      {{range $col := $.Columns}}
      {{if eq $col.Key "image"}}<td class="align-center">{{if $row.Image}}<img src="{{$row.Image}}" alt="{{$row.Name}}">{{end}}</td>
      {{else if eq $col.Key "item"}}<td class="align-left"><strong>{{$row.Name}}</strong><br><span class="model">{{$row.Model}}</span></td>
      {{else if eq $col.Key "details"}}<td class="align-left">{{range $row.Details}}<div class="detail">{{.Label}}: {{.Value}}</div>{{end}}</td>
      {{else if eq $col.Key "diagram"}}<td class="align-center">{{if $row.Diagram}}<img src="{{$row.Diagram}}" alt="installation">{{else}}—{{end}}</td>
      {{else if eq $col.Key "unitPrice"}}<td class="align-right">{{$row.UnitPriceText}}</td>
      {{else if eq $col.Key "quantity"}}<td class="align-center">{{$row.Quantity}}</td>
      {{else if eq $col.Key "lineTotal"}}<td class="align-right"><strong>{{$row.LineTotalText}}</strong></td>
      {{end}}
      {{end}}
    </tr>
    {{end}}
  </tbody>
</table>
<div class="totals">
  {{range $i, $line := .TotalsLines}}
  <div{{if $line.Bold}} class="grand"{{end}}><span>{{$line.Label}}</span><span>{{$line.Value}}</span></div>
  {{end}}
</div>
<section class="terms">
  <h2>Terms &amp; Notes</h2>
  <p>{{if .Settings.Terms}}{{.Settings.Terms}}{{else}}—{{end}}</p>
</section>
</body>
</html>
`))
