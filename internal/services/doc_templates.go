package services

import "html/template"

var docTemplates = template.Must(template.New("documents").Parse(docTemplateSource))

const docTemplateSource = `
{{define "styles"}}
<style>
  body { font-family: 'Segoe UI', Arial, sans-serif; margin: 0; padding: 40px; color: #1f2937; background: #fff; }
  .header { border-bottom: 3px solid #3b82f6; padding-bottom: 20px; margin-bottom: 30px; }
  .header h1 { margin: 0; color: #1e3a8a; font-size: 28px; }
  .header .subtitle { color: #6b7280; margin-top: 8px; }
  .stats-grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: 16px; margin: 30px 0; }
  .stat-card { background: #f0f7ff; border: 1px solid #bfdbfe; border-radius: 8px; padding: 16px; text-align: center; }
  .stat-card .value { font-size: 24px; font-weight: 700; color: #1e40af; }
  .stat-card .label { font-size: 12px; color: #6b7280; text-transform: uppercase; margin-top: 4px; }
  .section { margin: 30px 0; }
  .section h2 { color: #1e3a8a; font-size: 20px; border-left: 4px solid #3b82f6; padding-left: 12px; }
  .chart-container { margin: 30px 0; height: 320px; }
  .footer { margin-top: 50px; padding-top: 20px; border-top: 1px solid #e5e7eb; font-size: 12px; color: #9ca3af; text-align: center; }
  .highlight { background: #ecfdf5; border: 1px solid #a7f3d0; border-radius: 8px; padding: 16px; margin: 20px 0; }
</style>
{{end}}

{{define "footer"}}
<div class="footer">
  <p>Houston Real Estate Marketing &middot; Generated {{.Date}}</p>
  <p>Data sourced from Houston Association of Realtors and public market records.</p>
</div>
{{end}}

{{define "market_report"}}
<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
{{template "styles"}}
</head>
<body>
<div class="header">
  <h1>{{.Title}}</h1>
  <div class="subtitle">{{.Area}} &middot; Market Report &middot; {{.Date}}</div>
</div>
<div class="stats-grid">
  <div class="stat-card"><div class="value">{{.MedianPrice}}</div><div class="label">Median Price</div></div>
  <div class="stat-card"><div class="value">{{.PriceGrowth}}</div><div class="label">YoY Growth</div></div>
  <div class="stat-card"><div class="value">{{.Inventory}}</div><div class="label">Months Inventory</div></div>
  <div class="stat-card"><div class="value">{{.SalesVolume}}</div><div class="label">Annual Sales</div></div>
</div>
{{if .Content}}<div class="section"><h2>Market Overview</h2><p>{{.Content}}</p></div>{{end}}
{{if .HasMarketChart}}
<div class="section">
  <h2>Median Prices by Area</h2>
  <div class="chart-container"><canvas id="marketChart"></canvas></div>
</div>
<script>
new Chart(document.getElementById('marketChart'), {
  type: 'bar',
  data: {{.MarketChartJSON}},
  options: { responsive: true, maintainAspectRatio: false }
});
</script>
{{end}}
<div class="section">
  <h2>Why Houston</h2>
  <p>Houston remains the #1 building market in the United States, with strong job growth,
  no state income tax, and sustained demand across the {{.Area}} submarket.</p>
</div>
{{template "footer" .}}
</body>
</html>
{{end}}

{{define "investment_analysis"}}
<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
{{template "styles"}}
</head>
<body>
<div class="header">
  <h1>{{.Title}}</h1>
  <div class="subtitle">{{.Area}} &middot; Investment Analysis &middot; {{.Date}}</div>
</div>
<div class="stats-grid">
  <div class="stat-card"><div class="value">{{.PurchasePrice}}</div><div class="label">Purchase Price</div></div>
  <div class="stat-card"><div class="value">{{.ExpectedROI}}</div><div class="label">5-Year ROI</div></div>
  <div class="stat-card"><div class="value">{{.CashFlow}}</div><div class="label">Monthly Cash Flow</div></div>
  <div class="stat-card"><div class="value">{{.CapRate}}</div><div class="label">Cap Rate</div></div>
</div>
{{if .Content}}<div class="section"><h2>Analysis</h2><p>{{.Content}}</p></div>{{end}}
{{if .HasROIChart}}
<div class="section">
  <h2>5-Year Projection</h2>
  <div class="chart-container"><canvas id="roiChart"></canvas></div>
</div>
<script>
new Chart(document.getElementById('roiChart'), {
  type: 'line',
  data: {{.ROIChartJSON}},
  options: { responsive: true, maintainAspectRatio: false }
});
</script>
{{end}}
<div class="highlight">
  <strong>Investment Thesis:</strong> Houston's combination of population growth, employment
  diversity, and landlord-friendly regulations supports durable rental yields in {{.Area}}.
</div>
{{template "footer" .}}
</body>
</html>
{{end}}

{{define "property_brochure"}}
<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{template "styles"}}
</head>
<body>
<div class="header">
  <h1>{{.Title}}</h1>
  <div class="subtitle">{{.Area}} &middot; {{.Date}}</div>
</div>
{{if .Content}}<div class="section"><p>{{.Content}}</p></div>{{end}}
<div class="highlight">
  <strong>Neighborhood Snapshot:</strong> median price {{.MedianPrice}}, year-over-year
  growth {{.PriceGrowth}}, {{.Inventory}} months of inventory.
</div>
<div class="section">
  <h2>Schedule a Showing</h2>
  <p>Contact our Houston team today to tour this property and explore financing options.</p>
</div>
{{template "footer" .}}
</body>
</html>
{{end}}

{{define "generic"}}
<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{template "styles"}}
</head>
<body>
<div class="header">
  <h1>{{.Title}}</h1>
  <div class="subtitle">{{.Area}} &middot; {{.Date}}</div>
</div>
{{if .Content}}<div class="section"><p>{{.Content}}</p></div>{{end}}
<div class="section">
  <h2>About the Houston Market</h2>
  <p>The {{.Area}} market continues to attract buyers and investors with a median price of
  {{.MedianPrice}} and {{.PriceGrowth}} annual appreciation.</p>
</div>
{{template "footer" .}}
</body>
</html>
{{end}}
`
