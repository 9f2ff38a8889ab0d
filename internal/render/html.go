package render

import (
	"html/template"
	"io"

	"parseit/internal/parse"
)

var htmlTemplate = template.Must(template.New("table").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>parseit</title>
<style>
table { border-collapse: collapse; font-family: monospace; }
th, td { border: 1px solid #999; padding: 2px 8px; text-align: left; }
th { background: #eee; }
</style>
</head>
<body>
<table>
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
{{range .Records}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table>
</body>
</html>
`))

// HTML writes the batch as a standalone HTML table. Values are escaped by
// the template engine.
func HTML(w io.Writer, batch *parse.RowBatch) error {
	return htmlTemplate.Execute(w, batch)
}
