package server

import (
	"html/template"

	"github.com/Mystique1337/bible-explainer/output"
	"github.com/Mystique1337/bible-explainer/pipeline"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Bible Verse Explainer</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; }
.error { color: #a40000; background: #fde8e8; padding: .75rem; border-radius: 4px; }
.info { background: #e8f0fd; padding: .75rem; border-radius: 4px; }
label { display: block; margin-top: .75rem; }
input, select { width: 100%; padding: .4rem; }
</style>
</head>
<body>
<h1>📖 Bible Verse Explainer with Moral Lessons</h1>
<p>Welcome! This app allows you to:</p>
<ol>
<li>Enter a Bible verse reference (e.g., John 3:16)</li>
<li>Automatically fetch and display the verse</li>
<li>Get a detailed, conversational explanation with examples and moral lessons</li>
<li>Listen to the explanation and download it as audio</li>
</ol>
<p>🔎 <strong>Tips for Quality Inputs:</strong></p>
<ul>
<li>Use standard formats like <code>John 3:16</code>, <code>Genesis 1:1</code>, or <code>Psalm 23:1</code>.</li>
<li>Ensure the book name is spelled correctly.</li>
<li>Use only one verse reference at a time for best results.</li>
</ul>
<form method="post" action="/explain">
<label>🔍 Enter Bible Verse Reference (e.g., John 3:16):
<input type="text" name="reference" value="{{.Reference}}" required></label>
{{if .NeedsCredential}}<label>🔑 API key:
<input type="password" name="api_key" autocomplete="off" required></label>{{end}}
{{if .Models}}<label>🤖 Model:
<select name="model" required>{{range .Models}}
<option value="{{.}}"{{if eq . $.Model}} selected{{end}}>{{.}}</option>{{end}}
</select></label>{{end}}
<p><button type="submit">Explain</button></p>
</form>
{{if .Submitted}}
{{if .Verse}}<h2>📜 Bible Verse</h2>
<p>{{.Verse}}</p>{{end}}
{{if .Explanation}}<h2>💬 Explanation</h2>
<p>{{.Explanation}}</p>{{end}}
{{if .AudioURI}}<audio controls src="{{.AudioURI}}"></audio>
<p>{{.DownloadLink}}</p>{{end}}
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{else}}<p class="info">Please enter a Bible verse reference above to begin.</p>
{{end}}
</body>
</html>
`))

type pageData struct {
	NeedsCredential bool
	Models          []string

	Submitted   bool
	Reference   string
	Model       string
	Verse       string
	Explanation string
	AudioURI    template.URL
	// DownloadLink is built from our own data URI and escaped filename.
	DownloadLink template.HTML
	Error        string
}

func newPageData(p pipeline.ExplanationProvider) pageData {
	return pageData{
		NeedsCredential: p.NeedsCredential(),
		Models:          p.Models(),
	}
}

func (d *pageData) setResult(res pipeline.Result) {
	d.Submitted = true
	d.Reference = res.Reference
	d.Verse = res.Verse.Text
	d.Explanation = res.Explanation
	d.Error = res.Message()
	if len(res.Audio) > 0 {
		d.AudioURI = template.URL(output.DataURI(res.Audio))
		d.DownloadLink = template.HTML(output.DownloadLink(res.Audio, output.AudioFilename))
	}
}
