package handler

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
)

// PageData holds the runtime values interpolated into the status page.
type PageData struct {
	Hostname    string
	CurrentTime string
	Port        string
	Environment string
}

// StatusPage renders the HTML home page. The template is parsed once at
// startup; the inline stylesheet is minified unless debug mode is on.
type StatusPage struct {
	tmpl   *template.Template
	styles template.CSS
}

func NewStatusPage(debug bool) (*StatusPage, error) {
	funcs := template.FuncMap{
		"safeCSS": func(s template.CSS) template.CSS {
			return s
		},
	}

	tmpl, err := template.New("status").Funcs(funcs).Parse(pageHTML)
	if err != nil {
		return nil, fmt.Errorf("parsing status page template: %w", err)
	}

	styles := pageCSS
	if !debug {
		if minified, err := minifyCSS(pageCSS); err == nil {
			styles = minified
		}
	}

	return &StatusPage{
		tmpl:   tmpl,
		styles: template.CSS(styles),
	}, nil
}

// Render executes the template into a buffer so a failure cannot emit a
// half-written page.
func (p *StatusPage) Render(data PageData) ([]byte, error) {
	var buf bytes.Buffer
	page := struct {
		PageData
		Styles template.CSS
	}{
		PageData: data,
		Styles:   p.styles,
	}

	if err := p.tmpl.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("executing status page template: %w", err)
	}
	return buf.Bytes(), nil
}

func minifyCSS(in string) (string, error) {
	m := minify.New()
	m.AddFunc("text/css", mincss.Minify)
	return m.String("text/css", in)
}

const pageCSS = `
* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

body {
    font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
    background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
    min-height: 100vh;
    display: flex;
    justify-content: center;
    align-items: center;
    padding: 20px;
}

.container {
    background: white;
    border-radius: 20px;
    box-shadow: 0 20px 60px rgba(0, 0, 0, 0.3);
    padding: 40px;
    max-width: 600px;
    width: 100%;
    animation: slideIn 0.5s ease-out;
}

@keyframes slideIn {
    from {
        opacity: 0;
        transform: translateY(-30px);
    }
    to {
        opacity: 1;
        transform: translateY(0);
    }
}

h1 {
    color: #333;
    margin-bottom: 10px;
    font-size: 2.5em;
    text-align: center;
}

.subtitle {
    color: #667eea;
    text-align: center;
    font-size: 1.2em;
    margin-bottom: 30px;
    font-weight: 500;
}

.status {
    background: #f0f4ff;
    border-left: 4px solid #667eea;
    padding: 20px;
    border-radius: 8px;
    margin: 20px 0;
}

.status-item {
    display: flex;
    justify-content: space-between;
    padding: 10px 0;
    border-bottom: 1px solid #e0e0e0;
}

.status-item:last-child {
    border-bottom: none;
}

.label {
    font-weight: 600;
    color: #555;
}

.value {
    color: #667eea;
    font-family: 'Courier New', monospace;
}

.success {
    background: #d4edda;
    color: #155724;
    padding: 15px;
    border-radius: 8px;
    text-align: center;
    font-weight: 600;
    margin-top: 20px;
}

.api-link {
    display: block;
    background: #667eea;
    color: white;
    text-decoration: none;
    padding: 12px 24px;
    border-radius: 8px;
    text-align: center;
    margin-top: 20px;
    transition: background 0.3s;
}

.api-link:hover {
    background: #764ba2;
}

.footer {
    text-align: center;
    margin-top: 30px;
    color: #888;
    font-size: 0.9em;
}

.badge {
    display: inline-block;
    background: #28a745;
    color: white;
    padding: 4px 12px;
    border-radius: 12px;
    font-size: 0.8em;
    font-weight: 600;
}
`

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>HNG13 DevOps - Stage 1</title>
    <style>{{ safeCSS .Styles }}</style>
</head>
<body>
    <div class="container">
        <h1>&#128640; HNG13 DevOps</h1>
        <div class="subtitle">Stage 1 - Automated Deployment</div>

        <div class="success">
            &#9989; Application Successfully Deployed!
        </div>

        <div class="status">
            <div class="status-item">
                <span class="label">Status:</span>
                <span class="value"><span class="badge">RUNNING</span></span>
            </div>
            <div class="status-item">
                <span class="label">Hostname:</span>
                <span class="value">{{ .Hostname }}</span>
            </div>
            <div class="status-item">
                <span class="label">Server Time:</span>
                <span class="value">{{ .CurrentTime }}</span>
            </div>
            <div class="status-item">
                <span class="label">Port:</span>
                <span class="value">{{ .Port }}</span>
            </div>
            <div class="status-item">
                <span class="label">Environment:</span>
                <span class="value">{{ .Environment }}</span>
            </div>
        </div>

        <a href="/api/health" class="api-link">&#128202; Check Health API</a>
        <a href="/api/info" class="api-link">&#8505;&#65039; View System Info</a>

        <div class="footer">
            <p>Deployed with &#10084;&#65039; using Docker &amp; Nginx</p>
            <p style="margin-top: 5px;">HNG Internship 13.0 | DevOps Track</p>
        </div>
    </div>
</body>
</html>
`
