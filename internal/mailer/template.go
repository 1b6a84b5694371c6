package mailer

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// defaultTemplate is used when no template file is configured. The
// placeholders are the contract with admin-supplied templates.
const defaultTemplate = `<html>
<body>
<h2>{Title}</h2>
<p>Hello, {UserName}!</p>
<p>{Message}</p>
<p>&mdash; {TeamName}, {Year}</p>
</body>
</html>`

// Template renders a notification into a mail body by substituting
// {Title}, {Message}, {UserName}, {Year} and {TeamName}.
type Template struct {
	body     string
	teamName string
}

func NewTemplate(templateFile, teamName string) (*Template, error) {
	body := defaultTemplate
	if templateFile != "" {
		raw, err := os.ReadFile(templateFile)
		if err != nil {
			return nil, err
		}
		body = string(raw)
	}
	return &Template{body: body, teamName: teamName}, nil
}

func (t *Template) Render(title, message, userName string, now time.Time) string {
	r := strings.NewReplacer(
		"{Title}", title,
		"{Message}", message,
		"{UserName}", userName,
		"{Year}", strconv.Itoa(now.Year()),
		"{TeamName}", t.teamName,
	)
	return r.Replace(t.body)
}
