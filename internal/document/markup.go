package document

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"strconv"
	"strings"
	"time"

	"resumebuilder/internal/resume"
)

// DefaultMarkup 在简历未绑定模板（或模板已不存在）时使用。
// {{sections.*}} 插槽由有序子集合渲染后填入。
const DefaultMarkup = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <style>
    body { font-family: Arial, sans-serif; margin: 40px; }
    .header { text-align: center; margin-bottom: 30px; }
    .section { margin-bottom: 25px; }
    .section-title { font-size: 18px; font-weight: bold; margin-bottom: 10px; border-bottom: 1px solid #ccc; }
    .experience-item, .education-item { margin-bottom: 15px; }
    .item-header { font-weight: bold; }
    .item-details { color: #666; font-size: 14px; }
    .skills-list { display: flex; flex-wrap: wrap; gap: 10px; }
    .skill-item { background: #f0f0f0; padding: 5px 10px; border-radius: 3px; }
  </style>
</head>
<body>
  <div class="header">
    <h1>{{user.first_name}} {{user.last_name}}</h1>
    <p>{{user.email}} | {{user.phone}}</p>
    <p>{{user.address}}, {{user.city}}, {{user.state}} {{user.zip_code}}</p>
  </div>

  <div class="section">
    <h2 class="section-title">{{resume.title}}</h2>
    <p>{{resume.summary}}</p>
  </div>

  <div class="section">
    <h2 class="section-title">Work Experience</h2>
    {{sections.work_experience}}
  </div>

  <div class="section">
    <h2 class="section-title">Education</h2>
    {{sections.education}}
  </div>

  <div class="section">
    <h2 class="section-title">Skills</h2>
    <div class="skills-list">
      {{sections.skills}}
    </div>
  </div>
</body>
</html>
`

const cssPlaceholder = "{{template.css_styles}}"

const sectionTemplateString = `
{{define "work"}}{{range .}}<div class="experience-item">
  <div class="item-header">{{.JobTitle}} at {{.CompanyName}}</div>
  <div class="item-details">{{with str .Location}}{{.}} | {{end}}{{date .StartDate}} - {{if .IsCurrent}}Present{{else}}{{dateptr .EndDate}}{{end}}</div>
  {{with str .Description}}<p>{{.}}</p>{{end}}
</div>
{{end}}{{end}}
{{define "education"}}{{range .}}<div class="education-item">
  <div class="item-header">{{.Degree}}{{with str .FieldOfStudy}} in {{.}}{{end}}</div>
  <div class="item-details">{{.InstitutionName}}{{with str .Location}} | {{.}}{{end}} | {{date .StartDate}} - {{if .IsCurrent}}Present{{else}}{{dateptr .EndDate}}{{end}}</div>
  {{with gpa .GPA}}<p>GPA: {{.}}</p>{{end}}
  {{with str .Description}}<p>{{.}}</p>{{end}}
</div>
{{end}}{{end}}
{{define "skills"}}{{range .}}<span class="skill-item">{{.Name}}{{with .ProficiencyLevel}} ({{level .}}){{end}}</span>
{{end}}{{end}}
`

var sectionTemplates = template.Must(template.New("sections").Funcs(template.FuncMap{
	"str": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"date": formatDate,
	"dateptr": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return formatDate(*t)
	},
	"gpa": func(g *float64) string {
		if g == nil {
			return ""
		}
		return strconv.FormatFloat(*g, 'f', -1, 64)
	},
	"level": func(p *resume.Proficiency) string {
		return string(*p)
	},
}).Parse(sectionTemplateString))

func formatDate(t time.Time) string {
	return t.Format("Jan 2006")
}

// BuildHTML 选择模板（或默认模板），并完成占位符替换与子集合渲染。
// 占位符取值为空时替换为空字符串，所有取值都会做 HTML 转义。
func BuildHTML(full *resume.FullResume, user *resume.User) (string, error) {
	markup := DefaultMarkup
	css := ""
	if full.Template != nil {
		markup = full.Template.HTMLTemplate
		css = full.Template.CSSStyles
	}

	work, err := renderSection("work", full.WorkExperiences)
	if err != nil {
		return "", err
	}
	education, err := renderSection("education", full.Education)
	if err != nil {
		return "", err
	}
	skills, err := renderSection("skills", full.Skills)
	if err != nil {
		return "", err
	}

	cssSlotted := strings.Contains(markup, cssPlaceholder)
	replacer := strings.NewReplacer(
		"{{user.first_name}}", html.EscapeString(user.FirstName),
		"{{user.last_name}}", html.EscapeString(user.LastName),
		"{{user.email}}", html.EscapeString(user.Email),
		"{{user.phone}}", escapeOptional(user.Phone),
		"{{user.address}}", escapeOptional(user.Address),
		"{{user.city}}", escapeOptional(user.City),
		"{{user.state}}", escapeOptional(user.State),
		"{{user.zip_code}}", escapeOptional(user.ZipCode),
		"{{resume.title}}", html.EscapeString(full.Title),
		"{{resume.summary}}", escapeOptional(full.Summary),
		"{{sections.work_experience}}", work,
		"{{sections.education}}", education,
		"{{sections.skills}}", skills,
		cssPlaceholder, css,
	)
	out := replacer.Replace(markup)

	if css != "" && !cssSlotted {
		out = injectStyle(out, css)
	}
	return out, nil
}

func renderSection(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := sectionTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s section: %w", name, err)
	}
	return buf.String(), nil
}

func escapeOptional(s *string) string {
	if s == nil {
		return ""
	}
	return html.EscapeString(*s)
}

// injectStyle places the template stylesheet right before </head>, or at the top when the
// markup has no head element.
func injectStyle(markup, css string) string {
	style := "<style>" + css + "</style>"
	if i := strings.Index(strings.ToLower(markup), "</head>"); i >= 0 {
		return markup[:i] + style + markup[i:]
	}
	return style + markup
}
