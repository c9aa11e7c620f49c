package v1

import (
	"html/template"
	"net/http"

	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// loginErrors maps the ?error= reasons set by the auth callback to page text.
var loginErrors = map[string]string{
	"AccessDenied": "This Google account is not allowed to manage the portfolio.",
	"Callback":     "Sign-in was cancelled or failed. Please try again.",
}

const pageTemplates = `
{{define "layout_head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; background: #0f0f14; color: #e5e5ef; max-width: 960px; margin: 0 auto; padding: 2rem; }
h2 { color: #8B5CF6; border-bottom: 1px solid #2a2a38; padding-bottom: .25rem; }
ul { list-style: none; padding: 0; }
li { margin: .5rem 0; }
.tag { display: inline-block; background: #1e1e2a; border-radius: 4px; padding: 0 .4rem; margin-right: .25rem; font-size: .85em; }
.bar { background: #1e1e2a; height: .4rem; border-radius: 2px; }
.bar span { display: block; height: 100%; border-radius: 2px; background: #8B5CF6; }
.error { color: #f87171; }
a { color: #a78bfa; }
</style>
</head>
<body>{{end}}

{{define "index"}}{{template "layout_head" .}}
<h1>Portfolio</h1>

<h2>Projects</h2>
<ul>
{{range .Projects}}<li style="border-left: 3px solid {{.Color}}; padding-left: .5rem">
<strong>{{.Title}}</strong> {{.Description}}<br>
{{range .Tags}}<span class="tag">{{.}}</span>{{end}}
{{if .Github}}<a href="{{.Github}}">code</a>{{end}} {{if .Live}}<a href="{{.Live}}">live</a>{{end}}
</li>{{else}}<li>No projects yet.</li>{{end}}
</ul>

<h2>Skills</h2>
<ul>
{{range .Skills}}<li>{{.Name}} <small>{{.Category}}</small>
<div class="bar"><span style="width: {{deref .Proficiency}}%"></span></div></li>{{else}}<li>No skills yet.</li>{{end}}
</ul>

<h2>Certificates</h2>
<ul>
{{range .Certificates}}<li><strong>{{.Title}}</strong> {{.Issuer}}, {{.Date}}
{{if .CredentialURL}}<a href="{{.CredentialURL}}">credential</a>{{end}}</li>{{else}}<li>No certificates yet.</li>{{end}}
</ul>
</body>
</html>{{end}}

{{define "login"}}{{template "layout_head" .}}
<h1>Admin sign-in</h1>
<p class="error">{{.Error}}</p>
<p><a href="/api/auth/login">Sign in with Google</a></p>
</body>
</html>{{end}}
`

// PageTemplates is installed on the engine with SetHTMLTemplate.
func PageTemplates() *template.Template {
	return template.Must(template.New("pages").Funcs(template.FuncMap{
		"deref": func(p *int) int {
			if p == nil {
				return 0
			}
			return *p
		},
	}).Parse(pageTemplates))
}

type PageHandler struct {
	projectUC     domain.ProjectUsecase
	skillUC       domain.SkillUsecase
	certificateUC domain.CertificateUsecase
}

func NewPageHandler(r *gin.Engine, projectUC domain.ProjectUsecase, skillUC domain.SkillUsecase, certificateUC domain.CertificateUsecase) {
	handler := &PageHandler{
		projectUC:     projectUC,
		skillUC:       skillUC,
		certificateUC: certificateUC,
	}

	r.GET("/", handler.Index)
	r.GET("/login", handler.Login)
}

// Index renders the public summary of all three collections.
func (h *PageHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	projects, err := h.projectUC.List(ctx)
	if err != nil {
		c.Error(err)
		return
	}
	skills, err := h.skillUC.List(ctx)
	if err != nil {
		c.Error(err)
		return
	}
	certificates, err := h.certificateUC.List(ctx)
	if err != nil {
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "index", gin.H{
		"Title":        "Portfolio",
		"Projects":     projects,
		"Skills":       skills,
		"Certificates": certificates,
	})
}

// Login starts sign-in, or explains why the last attempt was rejected.
func (h *PageHandler) Login(c *gin.Context) {
	reason := c.Query("error")
	if reason == "" {
		c.Redirect(http.StatusFound, "/api/auth/login")
		return
	}

	msg, ok := loginErrors[reason]
	if !ok {
		msg = loginErrors["Callback"]
	}
	c.HTML(http.StatusOK, "login", gin.H{
		"Title": "Admin sign-in",
		"Error": msg,
	})
}
