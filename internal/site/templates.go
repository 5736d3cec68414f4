package site

// Section names in their fixed initialization order.
const (
	SectionHero       = "hero"
	SectionAbout      = "about"
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionProjects   = "projects"
	SectionSkills     = "skills"
	SectionContact    = "contact"
)

// shellAnchors are the section container ids the page shell provides.
// Renderers target these; a component registered against anything else is
// non-renderable.
var shellAnchors = []string{
	SectionHero,
	SectionAbout,
	SectionSummary,
	SectionExperience,
	SectionProjects,
	SectionSkills,
	SectionContact,
}

// shellTemplate is the Go html/template for the single generated page.
// Section fragments arrive pre-rendered; the template only places them
// into their anchors.
const shellTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  {{.MetaTags}}
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <button type="button" class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">Theme</button>
  <main>
    <section id="hero">{{.Sections.hero}}</section>
    <section id="about">{{.Sections.about}}</section>
    <section id="summary">{{.Sections.summary}}</section>
    <section id="experience">{{.Sections.experience}}</section>
    <section id="projects">{{.Sections.projects}}</section>
    <section id="skills">{{.Sections.skills}}</section>
    <section id="contact">{{.Sections.contact}}</section>
  </main>
  <script src="script.js"></script>
{{if .LiveReload}}  <script src="livereload.js"></script>
{{end}}</body>
</html>
`

// liveReloadScript is written only in serve mode; it reloads the page when
// the dev server broadcasts a rebuild.
const liveReloadScript = `(function () {
  'use strict';
  function connect() {
    var ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/ws/reload');
    ws.onmessage = function () { location.reload(); };
    ws.onclose = function () { setTimeout(connect, 2000); };
  }
  connect();
})();
`
