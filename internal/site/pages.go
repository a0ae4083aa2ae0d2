// Package site ties the page shells to the page entry points.
package site

import (
	"bytes"
	"context"
	"embed"
	"io/fs"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-site/internal/platform/dom"
	"github.com/riskibarqy/league-site/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

//go:embed shells/*.html shells/static/*
var shellFS embed.FS

var ErrUnknownPage = crerr.New("unknown page")

const StylesheetPath = "static/style.css"

// Page is one published page: its shell file and the entry point that fills it.
type Page struct {
	Name   string
	File   string
	render func(ctx context.Context, svc *usecase.PageService, doc *dom.Document) error
}

var pages = []Page{
	{
		Name: "inicio",
		File: "index.html",
		render: func(ctx context.Context, svc *usecase.PageService, doc *dom.Document) error {
			return svc.RenderLandingPage(ctx, usecase.LandingTargetsFrom(doc))
		},
	},
	{
		Name: "clasificacion",
		File: "clasificacion.html",
		render: func(ctx context.Context, svc *usecase.PageService, doc *dom.Document) error {
			return svc.RenderStandingsPage(ctx, usecase.StandingsTargetsFrom(doc))
		},
	},
	{
		Name: "jornadas",
		File: "jornadas.html",
		render: func(ctx context.Context, svc *usecase.PageService, doc *dom.Document) error {
			return svc.RenderJornadasPage(ctx, usecase.JornadasTargetsFrom(doc))
		},
	},
	{
		Name: "partidos",
		File: "partidos.html",
		render: func(ctx context.Context, svc *usecase.PageService, doc *dom.Document) error {
			return svc.RenderMatchesPage(ctx, usecase.MatchesTargetsFrom(doc))
		},
	},
}

// Pages lists every published page in navigation order.
func Pages() []Page {
	out := make([]Page, len(pages))
	copy(out, pages)
	return out
}

// PageByName accepts a page name or its file name.
func PageByName(name string) (Page, error) {
	key := strings.Trim(strings.ToLower(strings.TrimSpace(name)), "/")
	if key == "" {
		key = "index.html"
	}
	for _, p := range pages {
		if p.Name == key || p.File == key {
			return p, nil
		}
	}
	return Page{}, crerr.Wrapf(ErrUnknownPage, "%q", name)
}

// Stylesheet returns the embedded site stylesheet.
func Stylesheet() ([]byte, error) {
	raw, err := fs.ReadFile(shellFS, "shells/"+StylesheetPath)
	if err != nil {
		return nil, crerr.Wrap(err, "read stylesheet")
	}
	return raw, nil
}

// Result is a rendered page. PageErr is the data failure shown in the page,
// if any; HTML is complete either way.
type Result struct {
	Page    Page
	HTML    []byte
	PageErr error
}

type Renderer struct {
	pages         *usecase.PageService
	noticeEnabled bool
}

func NewRenderer(pageService *usecase.PageService, noticeEnabled bool) *Renderer {
	return &Renderer{
		pages:         pageService,
		noticeEnabled: noticeEnabled,
	}
}

// Render parses a fresh copy of the page shell, runs its entry point and
// serialises the result.
func (r *Renderer) Render(ctx context.Context, page Page) (Result, error) {
	if page.render == nil {
		return Result{}, crerr.Wrapf(ErrUnknownPage, "%q", page.Name)
	}

	shell, err := shellFS.ReadFile("shells/" + page.File)
	if err != nil {
		return Result{}, crerr.Wrapf(err, "read shell %s", page.File)
	}
	doc, err := dom.Parse(bytes.NewReader(shell))
	if err != nil {
		return Result{}, crerr.Wrapf(err, "parse shell %s", page.File)
	}

	pageErr := page.render(ctx, r.pages, doc)
	if r.noticeEnabled {
		r.pages.RenderStandaloneMessage(usecase.NoticeTargetsFrom(doc))
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := doc.Render(buf); err != nil {
		return Result{}, crerr.Wrapf(err, "render page %s", page.File)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return Result{Page: page, HTML: out, PageErr: pageErr}, nil
}
