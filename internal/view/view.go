// Package view renders the roster page from structured data.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/zhouzirui/roster/backend/internal/model/person"
)

//go:embed templates/*.html
var templateFS embed.FS

// Status values carried back to the page after a form mutation.
const (
	StatusCreated  = "created"
	StatusUpdated  = "updated"
	StatusDeleted  = "deleted"
	StatusInvalid  = "invalid"
	StatusNotFound = "not-found"
	StatusBadInput = "bad-input"
)

// Notice is the banner shown above the roster after a mutation.
type Notice struct {
	Kind    string
	Message string
}

var notices = map[string]Notice{
	StatusCreated:  {Kind: "success", Message: "Pessoa adicionada com sucesso."},
	StatusUpdated:  {Kind: "success", Message: "Dados da pessoa atualizados."},
	StatusDeleted:  {Kind: "success", Message: "Pessoa removida."},
	StatusInvalid:  {Kind: "error", Message: "Informe um nome e uma idade maior que zero."},
	StatusNotFound: {Kind: "error", Message: "Nenhuma pessoa encontrada com esse número."},
	StatusBadInput: {Kind: "error", Message: "Número ou idade inválidos."},
}

// NoticeFor maps a status to its banner. Unknown statuses have none.
func NoticeFor(status string) (Notice, bool) {
	n, ok := notices[status]
	return n, ok
}

// PageData is everything the roster page template consumes.
type PageData struct {
	Records []person.Person
	Notice  *Notice
}

// Renderer executes the parsed page template.
type Renderer struct {
	page *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	page, err := template.ParseFS(templateFS, "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &Renderer{page: page}, nil
}

// RenderPage writes the full roster page. Output is buffered so a template
// failure never leaves a half-written response.
func (r *Renderer) RenderPage(w io.Writer, data PageData) error {
	if data.Records == nil {
		data.Records = []person.Person{}
	}

	var buf bytes.Buffer
	if err := r.page.Execute(&buf, data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
